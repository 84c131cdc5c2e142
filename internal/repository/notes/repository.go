package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kotche/reminder-bot/infrastructure/tracing"
	"github.com/kotche/reminder-bot/internal/model"
)

const foreignKeyViolation = pq.ErrorCode("23503")

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `
		INSERT INTO notes (user_id, text, reminder_time, notified)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := d.db.QueryRowContext(ctx, query,
		note.UserID, note.Text, note.ReminderTime, note.Notified).Scan(&note.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return model.Note{}, model.ErrUserNotExists
		}
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (d *DefaultRepository) Get(ctx context.Context, noteID model.NoteID) (*model.Note, error) {
	note := &model.Note{}
	query := `SELECT id, user_id, text, reminder_time, notified FROM notes WHERE id = $1`

	err := d.db.QueryRowContext(ctx, query, noteID).
		Scan(&note.ID, &note.UserID, &note.Text, &note.ReminderTime, &note.Notified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note '%d': %w", noteID, err)
	}

	return note, nil
}

func (d *DefaultRepository) ListForUser(ctx context.Context, userID model.UserID) ([]model.Note, error) {
	ctx, span := tracing.StartSpan(ctx, "ListNotes_repo")
	defer span.End()

	queryBuilder := squirrel.
		Select("id",
			"user_id",
			"text",
			"reminder_time",
			"notified").
		From("notes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reminder_time, id").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (d *DefaultRepository) ReadAll(ctx context.Context) ([]model.Note, error) {
	query := `SELECT id, user_id, text, reminder_time, notified FROM notes ORDER BY id DESC`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (d *DefaultRepository) SetNotified(ctx context.Context, noteID model.NoteID, notified bool) error {
	query := `UPDATE notes SET notified = $1 WHERE id = $2`

	res, err := d.db.ExecContext(ctx, query, notified, noteID)
	if err != nil {
		return fmt.Errorf("failed to update notified state of note %d: %w", noteID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return model.ErrNoteNotFound
	}

	return nil
}

func (d *DefaultRepository) Delete(ctx context.Context, noteID model.NoteID) error {
	query := `DELETE FROM notes WHERE id = $1`

	res, err := d.db.ExecContext(ctx, query, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", noteID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return model.ErrNoteNotFound
	}

	return nil
}

func scanNotes(rows *sql.Rows) ([]model.Note, error) {
	var notes []model.Note
	for rows.Next() {
		var note model.Note
		err := rows.Scan(&note.ID, &note.UserID, &note.Text, &note.ReminderTime, &note.Notified)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}
