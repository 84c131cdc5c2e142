package users

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

const uniqueViolation = pq.ErrorCode("23505")

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `
		INSERT INTO users (name, email, telegram_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := d.db.QueryRowContext(ctx, query, user.Name, user.Email, user.TelegramID).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, model.ErrUserAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (d *DefaultRepository) Read(ctx context.Context, query Query) (*model.User, error) {
	builder := squirrel.
		Select("id", "name", "email", "telegram_id").
		From("users").
		PlaceholderFormat(squirrel.Dollar)

	switch q := query.(type) {
	case ByID:
		builder = builder.Where(squirrel.Eq{"id": model.UserID(q)})
	case ByTelegramID:
		builder = builder.Where(squirrel.Eq{"telegram_id": int64(q)})
	default:
		return nil, fmt.Errorf("unknown user query %T", query)
	}

	sqlText, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	user := &model.User{}
	err = d.db.QueryRowContext(ctx, sqlText, args...).
		Scan(&user.ID, &user.Name, &user.Email, &user.TelegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	return user, nil
}

func (d *DefaultRepository) ReadAll(ctx context.Context) ([]model.User, error) {
	ctx, span := tracing.StartSpan(ctx, "ReadAllUsers_repo")
	defer span.End()

	query := `SELECT id, name, email, telegram_id FROM users ORDER BY id DESC`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err = rows.Scan(&user.ID, &user.Name, &user.Email, &user.TelegramID); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (d *DefaultRepository) Delete(ctx context.Context, userID model.UserID) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := d.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return model.ErrUserNotFound
	}

	return nil
}
