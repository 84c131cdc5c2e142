package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kotche/reminder-bot/internal/model"
	"github.com/kotche/reminder-bot/internal/repository/notes"
)

// ErrInvalidTime reports a reminder time that is not a zero-padded HH:MM.
var ErrInvalidTime = errors.New("invalid reminder time")

type DefaultService struct {
	repo notes.Repository
}

func NewDefaultService(repo notes.Repository) *DefaultService {
	return &DefaultService{repo: repo}
}

func (d *DefaultService) Create(ctx context.Context, userID model.UserID, text, reminderTime string) error {
	parsed, err := model.ParseTimeOfDay(reminderTime)
	if err != nil {
		return ErrInvalidTime
	}

	_, err = d.repo.Create(ctx, model.Note{
		UserID:       userID,
		Text:         text,
		ReminderTime: parsed,
		Notified:     false,
	})
	return err
}

func (d *DefaultService) List(ctx context.Context, userID model.UserID) ([]model.Note, error) {
	return d.repo.ListForUser(ctx, userID)
}

// ComposeReport builds the /mynotes reply: a numbered entry per note,
// separated by blank lines.
func (d *DefaultService) ComposeReport(notes []model.Note) string {
	var report strings.Builder
	report.WriteString("Ваши заметки:")
	for i, note := range notes {
		report.WriteString(fmt.Sprintf("\n\nЗаметка #%d\n%s\n%s",
			i+1, note.Text, note.ReminderTime))
	}
	return report.String()
}

func (d *DefaultService) Unnotified(ctx context.Context) ([]model.Note, error) {
	all, err := d.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	var unnotified []model.Note
	for _, note := range all {
		if !note.Notified {
			unnotified = append(unnotified, note)
		}
	}
	return unnotified, nil
}

func (d *DefaultService) MarkNotified(ctx context.Context, noteID model.NoteID) error {
	return d.repo.SetNotified(ctx, noteID, true)
}
