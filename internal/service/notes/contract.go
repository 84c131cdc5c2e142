package notes

import (
	"context"

	"github.com/kotche/reminder-bot/internal/model"
)

type Service interface {
	Create(ctx context.Context, userID model.UserID, text, reminderTime string) error
	List(ctx context.Context, userID model.UserID) ([]model.Note, error)
	ComposeReport(notes []model.Note) string
	Unnotified(ctx context.Context) ([]model.Note, error)
	MarkNotified(ctx context.Context, noteID model.NoteID) error
}
