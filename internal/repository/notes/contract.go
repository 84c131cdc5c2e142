package notes

import (
	"context"

	"github.com/kotche/reminder-bot/internal/model"
)

type Repository interface {
	Create(ctx context.Context, note model.Note) (model.Note, error)
	Get(ctx context.Context, noteID model.NoteID) (*model.Note, error)
	ListForUser(ctx context.Context, userID model.UserID) ([]model.Note, error)
	ReadAll(ctx context.Context) ([]model.Note, error)
	SetNotified(ctx context.Context, noteID model.NoteID, notified bool) error
	Delete(ctx context.Context, noteID model.NoteID) error
}
