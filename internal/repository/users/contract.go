package users

import (
	"context"

	"github.com/kotche/reminder-bot/internal/model"
)

// Query selects which key a Read resolves a user by. It is a closed set
// of variants matched explicitly in the repository.
type (
	Query interface {
		isUserQuery()
	}

	ByID         model.UserID
	ByTelegramID int64
)

func (ByID) isUserQuery()         {}
func (ByTelegramID) isUserQuery() {}

type Repository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	Read(ctx context.Context, query Query) (*model.User, error)
	ReadAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, userID model.UserID) error
}
