package users

import (
	"context"

	"github.com/kotche/reminder-bot/internal/model"
)

type Service interface {
	IsRegistered(ctx context.Context, telegramID int64) (bool, error)
	Register(ctx context.Context, telegramID int64, name, email string) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	GetByID(ctx context.Context, userID model.UserID) (*model.User, error)
}
