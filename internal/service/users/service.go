package users

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/kotche/reminder-bot/internal/model"
	"github.com/kotche/reminder-bot/internal/repository/users"
)

// ErrInvalidEmail reports malformed email syntax during registration.
var ErrInvalidEmail = errors.New("invalid email")

type DefaultService struct {
	repo     users.Repository
	validate *validator.Validate
}

func NewDefaultService(repo users.Repository) *DefaultService {
	return &DefaultService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (d *DefaultService) IsRegistered(ctx context.Context, telegramID int64) (bool, error) {
	_, err := d.repo.Read(ctx, users.ByTelegramID(telegramID))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *DefaultService) Register(ctx context.Context, telegramID int64, name, email string) error {
	if err := d.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}

	_, err := d.repo.Create(ctx, model.User{
		Name:       name,
		Email:      email,
		TelegramID: telegramID,
	})
	return err
}

func (d *DefaultService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return d.repo.Read(ctx, users.ByTelegramID(telegramID))
}

func (d *DefaultService) GetByID(ctx context.Context, userID model.UserID) (*model.User, error) {
	return d.repo.Read(ctx, users.ByID(userID))
}
