package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kotche/reminder-bot/infrastructure/metrics"
	"github.com/kotche/reminder-bot/internal/fsm"
	"github.com/kotche/reminder-bot/internal/model"
	notes_serv "github.com/kotche/reminder-bot/internal/service/notes"
	users_serv "github.com/kotche/reminder-bot/internal/service/users"
)

// Keys of the conversation data bag.
const (
	dataKeyUsername = "username"
	dataKeyNoteText = "note_text"
)

type DefaultService struct {
	users users_serv.Service
	notes notes_serv.Service
}

func NewDefaultService(users users_serv.Service, notes notes_serv.Service) *DefaultService {
	return &DefaultService{users: users, notes: notes}
}

// StartCommand begins registration. Commands always cancel whatever
// dialog was active before.
func (d *DefaultService) StartCommand(ctx context.Context, conv *fsm.Context) (string, error) {
	conv.Finish()

	registered, err := d.users.IsRegistered(ctx, conv.Key().UserID)
	if err != nil {
		return replyFailure, fmt.Errorf("failed to check registration: %w", err)
	}

	if registered {
		return replyAlreadyRegistered, nil
	}

	conv.SetState(fsm.StateAwaitingUsername)
	return replyRegisterPrompt, nil
}

func (d *DefaultService) MyNotesCommand(ctx context.Context, conv *fsm.Context) (string, error) {
	conv.Finish()

	user, err := d.users.GetByTelegramID(ctx, conv.Key().UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return replyMustRegister, nil
		}
		return replyFailure, fmt.Errorf("failed to get user: %w", err)
	}

	userNotes, err := d.notes.List(ctx, user.ID)
	if err != nil {
		return replyFailure, fmt.Errorf("failed to list notes for user %d: %w", user.ID, err)
	}

	if len(userNotes) == 0 {
		return replyNoNotes, nil
	}

	return d.notes.ComposeReport(userNotes), nil
}

func (d *DefaultService) AddNoteCommand(ctx context.Context, conv *fsm.Context) (string, error) {
	conv.Finish()

	registered, err := d.users.IsRegistered(ctx, conv.Key().UserID)
	if err != nil {
		return replyFailure, fmt.Errorf("failed to check registration: %w", err)
	}

	if !registered {
		return replyMustRegister, nil
	}

	conv.SetState(fsm.StateAwaitingNoteText)
	return replyNoteTextPrompt, nil
}

// Text dispatches free text by the active dialog state. Text outside any
// dialog is ignored.
func (d *DefaultService) Text(ctx context.Context, conv *fsm.Context, text string) (string, error) {
	switch conv.State() {
	case fsm.StateAwaitingUsername:
		return d.processUsername(conv, text), nil
	case fsm.StateAwaitingEmail:
		return d.processEmail(ctx, conv, text)
	case fsm.StateAwaitingNoteText:
		return d.processNoteText(conv, text), nil
	case fsm.StateAwaitingNoteReminderTime:
		return d.processReminderTime(ctx, conv, text)
	default:
		return "", nil
	}
}

func (d *DefaultService) processUsername(conv *fsm.Context, username string) string {
	conv.UpdateData(map[string]string{dataKeyUsername: username})
	conv.SetState(fsm.StateAwaitingEmail)
	return fmt.Sprintf("Ваше новое имя пользователя: %s.\nВведите email:", username)
}

func (d *DefaultService) processEmail(ctx context.Context, conv *fsm.Context, email string) (string, error) {
	telegramID := conv.Key().UserID
	username := conv.Data()[dataKeyUsername]

	err := d.users.Register(ctx, telegramID, username, email)
	switch {
	case err == nil:
		conv.Finish()
		metrics.UsersRegisteredCounter.Inc()
		return replyRegistered, nil
	case errors.Is(err, users_serv.ErrInvalidEmail):
		// Re-prompt, dialog stays at the same step.
		return replyInvalidEmail, nil
	case errors.Is(err, model.ErrUserAlreadyExists):
		conv.Finish()
		return replyFailure, fmt.Errorf("duplicate registration for telegram id %d: %w", telegramID, err)
	default:
		return replyFailure, fmt.Errorf("failed to register user %d: %w", telegramID, err)
	}
}

func (d *DefaultService) processNoteText(conv *fsm.Context, text string) string {
	conv.UpdateData(map[string]string{dataKeyNoteText: text})
	conv.SetState(fsm.StateAwaitingNoteReminderTime)
	return replyTimePrompt
}

func (d *DefaultService) processReminderTime(ctx context.Context, conv *fsm.Context, reminderTime string) (string, error) {
	telegramID := conv.Key().UserID

	user, err := d.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			conv.Finish()
			return replyMustRegister, nil
		}
		return replyFailure, fmt.Errorf("failed to get user: %w", err)
	}

	err = d.notes.Create(ctx, user.ID, conv.Data()[dataKeyNoteText], reminderTime)
	switch {
	case err == nil:
		conv.Finish()
		metrics.NotesCreatedCounter.Inc()
		return replyNoteCreated, nil
	case errors.Is(err, notes_serv.ErrInvalidTime):
		return replyInvalidTime, nil
	case errors.Is(err, model.ErrUserNotExists):
		conv.Finish()
		return replyFailure, fmt.Errorf("user %d vanished during dialog: %w", user.ID, err)
	default:
		return replyFailure, fmt.Errorf("failed to create note for user %d: %w", user.ID, err)
	}
}
