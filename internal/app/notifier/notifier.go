package notifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/kotche/reminder-bot/infrastructure/metrics"
	"github.com/kotche/reminder-bot/internal/model"
	"github.com/kotche/reminder-bot/internal/service/kafka"
	notes_serv "github.com/kotche/reminder-bot/internal/service/notes"
	"github.com/kotche/reminder-bot/internal/service/telegram"
	users_serv "github.com/kotche/reminder-bot/internal/service/users"
)

const (
	scanInterval = 15 * time.Second
	// A note is due once its reminder time falls within this window
	// ahead of the current time of day.
	lookaheadWindow = 10 * time.Minute
)

type Notifier struct {
	sender telegram.Sender
	users  users_serv.Service
	notes  notes_serv.Service
	events kafka.EventPublisher

	now func() time.Time
}

// New builds a notifier. events may be nil when no broker is configured.
func New(sender telegram.Sender, users users_serv.Service, notes notes_serv.Service, events kafka.EventPublisher) *Notifier {
	return &Notifier{
		sender: sender,
		users:  users,
		notes:  notes,
		events: events,
		now:    time.Now,
	}
}

// Run scans for due notes every scanInterval until ctx is cancelled.
// Cancellation stops new cycles; an in-flight cycle finishes, since each
// note's effects are committed individually.
func (n *Notifier) Run(ctx context.Context) error {
	log.Println("notifier started")

	n.scan(ctx)

	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("notifier stopped")
			return ctx.Err()
		case <-ticker.C:
			n.scan(ctx)
		}
	}
}

func (n *Notifier) scan(ctx context.Context) {
	unnotified, err := n.notes.Unnotified(ctx)
	if err != nil {
		log.Printf("failed to read unnotified notes: %v", err)
		return
	}

	log.Printf("unnotified notes: %d", len(unnotified))

	// Time-of-day comparison only: a reminder already past today stays
	// eligible until delivered, and the window does not wrap midnight.
	deadline := model.TimeOfDayOf(n.now().Add(lookaheadWindow))

	for _, note := range unnotified {
		if !note.ReminderTime.Before(deadline) {
			continue
		}
		n.notify(ctx, note)
	}
}

// notify handles a single due note. Any failure is logged and skipped so
// the rest of the cycle proceeds.
func (n *Notifier) notify(ctx context.Context, note model.Note) {
	user, err := n.users.GetByID(ctx, note.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			log.Printf("user %d of note %d no longer exists", note.UserID, note.ID)
		} else {
			log.Printf("failed to resolve user %d: %v", note.UserID, err)
		}
		return
	}

	message := fmt.Sprintf("Приближается напоминание!\n\n%s\n%s", note.Text, note.ReminderTime)

	if err = n.sender.SendMessage(user.TelegramID, message); err != nil {
		if errors.Is(err, model.ErrChatNotFound) {
			log.Printf("chat for user %d no longer exists", user.TelegramID)
		} else {
			log.Printf("unexpected error while notifying on note %d: %v", note.ID, err)
		}
		return
	}

	if err = n.notes.MarkNotified(ctx, note.ID); err != nil {
		log.Printf("failed to mark note %d notified: %v", note.ID, err)
		return
	}

	metrics.NotificationsSentCounter.Inc()
	log.Printf("successfully notified user %d on note %d", note.UserID, note.ID)

	if n.events != nil {
		err = n.events.Publish(ctx,
			[]byte(strconv.Itoa(int(note.UserID))),
			[]byte(strconv.Itoa(int(note.ID))),
		)
		if err != nil {
			log.Printf("failed to publish delivery event for note %d: %v", note.ID, err)
		}
	}
}
