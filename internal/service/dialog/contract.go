package dialog

import (
	"context"

	"github.com/kotche/reminder-bot/internal/fsm"
)

// Service is the dialog engine: it maps an incoming command or text plus
// the current conversation state to a reply and a state transition.
// An empty reply means nothing should be sent.
type Service interface {
	StartCommand(ctx context.Context, conv *fsm.Context) (string, error)
	MyNotesCommand(ctx context.Context, conv *fsm.Context) (string, error)
	AddNoteCommand(ctx context.Context, conv *fsm.Context) (string, error)
	Text(ctx context.Context, conv *fsm.Context, text string) (string, error)
}
