package bot

import (
	"context"
	"log"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/kotche/reminder-bot/infrastructure/metrics"
	"github.com/kotche/reminder-bot/internal/fsm"
	"github.com/kotche/reminder-bot/internal/service/dialog"
)

const longProcessTimeout = 2 * time.Second

// Bot routes inbound telegram updates into the dialog engine.
type Bot struct {
	bot    *telebot.Bot
	dialog dialog.Service
	store  *fsm.Store
}

func New(bot *telebot.Bot, dialog dialog.Service, store *fsm.Store) *Bot {
	return &Bot{bot: bot, dialog: dialog, store: store}
}

func (b *Bot) Start() {
	b.bot.Handle("/start", func(c telebot.Context) error {
		return b.handle(c, b.dialog.StartCommand)
	})
	b.bot.Handle("/mynotes", func(c telebot.Context) error {
		return b.handle(c, b.dialog.MyNotesCommand)
	})
	b.bot.Handle("/addnote", func(c telebot.Context) error {
		return b.handle(c, b.dialog.AddNoteCommand)
	})
	b.bot.Handle(telebot.OnText, func(c telebot.Context) error {
		return b.handle(c, func(ctx context.Context, conv *fsm.Context) (string, error) {
			return b.dialog.Text(ctx, conv, c.Text())
		})
	})

	log.Println("bot started...")
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}

func (b *Bot) handle(c telebot.Context, fn func(context.Context, *fsm.Context) (string, error)) error {
	start := time.Now()
	defer func() {
		metrics.ResponseTimeHistogram.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), longProcessTimeout)
	defer cancel()

	conv := fsm.NewContext(b.store, fsm.Key{
		ChatID: c.Chat().ID,
		UserID: c.Sender().ID,
	})

	reply, err := fn(ctx, conv)
	if err != nil {
		log.Printf("failed to handle update from chat %d: %v", c.Chat().ID, err)
	}

	if reply == "" {
		return nil
	}
	return c.Send(reply)
}
