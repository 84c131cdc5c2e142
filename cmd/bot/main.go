package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gopkg.in/telebot.v3"

	"github.com/kotche/reminder-bot/infrastructure/metrics"
	"github.com/kotche/reminder-bot/infrastructure/tracing"
	bot_app "github.com/kotche/reminder-bot/internal/app/bot"
	"github.com/kotche/reminder-bot/internal/app/notifier"
	"github.com/kotche/reminder-bot/internal/config"
	"github.com/kotche/reminder-bot/internal/fsm"
	notes_repo "github.com/kotche/reminder-bot/internal/repository/notes"
	users_repo "github.com/kotche/reminder-bot/internal/repository/users"
	"github.com/kotche/reminder-bot/internal/service/dialog"
	"github.com/kotche/reminder-bot/internal/service/kafka"
	notes_serv "github.com/kotche/reminder-bot/internal/service/notes"
	"github.com/kotche/reminder-bot/internal/service/telegram"
	users_serv "github.com/kotche/reminder-bot/internal/service/users"
	"github.com/kotche/reminder-bot/internal/worker"
)

func init() {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		log.Fatalf("failed to load location: %v", err)
	}
	time.Local = location
	log.Println("default time zone set to Europe/Moscow")
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	metrics.Init()
	metrics.StartMetricsServer(cfg.MetricsConfig.Addr)

	connStr := cfg.PostgresDSN()
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalln(err)
	}

	if err = runMigrations(connStr); err != nil {
		log.Fatalln("migration error:", err)
	}

	if cfg.TracingConfig.Endpoint != "" {
		_, cleanup, err := tracing.InitTracing(cfg.TracingConfig.Endpoint)
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
	}

	tgBot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramConfig.Token,
		Poller: newPoller(cfg),
	})
	if err != nil {
		log.Fatal(err)
	}

	usersServ := users_serv.NewDefaultService(users_repo.NewDefaultRepository(db))
	notesServ := notes_serv.NewDefaultService(notes_repo.NewDefaultRepository(db))

	var events kafka.EventPublisher
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaServ, err := kafka.New(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic, 1, 1)
		if err != nil {
			log.Fatalf("failed to initialize kafka: %v", err)
		}
		defer kafkaServ.Close()
		events = kafkaServ
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var notifierWorker worker.Worker = notifier.New(telegram.NewBotSender(tgBot), usersServ, notesServ, events)
	go func() {
		if err := notifierWorker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("notifier exited: %v", err)
		}
	}()

	botApp := bot_app.New(tgBot, dialog.NewDefaultService(usersServ, notesServ), fsm.NewStore())

	go func() {
		<-ctx.Done()
		botApp.Stop()
	}()

	botApp.Start()
}

func newPoller(cfg *config.Config) telebot.Poller {
	if cfg.TelegramConfig.WebhookURL != "" {
		return &telebot.Webhook{
			Listen: cfg.TelegramConfig.WebhookListen,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramConfig.WebhookURL,
			},
		}
	}
	return &telebot.LongPoller{Timeout: 10 * time.Second}
}

func runMigrations(dbURL string) error {
	m, err := migrate.New(
		"file://migrations",
		dbURL,
	)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); !errors.Is(err, migrate.ErrNoChange) && err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
