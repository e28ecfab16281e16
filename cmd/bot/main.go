package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/console"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	itelegram "homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Required configuration is missing. The program is forcibly stopped.")
	}

	logger.Init(cfg)
	log := logger.Get()
	log.WithFields(logrus.Fields{
		"log_level":     cfg.LogLevel,
		"environment":   cfg.Environment,
		"poll_interval": cfg.PollInterval.String(),
		"chat_id":       cfg.TelegramChatID,
	}).Info("Configuration loaded")

	// Notification log: Postgres when DATABASE_URL is set, in-memory otherwise.
	var notifLog notification.Log
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()
		notifLog = idb.NewPostgresNotificationLog(db)
		log.Info("Postgres notification log initialized")
	} else {
		notifLog = idb.NewMemoryNotificationLog()
		log.Info("In-memory notification log initialized")
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token: cfg.TelegramToken,
		OnError: func(err error, c telebot.Context) {
			log.WithError(err).Error("telebot error")
		},
	})
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}

	apiClient := practicum.NewClient(
		cfg.Endpoint,
		cfg.PracticumToken,
		cfg.HTTPTimeout,
		log.WithField("component", "practicum"),
	)
	telegramClient := itelegram.NewTelebotAdapter(bot, log.WithField("component", "telegram"))

	pollService := app.NewPollService(
		apiClient,
		telegramClient,
		notifLog,
		log.WithField("component", "poller"),
		cfg.TelegramChatID,
		time.Now().Unix(),
	)

	// One cancellation signal owned here; the console listener and OS signals
	// both feed into it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	stopListener := console.NewStopListener(os.Stdin, os.Stdout, cancel, log.WithField("component", "console"))
	go stopListener.Run()

	pollScheduler := scheduler.NewPollScheduler(pollService, log.WithField("component", "scheduler"), cfg.PollInterval)
	if err := pollScheduler.Start(ctx); err != nil {
		log.WithError(err).Fatal("Could not start poll scheduler")
	}

	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
		cancel()
	case <-ctx.Done():
	}

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully")
}
