// Command notify runs one evaluation pass over all expenses that opted into
// expiration alerts and publishes the due reminders to the message broker.
// It is meant to be invoked once a day by an external scheduler.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"costevida/internal/config"
	"costevida/internal/database"
	"costevida/internal/logger"
	"costevida/internal/notify"
	"costevida/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Notification run error: %v", err)
	}
}

func run() error {
	log := logger.Named("notify")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	delivery, err := notify.NewAMQPDelivery(cfg.AMQPURL, cfg.NotifyExchange, cfg.NotifyQueue)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer delivery.Close()

	db := dbManager.DB()
	svc := services.NewNotificationService(db, services.NewSettingsService(db))

	today := time.Now()
	reminders, err := svc.DueReminders(today)
	if err != nil {
		return fmt.Errorf("failed to evaluate reminders: %w", err)
	}

	ctx := context.Background()
	published := 0
	for _, r := range reminders {
		if err := delivery.Deliver(ctx, r.UserID, r.Message); err != nil {
			log.Errorw("failed to publish reminder", "user_id", r.UserID, "error", err)
			continue
		}
		published++
	}

	log.Infow("notification run finished",
		"date", today.Format("2006-01-02"),
		"due", len(reminders),
		"published", published,
	)
	return nil
}
