package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-orgsuite/internal/messaging/kafka"
	"go-orgsuite/internal/messaging/kafka/producer"
	"go-orgsuite/internal/reminder"
	"go-orgsuite/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	reminderService := reminder.NewService(reminder.NewRepository(gormDB), outboxRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	go dispatchDueReminders(ctx, reminderService, logger, time.Minute)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

// dispatchDueReminders memindai reminder jatuh tempo secara berkala dan
// menulis event ke outbox; pengiriman aktualnya tetap lewat outbox worker.
func dispatchDueReminders(
	ctx context.Context,
	svc reminder.Service,
	logger *zap.Logger,
	interval time.Duration,
) {
	log := logger.Named("reminder.dispatcher")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("reminder dispatcher started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("reminder dispatcher stopped")
			return
		case <-ticker.C:
			n, err := svc.DispatchDue(ctx, time.Now(), 100)
			if err != nil {
				log.Error("dispatch due reminders failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("due reminders queued", zap.Int("count", n))
			}
		}
	}
}
