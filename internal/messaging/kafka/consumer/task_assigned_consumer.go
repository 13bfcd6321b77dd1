package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-orgsuite/internal/events"
	"go-orgsuite/internal/reminder"
	remindererrors "go-orgsuite/internal/reminder/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// permanentReminderError: event yang field-nya rusak tidak akan pernah
// berhasil, berapa kali pun di-retry. Pesan begini di-commit seperti
// payload yang gagal decode.
func permanentReminderError(err error) bool {
	return errors.Is(err, remindererrors.ErrInvalidDueDate) ||
		errors.Is(err, remindererrors.ErrInvalidReminderTarget) ||
		errors.Is(err, remindererrors.ErrReminderNotFound)
}

// ConsumeTaskAssigned membuat reminder untuk assignee setiap ada event
// task_assigned. Pesan yang gagal di-decode langsung di-commit supaya
// tidak macet di satu pesan rusak.
func ConsumeTaskAssigned(
	ctx context.Context,
	reader *kafkago.Reader,
	reminderService reminder.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.task_assigned")
	log.Info("task assigned consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("task assigned consumer stopped")
				return
			}
			log.Error("fetch task assigned message failed", zap.Error(err))
			continue
		}

		var event events.TaskAssignedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode task_assigned event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = reminderService.CreateSystem(ctx, event.OrgID, event.AssigneeID, reminder.CreateReminderRequest{
			Title: fmt.Sprintf("Task assigned: %s", event.Title),
			Notes: "task:" + event.TaskID,
			DueAt: event.OccurredAt.Format("2006-01-02"),
		})
		if err != nil {
			log.Error("create assignment reminder failed",
				zap.String("task_id", event.TaskID),
				zap.String("assignee_id", event.AssigneeID),
				zap.Error(err),
			)
			if permanentReminderError(err) {
				_ = reader.CommitMessages(ctx, msg)
			}
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit task assigned message failed", zap.Error(err))
			continue
		}

		log.Info("assignment reminder created",
			zap.String("task_id", event.TaskID),
			zap.String("assignee_id", event.AssigneeID),
		)
	}
}
