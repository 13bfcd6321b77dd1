package consumer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-orgsuite/internal/reminder"
	remindererrors "go-orgsuite/internal/reminder/errors"
	"go-orgsuite/internal/tenant"

	"github.com/stretchr/testify/assert"
)

type stubReminderRepo struct{}

func (stubReminderRepo) Create(context.Context, *reminder.Reminder) error { return nil }
func (stubReminderRepo) FindAllByUser(context.Context, tenant.Scope, string) ([]reminder.Reminder, error) {
	return nil, nil
}
func (stubReminderRepo) FindByID(context.Context, tenant.Scope, string) (*reminder.Reminder, error) {
	return nil, nil
}
func (stubReminderRepo) Update(context.Context, tenant.Scope, *reminder.Reminder) error { return nil }
func (stubReminderRepo) Delete(context.Context, tenant.Scope, string) error             { return nil }
func (stubReminderRepo) FindDueUnnotified(context.Context, time.Time, int) ([]reminder.Reminder, error) {
	return nil, nil
}
func (stubReminderRepo) MarkNotified(context.Context, string, time.Time) error { return nil }

func TestPermanentReminderError(t *testing.T) {
	t.Run("malformed event fields classified permanent", func(t *testing.T) {
		svc := reminder.NewService(stubReminderRepo{}, nil)

		// org id rusak: tidak akan pernah valid, berapa pun retry-nya
		_, err := svc.CreateSystem(context.Background(), "not-a-uuid", "also-bad", reminder.CreateReminderRequest{
			Title: "Task assigned: x",
			DueAt: "2026-01-01",
		})
		assert.Error(t, err)
		assert.True(t, permanentReminderError(err))

		_, err = svc.CreateSystem(context.Background(), "not-a-uuid", "u", reminder.CreateReminderRequest{
			Title: "Task assigned: x",
			DueAt: "01/01/2026",
		})
		assert.True(t, permanentReminderError(err))
	})

	t.Run("transient errors stay retryable", func(t *testing.T) {
		assert.False(t, permanentReminderError(errors.New("connection refused")))
		assert.False(t, permanentReminderError(fmt.Errorf("exec: %w", context.DeadlineExceeded)))
	})

	t.Run("wrapped domain errors still detected", func(t *testing.T) {
		wrapped := fmt.Errorf("create reminder: %w", remindererrors.ErrInvalidDueDate)
		assert.True(t, permanentReminderError(wrapped))
	})
}
