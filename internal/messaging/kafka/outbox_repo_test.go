package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-orgsuite/internal/events"
	"go-orgsuite/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newOutboxWithMock(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return kafka.NewOutboxRepository(db), mock
}

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     uuid.New().String(),
		AggregateType: "task",
		AggregateID:   uuid.New().String(),
		EventType:     "task_assigned",
		Topic:         events.TaskAssignedTopic,
		Payload:       []byte(`{"task_id":"t1"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO outbox_events")

	t.Run("writes row with caller connection", func(t *testing.T) {
		repo, mock := newOutboxWithMock(t)
		event := pendingEvent()

		mock.ExpectExec(insert).
			WithArgs(event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(context.Background(), event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rides the caller transaction via WithTx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		mock.ExpectBegin()
		mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		tx, err := db.Begin()
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db).WithTx(tx)
		assert.NoError(t, repo.Create(context.Background(), pendingEvent()))
		assert.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	repo, mock := newOutboxWithMock(t)
	event := pendingEvent()

	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		event.ID, event.AggregateType, event.AggregateID, event.EventType,
		event.Topic, event.Payload, event.Status, 2, time.Now(),
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	got, err := repo.ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, event.ID, got[0].ID)
	assert.Equal(t, 2, got[0].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	repo, mock := newOutboxWithMock(t)
	id := uuid.New().String()

	// backoff linear 15 detik per retry, mentok di 10 step, pesan
	// error dipotong 500 karakter
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs(id, kafka.OutboxStatusFailed, "broker down", 500, 10, 15).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	repo, mock := newOutboxWithMock(t)
	id := uuid.New().String()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs(id, kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	t.Run("complete event accepted", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(pendingEvent()))
	})

	t.Run("missing topic rejected", func(t *testing.T) {
		event := pendingEvent()
		event.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		event := pendingEvent()
		event.Status = "queued"
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})
}
