package task_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"go-orgsuite/internal/events"
	"go-orgsuite/internal/messaging/kafka"
	"go-orgsuite/internal/shared/apperror"
	"go-orgsuite/internal/task"
	taskerrors "go-orgsuite/internal/task/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTaskRepo struct {
	createFn   func(ctx context.Context, t *task.Task) error
	findAllFn  func(ctx context.Context, sc tenant.Scope, filter task.ListFilter) ([]task.Task, error)
	findByIDFn func(ctx context.Context, sc tenant.Scope, id string) (*task.Task, error)
	updateFn   func(ctx context.Context, sc tenant.Scope, t *task.Task) error
	deleteFn   func(ctx context.Context, sc tenant.Scope, id string) error
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *task.Task) error {
	return f.createFn(ctx, t)
}

func (f *fakeTaskRepo) FindAll(ctx context.Context, sc tenant.Scope, filter task.ListFilter) ([]task.Task, error) {
	return f.findAllFn(ctx, sc, filter)
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, sc tenant.Scope, id string) (*task.Task, error) {
	return f.findByIDFn(ctx, sc, id)
}

func (f *fakeTaskRepo) Update(ctx context.Context, sc tenant.Scope, t *task.Task) error {
	return f.updateFn(ctx, sc, t)
}

func (f *fakeTaskRepo) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	return f.deleteFn(ctx, sc, id)
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(_ context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(context.Context, string) error { return nil }

func (f *fakeOutbox) MarkFailed(context.Context, string, string) error { return nil }

func TestTaskService_Create(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}

	t.Run("missing scope rejected", func(t *testing.T) {
		svc := task.NewService(&fakeTaskRepo{})

		_, err := svc.Create(context.Background(), tenant.Scope{}, task.CreateTaskRequest{Title: "Rapat"})

		assert.ErrorIs(t, err, apperror.ErrMissingScope)
	})

	t.Run("invalid due date rejected", func(t *testing.T) {
		svc := task.NewService(&fakeTaskRepo{})

		_, err := svc.Create(context.Background(), sc, task.CreateTaskRequest{
			Title:   "Rapat",
			DueDate: "31-12-2026",
		})

		assert.ErrorIs(t, err, taskerrors.ErrInvalidDueDate)
	})

	t.Run("assignment queues outbox event", func(t *testing.T) {
		assigneeID := uuid.New().String()
		repo := &fakeTaskRepo{
			createFn: func(_ context.Context, created *task.Task) error {
				assert.Equal(t, orgID, created.OrgID.String())
				assert.Equal(t, task.StatusOpen, created.Status)
				return nil
			},
		}
		outbox := &fakeOutbox{}
		svc := task.NewServiceWithOutbox(repo, outbox)

		resp, err := svc.Create(context.Background(), sc, task.CreateTaskRequest{
			Title:      "Siapkan laporan bulanan",
			AssigneeID: assigneeID,
		})

		assert.NoError(t, err)
		assert.Len(t, outbox.created, 1)
		assert.Equal(t, events.TaskAssignedTopic, outbox.created[0].Topic)
		assert.Equal(t, "task_assigned", outbox.created[0].EventType)

		var event events.TaskAssignedEvent
		assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &event))
		assert.Equal(t, resp.ID, event.TaskID)
		assert.Equal(t, assigneeID, event.AssigneeID)
	})

	t.Run("no assignee means no event", func(t *testing.T) {
		repo := &fakeTaskRepo{
			createFn: func(context.Context, *task.Task) error { return nil },
		}
		outbox := &fakeOutbox{}
		svc := task.NewServiceWithOutbox(repo, outbox)

		_, err := svc.Create(context.Background(), sc, task.CreateTaskRequest{Title: "Tanpa assignee"})

		assert.NoError(t, err)
		assert.Empty(t, outbox.created)
	})
}

func TestTaskService_Update(t *testing.T) {
	orgID := uuid.New()
	sc := tenant.Scope{ActiveOrgID: orgID.String()}
	taskID := uuid.New()

	existing := func(assignee *uuid.UUID) *task.Task {
		return &task.Task{
			ID:         taskID,
			OrgID:      orgID,
			Title:      "Lama",
			Status:     task.StatusOpen,
			AssigneeID: assignee,
		}
	}

	t.Run("reassignment queues event", func(t *testing.T) {
		oldAssignee := uuid.New()
		newAssignee := uuid.New()
		repo := &fakeTaskRepo{
			findByIDFn: func(context.Context, tenant.Scope, string) (*task.Task, error) {
				return existing(&oldAssignee), nil
			},
			updateFn: func(context.Context, tenant.Scope, *task.Task) error { return nil },
		}
		outbox := &fakeOutbox{}
		svc := task.NewServiceWithOutbox(repo, outbox)

		_, err := svc.Update(context.Background(), sc, taskID.String(), task.UpdateTaskRequest{
			Title:      "Baru",
			AssigneeID: newAssignee.String(),
		})

		assert.NoError(t, err)
		assert.Len(t, outbox.created, 1)
	})

	t.Run("unchanged assignee is quiet", func(t *testing.T) {
		assignee := uuid.New()
		repo := &fakeTaskRepo{
			findByIDFn: func(context.Context, tenant.Scope, string) (*task.Task, error) {
				return existing(&assignee), nil
			},
			updateFn: func(context.Context, tenant.Scope, *task.Task) error { return nil },
		}
		outbox := &fakeOutbox{}
		svc := task.NewServiceWithOutbox(repo, outbox)

		_, err := svc.Update(context.Background(), sc, taskID.String(), task.UpdateTaskRequest{
			Title:      "Baru",
			AssigneeID: assignee.String(),
		})

		assert.NoError(t, err)
		assert.Empty(t, outbox.created)
	})

	t.Run("row outside scope reported as not found", func(t *testing.T) {
		repo := &fakeTaskRepo{
			findByIDFn: func(context.Context, tenant.Scope, string) (*task.Task, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := task.NewService(repo)

		_, err := svc.Update(context.Background(), sc, taskID.String(), task.UpdateTaskRequest{Title: "Baru"})

		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	sc := tenant.Scope{ActiveOrgID: uuid.New().String()}

	repo := &fakeTaskRepo{
		deleteFn: func(context.Context, tenant.Scope, string) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := task.NewService(repo)

	err := svc.Delete(context.Background(), sc, uuid.New().String())

	assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
}
