package task

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-orgsuite/internal/events"
	"go-orgsuite/internal/messaging/kafka"
	"go-orgsuite/internal/shared/contextutil"
	taskerrors "go-orgsuite/internal/task/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, sc tenant.Scope, req CreateTaskRequest) (TaskResponse, error)
	GetAll(ctx context.Context, sc tenant.Scope, filter ListFilter) ([]TaskResponse, error)
	GetByID(ctx context.Context, sc tenant.Scope, id string) (TaskResponse, error)
	Update(ctx context.Context, sc tenant.Scope, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, logger...)
}

func NewServiceWithOutbox(repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, sc tenant.Scope, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	// Create wajib punya org aktif; global view tidak membebaskan tulis
	orgID, err := sc.RequireOrg()
	if err != nil {
		return TaskResponse{}, err
	}

	s.logger.Debug("create task requested",
		zap.String("request_id", rid),
		zap.String("org_id", orgID),
		zap.String("title", req.Title),
	)

	t := &Task{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusOpen,
		ProgramID:   uuidPtr(req.ProgramID),
		AssigneeID:  uuidPtr(req.AssigneeID),
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidDueDate
		}
		t.DueDate = &due
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}

	if t.AssigneeID != nil {
		if err := s.queueAssignedEvent(ctx, rid, t); err != nil {
			// Task sudah tertulis; event gagal hanya dicatat
			s.logger.Error("queue task assigned event failed",
				zap.String("task_id", t.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("create task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, sc tenant.Scope, filter ListFilter) ([]TaskResponse, error) {
	if _, err := sc.RequireOrg(); err != nil {
		return nil, err
	}

	tasks, err := s.repo.FindAll(ctx, sc, filter)
	if err != nil {
		s.logger.Error("get all tasks failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(tasks), nil
}

func (s *service) GetByID(ctx context.Context, sc tenant.Scope, id string) (TaskResponse, error) {
	t, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, sc tenant.Scope, id string, req UpdateTaskRequest) (TaskResponse, error) {
	if _, err := sc.RequireOrg(); err != nil {
		return TaskResponse{}, err
	}

	existing, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	prevAssignee := existing.AssigneeID

	existing.Title = req.Title
	existing.Description = req.Description
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.ProgramID = uuidPtr(req.ProgramID)
	existing.AssigneeID = uuidPtr(req.AssigneeID)
	if req.DueDate != "" {
		due, parseErr := time.Parse("2006-01-02", req.DueDate)
		if parseErr == nil {
			existing.DueDate = &due
		}
	}

	if err := s.repo.Update(ctx, sc, existing); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	if existing.AssigneeID != nil && (prevAssignee == nil || *prevAssignee != *existing.AssigneeID) {
		rid := contextutil.GetRequestID(ctx)
		if err := s.queueAssignedEvent(ctx, rid, existing); err != nil {
			s.logger.Error("queue task assigned event failed",
				zap.String("task_id", existing.ID.String()),
				zap.Error(err),
			)
		}
	}

	return mapToResponse(*existing), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	if _, err := sc.RequireOrg(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("task deleted", zap.String("task_id", id), zap.String("org_id", sc.ActiveOrgID))
	return nil
}

func (s *service) queueAssignedEvent(ctx context.Context, rid string, t *Task) error {
	if s.outbox == nil {
		return nil
	}

	event := events.TaskAssignedEvent{
		EventType:  "task_assigned",
		RequestID:  rid,
		TaskID:     t.ID.String(),
		OrgID:      t.OrgID.String(),
		AssigneeID: t.AssigneeID.String(),
		Title:      t.Title,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "task",
		AggregateID:   t.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TaskAssignedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}
	return err
}

func uuidPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		OrgID:       t.OrgID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
	if t.ProgramID != nil {
		resp.ProgramID = t.ProgramID.String()
	}
	if t.AssigneeID != nil {
		resp.AssigneeID = t.AssigneeID.String()
	}
	return resp
}

func mapToListResponse(tasks []Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, mapToResponse(t))
	}
	return result
}
