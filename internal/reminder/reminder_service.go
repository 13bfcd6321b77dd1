package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-orgsuite/internal/events"
	"go-orgsuite/internal/messaging/kafka"
	remindererrors "go-orgsuite/internal/reminder/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=reminder_service.go -destination=mock/reminder_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, sc tenant.Scope, userID string, req CreateReminderRequest) (ReminderResponse, error)
	// CreateSystem dipakai consumer/worker, bukan handler HTTP:
	// org id datang eksplisit dari event, bukan dari scope request.
	CreateSystem(ctx context.Context, orgID, userID string, req CreateReminderRequest) (ReminderResponse, error)
	GetMine(ctx context.Context, sc tenant.Scope, userID string) ([]ReminderResponse, error)
	Update(ctx context.Context, sc tenant.Scope, id string, req UpdateReminderRequest) (ReminderResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error

	// DispatchDue dipanggil worker: kirim event untuk reminder yang
	// jatuh tempo dan belum dinotifikasi.
	DispatchDue(ctx context.Context, now time.Time, limit int) (int, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("reminder.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reminder.service")
	}
	return &service{repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, sc tenant.Scope, userID string, req CreateReminderRequest) (ReminderResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return ReminderResponse{}, err
	}
	return s.CreateSystem(ctx, orgID, userID, req)
}

func (s *service) CreateSystem(ctx context.Context, orgID, userID string, req CreateReminderRequest) (ReminderResponse, error) {
	due, err := time.Parse("2006-01-02", req.DueAt)
	if err != nil {
		return ReminderResponse{}, remindererrors.ErrInvalidDueDate
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return ReminderResponse{}, remindererrors.ErrInvalidReminderTarget
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ReminderResponse{}, remindererrors.ErrInvalidReminderTarget
	}

	rem := &Reminder{
		ID:     uuid.New(),
		OrgID:  oid,
		UserID: uid,
		Title:  req.Title,
		Notes:  req.Notes,
		DueAt:  due,
	}

	if err := s.repo.Create(ctx, rem); err != nil {
		s.logger.Error("create reminder persist failed", zap.Error(err))
		return ReminderResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rem), nil
}

func (s *service) GetMine(ctx context.Context, sc tenant.Scope, userID string) ([]ReminderResponse, error) {
	if _, err := sc.RequireOrg(); err != nil {
		return nil, err
	}

	reminders, err := s.repo.FindAllByUser(ctx, sc, userID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	result := make([]ReminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		result = append(result, mapToResponse(rem))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, sc tenant.Scope, id string, req UpdateReminderRequest) (ReminderResponse, error) {
	existing, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return ReminderResponse{}, mapRepositoryError(err)
	}

	due, err := time.Parse("2006-01-02", req.DueAt)
	if err != nil {
		return ReminderResponse{}, remindererrors.ErrInvalidDueDate
	}

	existing.Title = req.Title
	existing.Notes = req.Notes
	existing.DueAt = due
	if req.Done != nil {
		existing.Done = *req.Done
	}

	if err := s.repo.Update(ctx, sc, existing); err != nil {
		return ReminderResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*existing), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) DispatchDue(ctx context.Context, now time.Time, limit int) (int, error) {
	due, err := s.repo.FindDueUnnotified(ctx, now, limit)
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, rem := range due {
		event := events.ReminderDueEvent{
			EventType:  "reminder_due",
			ReminderID: rem.ID.String(),
			OrgID:      rem.OrgID.String(),
			UserID:     rem.UserID.String(),
			Title:      rem.Title,
			DueAt:      rem.DueAt,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return dispatched, err
		}

		if s.outbox != nil {
			if err := s.outbox.Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				AggregateType: "reminder",
				AggregateID:   rem.ID.String(),
				EventType:     event.EventType,
				Topic:         events.ReminderDueTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				s.logger.Error("queue reminder due event failed",
					zap.String("reminder_id", rem.ID.String()),
					zap.Error(err),
				)
				continue
			}
		}

		if err := s.repo.MarkNotified(ctx, rem.ID.String(), now); err != nil {
			s.logger.Error("mark reminder notified failed",
				zap.String("reminder_id", rem.ID.String()),
				zap.Error(err),
			)
			continue
		}
		dispatched++
	}

	return dispatched, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return remindererrors.ErrReminderNotFound
	}
	return err
}

func mapToResponse(rem Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        rem.ID.String(),
		OrgID:     rem.OrgID.String(),
		UserID:    rem.UserID.String(),
		Title:     rem.Title,
		Notes:     rem.Notes,
		DueAt:     rem.DueAt,
		Done:      rem.Done,
		CreatedAt: rem.CreatedAt,
	}
}
