package chat

import (
	"context"

	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=chat_repo.go -destination=mock/chat_repo_mock.go -package=mock
type Repository interface {
	CreateThread(ctx context.Context, thread *Thread) error
	FindThreads(ctx context.Context, sc tenant.Scope) ([]Thread, error)
	FindThreadByID(ctx context.Context, sc tenant.Scope, id string) (*Thread, error)
	DeleteThread(ctx context.Context, sc tenant.Scope, id string) error

	CreateMessage(ctx context.Context, msg *Message) error
	FindMessages(ctx context.Context, sc tenant.Scope, threadID string) ([]Message, error)
	FindMessageByID(ctx context.Context, sc tenant.Scope, id string) (*Message, error)
	UpdatePoll(ctx context.Context, sc tenant.Scope, msg *Message) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateThread(ctx context.Context, thread *Thread) error {
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *repository) FindThreads(ctx context.Context, sc tenant.Scope) ([]Thread, error) {
	var threads []Thread
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Order("created_at DESC").
		Find(&threads).Error
	return threads, err
}

func (r *repository) FindThreadByID(ctx context.Context, sc tenant.Scope, id string) (*Thread, error) {
	var thread Thread
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&thread, "id = ?", id).Error
	return &thread, err
}

func (r *repository) DeleteThread(ctx context.Context, sc tenant.Scope, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.MutationFilter(sc)).
		Delete(&Thread{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateMessage(ctx context.Context, msg *Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *repository) FindMessages(ctx context.Context, sc tenant.Scope, threadID string) ([]Message, error) {
	var messages []Message
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *repository) FindMessageByID(ctx context.Context, sc tenant.Scope, id string) (*Message, error) {
	var msg Message
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&msg, "id = ?", id).Error
	return &msg, err
}

func (r *repository) UpdatePoll(ctx context.Context, sc tenant.Scope, msg *Message) error {
	res := r.db.WithContext(ctx).
		Model(&Message{}).
		Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", msg.ID).
		Update("poll", msg.Poll)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
