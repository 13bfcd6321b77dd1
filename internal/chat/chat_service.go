package chat

import (
	"context"
	"errors"

	chaterrors "go-orgsuite/internal/chat/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=chat_service.go -destination=mock/chat_service_mock.go -package=mock
type Service interface {
	CreateThread(ctx context.Context, sc tenant.Scope, authorID string, req CreateThreadRequest) (ThreadResponse, error)
	GetThreads(ctx context.Context, sc tenant.Scope) ([]ThreadResponse, error)
	DeleteThread(ctx context.Context, sc tenant.Scope, id string) error

	PostMessage(ctx context.Context, sc tenant.Scope, authorID, threadID string, req CreateMessageRequest) (MessageResponse, error)
	GetMessages(ctx context.Context, sc tenant.Scope, threadID string) ([]MessageResponse, error)
	ToggleVote(ctx context.Context, sc tenant.Scope, userID, messageID string, req ToggleVoteRequest) (MessageResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("chat.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateThread(ctx context.Context, sc tenant.Scope, authorID string, req CreateThreadRequest) (ThreadResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return ThreadResponse{}, err
	}

	thread := &Thread{
		ID:       uuid.New(),
		OrgID:    uuid.MustParse(orgID),
		AuthorID: uuid.MustParse(authorID),
		Title:    req.Title,
	}

	if err := s.repo.CreateThread(ctx, thread); err != nil {
		return ThreadResponse{}, err
	}
	return mapThread(*thread), nil
}

func (s *service) GetThreads(ctx context.Context, sc tenant.Scope) ([]ThreadResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	threads, err := s.repo.FindThreads(ctx, sc)
	if err != nil {
		return nil, err
	}

	res := make([]ThreadResponse, len(threads))
	for i, th := range threads {
		res[i] = mapThread(th)
	}
	return res, nil
}

func (s *service) DeleteThread(ctx context.Context, sc tenant.Scope, id string) error {
	if err := s.repo.DeleteThread(ctx, sc, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chaterrors.ErrThreadNotFound
		}
		return err
	}
	return nil
}

func (s *service) PostMessage(ctx context.Context, sc tenant.Scope, authorID, threadID string, req CreateMessageRequest) (MessageResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return MessageResponse{}, err
	}

	thread, err := s.repo.FindThreadByID(ctx, sc, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageResponse{}, chaterrors.ErrThreadNotFound
		}
		return MessageResponse{}, err
	}

	var parentID *uuid.UUID
	if req.ParentID != "" {
		parent, err := s.repo.FindMessageByID(ctx, sc, req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return MessageResponse{}, chaterrors.ErrMessageNotFound
			}
			return MessageResponse{}, err
		}
		if parent.ThreadID != thread.ID {
			return MessageResponse{}, chaterrors.ErrParentNotInThread
		}
		parentID = &parent.ID
	}

	msg := &Message{
		ID:       uuid.New(),
		OrgID:    uuid.MustParse(orgID),
		ThreadID: thread.ID,
		ParentID: parentID,
		AuthorID: uuid.MustParse(authorID),
		Body:     req.Body,
		Poll:     buildPoll(req.Poll),
	}

	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return MessageResponse{}, err
	}
	return mapMessage(*msg), nil
}

func (s *service) GetMessages(ctx context.Context, sc tenant.Scope, threadID string) ([]MessageResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.FindThreadByID(ctx, sc, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, chaterrors.ErrThreadNotFound
		}
		return nil, err
	}

	messages, err := s.repo.FindMessages(ctx, sc, threadID)
	if err != nil {
		return nil, err
	}

	res := make([]MessageResponse, len(messages))
	for i, m := range messages {
		res[i] = mapMessage(m)
	}
	return res, nil
}

func (s *service) ToggleVote(ctx context.Context, sc tenant.Scope, userID, messageID string, req ToggleVoteRequest) (MessageResponse, error) {
	if _, err := sc.RequireOrg(); err != nil {
		return MessageResponse{}, err
	}

	msg, err := s.repo.FindMessageByID(ctx, sc, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageResponse{}, chaterrors.ErrMessageNotFound
		}
		return MessageResponse{}, err
	}
	if msg.Poll == nil {
		return MessageResponse{}, chaterrors.ErrNoPoll
	}

	if !msg.Poll.ToggleVote(req.OptionID, userID) {
		return MessageResponse{}, chaterrors.ErrUnknownPollOption
	}

	if err := s.repo.UpdatePoll(ctx, sc, msg); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageResponse{}, chaterrors.ErrMessageNotFound
		}
		return MessageResponse{}, err
	}
	return mapMessage(*msg), nil
}

func buildPoll(req *CreatePollRequest) *Poll {
	if req == nil {
		return nil
	}
	poll := &Poll{Question: req.Question}
	for _, text := range req.Options {
		poll.Options = append(poll.Options, PollOption{
			ID:       uuid.NewString(),
			Text:     text,
			VoterIDs: []string{},
		})
	}
	return poll
}

func mapThread(th Thread) ThreadResponse {
	return ThreadResponse{
		ID:       th.ID.String(),
		OrgID:    th.OrgID.String(),
		AuthorID: th.AuthorID.String(),
		Title:    th.Title,
	}
}

func mapMessage(msg Message) MessageResponse {
	resp := MessageResponse{
		ID:       msg.ID.String(),
		ThreadID: msg.ThreadID.String(),
		AuthorID: msg.AuthorID.String(),
		Body:     msg.Body,
		Poll:     msg.Poll,
	}
	if msg.ParentID != nil {
		resp.ParentID = msg.ParentID.String()
	}
	return resp
}
