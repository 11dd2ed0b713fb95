package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"obtconnect/internal/model"
	"obtconnect/internal/repository"
	"obtconnect/internal/scope"
)

// MessageService is the team bulletin board. Any authenticated identity may
// read and post; posts cannot be edited or removed.
type MessageService interface {
	List(ctx context.Context) ([]model.TeamMessage, error)
	Post(ctx context.Context, identity scope.Identity, content string) (*model.TeamMessage, error)
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService creates a message board service.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) List(ctx context.Context) ([]model.TeamMessage, error) {
	return s.repo.List(ctx)
}

func (s *messageService) Post(ctx context.Context, identity scope.Identity, content string) (*model.TeamMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty message")
	}

	msg := &model.TeamMessage{
		ID:         uuid.New().String(),
		AuthorID:   identity.ID,
		AuthorName: identity.Name,
		Content:    content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}
