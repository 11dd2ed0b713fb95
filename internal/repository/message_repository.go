package repository

import (
	"context"

	"gorm.io/gorm"

	"obtconnect/internal/model"
)

// MessageRepository defines persistence operations for the bulletin board.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.TeamMessage) error
	List(ctx context.Context) ([]model.TeamMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.TeamMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// List returns all posts newest first.
func (r *messageRepository) List(ctx context.Context) ([]model.TeamMessage, error) {
	var msgs []model.TeamMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
