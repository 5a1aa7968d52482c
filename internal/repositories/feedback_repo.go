package repositories

import (
	"context"

	"gorm.io/gorm"

	"darkshield/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	CreateMessage(ctx context.Context, message *db_models.Message) error
	ListMessages(ctx context.Context) ([]db_models.Message, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateMessage(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *FeedbackRepository) ListMessages(ctx context.Context) ([]db_models.Message, error) {
	messages := make([]db_models.Message, 0)
	err := r.db.WithContext(ctx).Find(&messages).Error
	return messages, err
}
