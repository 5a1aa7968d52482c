package services

import (
	"context"

	"darkshield/internal/models/db_models"
	"darkshield/internal/repositories"
	"darkshield/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, message *db_models.Message, verifiedEmail string) (*db_models.Message, error)
	GetAllFeedback(ctx context.Context) ([]db_models.Message, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// AddFeedback persists a feedback message. The mail field is always replaced
// with the verified identity email; whatever the client sent is discarded.
// A missing date defaults to the submission day.
func (s *FeedbackService) AddFeedback(ctx context.Context, message *db_models.Message, verifiedEmail string) (*db_models.Message, error) {
	message.Mail = verifiedEmail
	if message.Date.IsZero() {
		message.Date = utils.Today()
	}

	if err := s.feedbackRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *FeedbackService) GetAllFeedback(ctx context.Context) ([]db_models.Message, error) {
	return s.feedbackRepo.ListMessages(ctx)
}
