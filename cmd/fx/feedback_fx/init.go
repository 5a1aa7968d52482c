package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"darkshield/internal/api/controllers"
	"darkshield/internal/repositories"
	"darkshield/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface, verifier services.IdentityVerifierInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService, verifier)
}
