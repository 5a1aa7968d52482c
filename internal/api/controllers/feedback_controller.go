package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"darkshield/internal/models/db_models"
	"darkshield/internal/models/request_models"
	"darkshield/internal/services"
	"darkshield/pkg/middleware"
	"darkshield/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
	verifier        services.IdentityVerifierInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface, verifier services.IdentityVerifierInterface) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		verifier:        verifier,
	}
}

// AddFeedback godoc
// @Summary Submit feedback
// @Description Store a feedback message for a Google-verified user
// @Tags Feedback
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer Google ID token"
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /feedback/add [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	// The identity token is re-verified here rather than trusting the gate;
	// nothing is persisted unless Google vouches for the sender.
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		utils.RespondError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
		return
	}

	idToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	verifiedEmail, err := f.verifier.VerifyEmail(c.Request.Context(), idToken)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired Google ID token")
		return
	}

	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	message := &db_models.Message{
		Message: req.Message,
		URL:     req.URL,
		Issue:   req.Issue,
		Mail:    req.Mail,
		Date:    req.Date,
	}

	saved, err := f.feedbackService.AddFeedback(c.Request.Context(), message, verifiedEmail)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Feedback added successfully")
}

// FeedbackForm godoc
// @Summary Feedback greeting
// @Description Greet an authenticated user before they submit feedback
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /feedback/form [get]
func (f *FeedbackController) FeedbackForm(c *gin.Context) {
	subject := c.GetString(middleware.ContextKeySubject)
	if subject == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
		return
	}
	utils.RespondSuccess(c, nil, "Welcome "+subject+", please submit your feedback.")
}

// ListFeedback godoc
// @Summary List all feedback
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /feedback/admin/get [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	messages, err := f.feedbackService.GetAllFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, messages, "Feedback fetched successfully")
}
