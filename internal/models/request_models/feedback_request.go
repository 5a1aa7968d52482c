package request_models

import "darkshield/pkg/utils"

// AddFeedbackRequest mirrors the feedback form. Mail is accepted here but
// always replaced server-side with the verified identity email; Date is
// optional and defaults to the submission day.
type AddFeedbackRequest struct {
	Message string     `json:"message"`
	URL     string     `json:"url"`
	Issue   string     `json:"issue"`
	Mail    string     `json:"mail"`
	Date    utils.Date `json:"date"`
}
