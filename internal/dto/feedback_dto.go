package dto

// SubmitFeedbackRequest carries a rating for another user. Rating is
// decoded as a float so non-integer values reach the ledger and are
// rejected there with the rating-specific error rather than a generic
// parse failure.
type SubmitFeedbackRequest struct {
	SwapID  *string `json:"swap_id" validate:"omitempty,min=1"`
	Rating  float64 `json:"rating" validate:"required"`
	Comment string  `json:"comment" validate:"omitempty,max=300"`
}
