package request

type CreateFeedbackRequest struct {
	BuyerName string  `json:"buyer_name" validate:"required,min=2,max=100"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty" validate:"omitnil,max=1000"`
}
