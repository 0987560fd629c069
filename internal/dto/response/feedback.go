package response

import (
	"time"

	"umkm-marketplace/internal/data/entity"
)

type FeedbackResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	BuyerName   string    `json:"buyer_name"`
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converter
func FeedbackToResponse(feedback *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID.String(),
		ProductID: feedback.ProductID.String(),
		BuyerName: feedback.BuyerName,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}
}

func FeedbackListToResponse(feedback []*entity.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, len(feedback))
	for i, f := range feedback {
		out[i] = FeedbackToResponse(f)
	}
	return out
}

func FeedbackWithProductToResponse(feedback *entity.FeedbackWithProduct) FeedbackResponse {
	resp := FeedbackToResponse(&feedback.Feedback)
	resp.ProductName = feedback.ProductName
	return resp
}
