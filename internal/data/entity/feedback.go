package entity

import (
	"math"

	"github.com/google/uuid"
)

type Feedback struct {
	BaseSimple
	ProductID uuid.UUID `db:"product_id"`
	BuyerName string    `db:"buyer_name"`
	Rating    int       `db:"rating"` // 1-5
	Comment   *string   `db:"comment"`
}

// FeedbackWithProduct dipakai untuk daftar feedback di dashboard vendor
type FeedbackWithProduct struct {
	Feedback
	ProductName string `db:"product_name"`
}

// AverageRating returns the mean rating rounded to one decimal, 0 when empty.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}
