package response

import (
	"time"

	"umkm-marketplace/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	UmkmID      string    `json:"umkm_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RatedProductResponse struct {
	ProductResponse
	AverageRating float64 `json:"average_rating"`
}

type ProductDetailResponse struct {
	ProductResponse
	Umkm          UmkmContact        `json:"umkm"`
	AverageRating float64            `json:"average_rating"`
	Feedback      []FeedbackResponse `json:"feedback"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:          product.ID.String(),
		UmkmID:      product.UmkmID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Images:      images,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductToResponse(p)
	}
	return out
}
