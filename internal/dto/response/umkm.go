package response

import (
	"time"

	"umkm-marketplace/internal/data/entity"
)

type UmkmResponse struct {
	ID             string    `json:"id"`
	OwnerName      string    `json:"owner_name"`
	CompanyName    string    `json:"company_name"`
	Username       string    `json:"username"`
	PhoneNumber    string    `json:"phone_number"`
	Location       *string   `json:"location"`
	OperatingHours *string   `json:"operating_hours"`
	BannerImages   []string  `json:"banner_images"`
	ProfileImage   *string   `json:"profile_image"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UmkmSummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Username    string `json:"username"`
}

// UmkmContact ditampilkan di halaman detail produk
type UmkmContact struct {
	ID             string  `json:"id"`
	CompanyName    string  `json:"company_name"`
	Username       string  `json:"username"`
	OwnerName      string  `json:"owner_name"`
	PhoneNumber    string  `json:"phone_number"`
	Location       *string `json:"location"`
	OperatingHours *string `json:"operating_hours"`
	ProfileImage   *string `json:"profile_image"`
}

type StoreResponse struct {
	Umkm     UmkmResponse            `json:"umkm"`
	Products []RatedProductResponse `json:"products"`
}

func UmkmToResponse(umkm *entity.Umkm) UmkmResponse {
	banners := umkm.BannerImages
	if banners == nil {
		banners = []string{}
	}
	return UmkmResponse{
		ID:             umkm.ID.String(),
		OwnerName:      umkm.OwnerName,
		CompanyName:    umkm.CompanyName,
		Username:       umkm.Username,
		PhoneNumber:    umkm.PhoneNumber,
		Location:       umkm.Location,
		OperatingHours: umkm.OperatingHours,
		BannerImages:   banners,
		ProfileImage:   umkm.ProfileImage,
		CreatedAt:      umkm.CreatedAt,
		UpdatedAt:      umkm.UpdatedAt,
	}
}

func UmkmToSummary(umkm *entity.Umkm) UmkmSummary {
	return UmkmSummary{
		ID:          umkm.ID.String(),
		CompanyName: umkm.CompanyName,
		Username:    umkm.Username,
	}
}

func UmkmToContact(umkm *entity.Umkm) UmkmContact {
	return UmkmContact{
		ID:             umkm.ID.String(),
		CompanyName:    umkm.CompanyName,
		Username:       umkm.Username,
		OwnerName:      umkm.OwnerName,
		PhoneNumber:    umkm.PhoneNumber,
		Location:       umkm.Location,
		OperatingHours: umkm.OperatingHours,
		ProfileImage:   umkm.ProfileImage,
	}
}
