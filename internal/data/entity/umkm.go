package entity

import "github.com/google/uuid"

// Umkm adalah profil toko milik satu user (1:1)
type Umkm struct {
	Base
	UserID         uuid.UUID `db:"user_id"`
	OwnerName      string    `db:"owner_name"`
	CompanyName    string    `db:"company_name"`
	Username       string    `db:"username"`
	PhoneNumber    string    `db:"phone_number"`
	Location       *string   `db:"location"`
	OperatingHours *string   `db:"operating_hours"`
	BannerImages   []string  `db:"banner_images"`
	ProfileImage   *string   `db:"profile_image"`
}
