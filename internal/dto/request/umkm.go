package request

// UpdateProfileRequest hanya mengubah field yang dikirim (partial update).
// String kosong pada field opsional berarti mengosongkan nilai.
type UpdateProfileRequest struct {
	OwnerName      *string  `json:"owner_name,omitempty" validate:"omitnil,min=3,max=100"`
	CompanyName    *string  `json:"company_name,omitempty" validate:"omitnil,min=3,max=150"`
	PhoneNumber    *string  `json:"phone_number,omitempty" validate:"omitnil,e164|numeric"`
	Location       *string  `json:"location,omitempty" validate:"omitnil,max=255"`
	OperatingHours *string  `json:"operating_hours,omitempty" validate:"omitnil,max=100"`
	BannerImages   []string `json:"banner_images,omitempty" validate:"omitnil,max=3,dive,url"`
	ProfileImage   *string  `json:"profile_image,omitempty" validate:"omitempty,url"`
}
