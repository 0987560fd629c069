package request

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	OwnerName   string `json:"owner_name" validate:"required,min=3,max=100"`
	CompanyName string `json:"company_name" validate:"required,min=3,max=150"`
	PhoneNumber string `json:"phone_number" validate:"required,e164|numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required,uuid4"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required,uuid4"`
	NewPassword string `json:"new_password" validate:"required,password"`
}

// NewPassword dicek kekuatannya di service, setelah password lama cocok.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}
