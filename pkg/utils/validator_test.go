package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Sup3r$ecret", true},
		{"Ab1!abcd", true},
		{"Ab1!abc", false},      // too short
		{"sup3r$ecret", false},  // no uppercase
		{"SUP3R$ECRET", false},  // no lowercase
		{"Super$ecret", false},  // no digit
		{"Sup3rSecret", false},  // no symbol
		{"", false},
		// batas bcrypt dihitung dalam byte: 72 lolos, 73 ditolak
		{"Sup3r$ecret" + strings.Repeat("a", 61), true},
		{"Sup3r$ecret" + strings.Repeat("a", 62), false},
		{"Sup3r$ecr" + strings.Repeat("é", 32), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsStrongPassword(tt.password), tt.password)
	}
}

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Phone    string `validate:"required,e164|numeric"`
	Rating   int    `validate:"required,min=1,max=5"`
}

func TestValidateStruct(t *testing.T) {
	valid := sampleRequest{Email: "a@b.co", Password: "Sup3r$ecret", Phone: "081234567890", Rating: 4}
	assert.Empty(t, ValidateStruct(valid))

	e164 := valid
	e164.Phone = "+6281234567890"
	assert.Empty(t, ValidateStruct(e164))

	invalid := sampleRequest{Email: "nope", Password: "weak", Phone: "08-12", Rating: 6}
	errs := ValidateStruct(invalid)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Contains(t, errs["Password"], "at least 8 characters")
	assert.Equal(t, "Must be a valid phone number", errs["Phone"])
	assert.Equal(t, "Maximum length is 5", errs["Rating"])
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"rating": "Maximum value is 5", "buyer_name": "This field is required"})
	assert.Equal(t, "buyer_name: This field is required; rating: Maximum value is 5", got)
}
