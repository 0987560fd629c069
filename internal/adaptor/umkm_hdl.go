package adaptor

import (
	"net/http"

	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/usecase"
	"umkm-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type UmkmHandler struct {
	service usecase.UmkmService
	log     *zap.Logger
}

func NewUmkmHandler(service usecase.UmkmService, log *zap.Logger) *UmkmHandler {
	return &UmkmHandler{
		service: service,
		log:     log.With(zap.String("handler", "umkm")),
	}
}

// GetProfile handles GET /api/v1/vendor/profile
func (h *UmkmHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), identity.UmkmID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// UpdateProfile handles PUT /api/v1/vendor/profile
func (h *UmkmHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), identity.UmkmID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", profile)
}
