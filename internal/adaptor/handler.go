package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"umkm-marketplace/internal/usecase"
	"umkm-marketplace/pkg/apperror"
	"umkm-marketplace/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Auth     *AuthHandler
	Umkm     *UmkmHandler
	Product  *ProductHandler
	Catalog  *CatalogHandler
	Feedback *FeedbackHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config, log),
		Umkm:     NewUmkmHandler(service.Umkm, log),
		Product:  NewProductHandler(service.Product, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Feedback: NewFeedbackHandler(service.Feedback, log),
	}
}

// decodeBody menulis 400 sendiri kalau body tidak valid
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// currentIdentity membaca identity yang di-set AuthJWT
func currentIdentity(w http.ResponseWriter, r *http.Request) (*utils.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return nil, false
	}
	return identity, true
}

// handleServiceError maps an *apperror.AppError to its status and envelope.
// Anything else is treated as internal and never echoed to the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	status := apperror.HTTPStatus(appErr.Code)
	if status >= http.StatusInternalServerError {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
	} else {
		log.Warn(operation+" failed",
			zap.String("code", string(appErr.Code)),
			zap.String("message", appErr.Message),
			zap.String("operation", operation))
	}

	var fieldErrors any
	if fields, ok := appErr.Meta["fields"]; ok {
		fieldErrors = fields
	}

	utils.ResponseJSON(w, status, false, appErr.Message, nil, fieldErrors)
}
