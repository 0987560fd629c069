package usecase

import (
	"errors"
	"strings"

	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/pkg/apperror"
	"umkm-marketplace/pkg/mailer"
	"umkm-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Umkm     UmkmService
	Product  ProductService
	Catalog  CatalogService
	Feedback FeedbackService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	jwt *utils.JWTManager,
	notifier mailer.Notifier,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, jwt, notifier, log),
		Umkm:     NewUmkmService(repo, log),
		Product:  NewProductService(repo, log),
		Catalog:  NewCatalogService(repo, log),
		Feedback: NewFeedbackService(repo, log),
	}
}

const msgInternal = "Internal server error"

// internalError hides err from the caller; it is logged by the service beforehand.
func internalError(err error) *apperror.AppError {
	return apperror.Internal(err, msgInternal)
}

// validationError keeps the flattened field list as cause for logging
func validationError(errs map[string]string) error {
	appErr := apperror.Validation(errs)
	appErr.Err = errors.New(utils.FormatValidationErrors(errs))
	return appErr
}

func parseID(raw, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// optionalString: string kosong berarti hapus nilai
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

var errUmkmMissing = errors.New("umkm profile missing for user")
