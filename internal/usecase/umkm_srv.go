package usecase

import (
	"context"
	"time"

	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/dto/response"
	"umkm-marketplace/pkg/apperror"
	"umkm-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgProfileNotFound = "UMKM profile not found"
	MsgNothingToUpdate = "Nothing to update"
)

type UmkmService interface {
	GetProfile(ctx context.Context, umkmID uuid.UUID) (*response.UmkmResponse, error)
	UpdateProfile(ctx context.Context, umkmID uuid.UUID, req *request.UpdateProfileRequest) (*response.UmkmResponse, error)
}

type umkmService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUmkmService(repo *repository.Repository, log *zap.Logger) UmkmService {
	return &umkmService{
		repo: repo,
		log:  log.With(zap.String("service", "umkm")),
	}
}

func (s *umkmService) GetProfile(ctx context.Context, umkmID uuid.UUID) (*response.UmkmResponse, error) {
	umkm, err := s.repo.Umkm.FindByID(ctx, umkmID)
	if err != nil {
		s.log.Error("Failed to get umkm profile", zap.Error(err), zap.String("umkm_id", umkmID.String()))
		return nil, internalError(err)
	}
	if umkm == nil {
		return nil, apperror.NotFound(MsgProfileNotFound)
	}

	resp := response.UmkmToResponse(umkm)
	return &resp, nil
}

func (s *umkmService) UpdateProfile(ctx context.Context, umkmID uuid.UUID, req *request.UpdateProfileRequest) (*response.UmkmResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	umkm, err := s.repo.Umkm.FindByID(ctx, umkmID)
	if err != nil {
		s.log.Error("Failed to get umkm profile", zap.Error(err), zap.String("umkm_id", umkmID.String()))
		return nil, internalError(err)
	}
	if umkm == nil {
		return nil, apperror.NotFound(MsgProfileNotFound)
	}

	// Partial update: hanya field yang dikirim
	updated := false

	if req.OwnerName != nil {
		umkm.OwnerName = *req.OwnerName
		updated = true
	}
	if req.CompanyName != nil {
		umkm.CompanyName = *req.CompanyName
		updated = true
	}
	if req.PhoneNumber != nil {
		umkm.PhoneNumber = *req.PhoneNumber
		updated = true
	}
	if req.Location != nil {
		umkm.Location = optionalString(req.Location)
		updated = true
	}
	if req.OperatingHours != nil {
		umkm.OperatingHours = optionalString(req.OperatingHours)
		updated = true
	}
	if req.BannerImages != nil {
		umkm.BannerImages = req.BannerImages
		updated = true
	}
	if req.ProfileImage != nil {
		umkm.ProfileImage = optionalString(req.ProfileImage)
		updated = true
	}

	if !updated {
		return nil, apperror.BadRequest(MsgNothingToUpdate)
	}

	umkm.UpdatedAt = time.Now()
	if err := s.repo.Umkm.Update(ctx, umkm); err != nil {
		s.log.Error("Failed to update umkm profile", zap.Error(err), zap.String("umkm_id", umkmID.String()))
		return nil, internalError(err)
	}

	s.log.Info("UMKM profile updated", zap.String("umkm_id", umkmID.String()))

	resp := response.UmkmToResponse(umkm)
	return &resp, nil
}
