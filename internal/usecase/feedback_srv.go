package usecase

import (
	"context"
	"time"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/dto/response"
	"umkm-marketplace/pkg/apperror"
	"umkm-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MsgFeedbackNotFound = "Feedback not found"

type FeedbackService interface {
	// Public endpoints
	SubmitFeedback(ctx context.Context, productID string, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error)
	GetProductFeedback(ctx context.Context, productID string) ([]response.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, feedbackID string) error

	// Vendor dashboard
	GetUmkmFeedback(ctx context.Context, umkmID uuid.UUID) ([]response.FeedbackResponse, error)
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, productID string, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit feedback validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	id, err := parseID(productID, "product")
	if err != nil {
		return nil, err
	}

	// Check if product exists
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check product for feedback", zap.Error(err), zap.String("product_id", productID))
		return nil, internalError(err)
	}
	if product == nil {
		return nil, apperror.NotFound(MsgProductNotFound)
	}

	feedback := &entity.Feedback{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ProductID: product.ID,
		BuyerName: req.BuyerName,
		Rating:    req.Rating,
		Comment:   optionalString(req.Comment),
	}

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		s.log.Error("Failed to create feedback", zap.Error(err), zap.String("product_id", productID))
		return nil, internalError(err)
	}

	s.log.Info("Feedback submitted",
		zap.String("feedback_id", feedback.ID.String()),
		zap.String("product_id", productID),
		zap.Int("rating", req.Rating),
	)

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) GetProductFeedback(ctx context.Context, productID string) ([]response.FeedbackResponse, error) {
	id, err := parseID(productID, "product")
	if err != nil {
		return nil, err
	}

	feedback, err := s.repo.Feedback.FindByProductID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product feedback", zap.Error(err), zap.String("product_id", productID))
		return nil, internalError(err)
	}

	return response.FeedbackListToResponse(feedback), nil
}

// DeleteFeedback tidak memeriksa kepemilikan (endpoint publik)
func (s *feedbackService) DeleteFeedback(ctx context.Context, feedbackID string) error {
	id, err := parseID(feedbackID, "feedback")
	if err != nil {
		return err
	}

	feedback, err := s.repo.Feedback.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find feedback", zap.Error(err), zap.String("feedback_id", feedbackID))
		return internalError(err)
	}
	if feedback == nil {
		return apperror.NotFound(MsgFeedbackNotFound)
	}

	if err := s.repo.Feedback.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete feedback", zap.Error(err), zap.String("feedback_id", feedbackID))
		return internalError(err)
	}

	s.log.Info("Feedback deleted",
		zap.String("feedback_id", feedbackID),
		zap.String("product_id", feedback.ProductID.String()),
	)
	return nil
}

func (s *feedbackService) GetUmkmFeedback(ctx context.Context, umkmID uuid.UUID) ([]response.FeedbackResponse, error) {
	feedback, err := s.repo.Feedback.FindByUmkmID(ctx, umkmID)
	if err != nil {
		s.log.Error("Failed to get umkm feedback", zap.Error(err), zap.String("umkm_id", umkmID.String()))
		return nil, internalError(err)
	}

	out := make([]response.FeedbackResponse, len(feedback))
	for i, f := range feedback {
		out[i] = response.FeedbackWithProductToResponse(f)
	}
	return out, nil
}
