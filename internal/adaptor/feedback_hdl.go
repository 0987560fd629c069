package adaptor

import (
	"net/http"

	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/usecase"
	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// SubmitFeedback handles POST /api/v1/feedback/{id} (id = product)
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	feedback, err := h.service.SubmitFeedback(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit feedback")
		return
	}

	utils.ResponseCreated(w, "Feedback submitted successfully", feedback)
}

// GetProductFeedback handles GET /api/v1/feedback/{id} (id = product)
func (h *FeedbackHandler) GetProductFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.service.GetProductFeedback(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get product feedback")
		return
	}

	utils.ResponseSuccess(w, "Feedback retrieved successfully", feedback)
}

// DeleteFeedback handles DELETE /api/v1/feedback/{id} (id = feedback)
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFeedback(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete feedback")
		return
	}

	utils.ResponseSuccess(w, "Feedback deleted successfully", nil)
}

// GetOwnFeedback handles GET /api/v1/vendor/feedback
func (h *FeedbackHandler) GetOwnFeedback(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	feedback, err := h.service.GetUmkmFeedback(r.Context(), identity.UmkmID)
	if err != nil {
		handleServiceError(w, h.log, err, "get own feedback")
		return
	}

	utils.ResponseSuccess(w, "Feedback retrieved successfully", feedback)
}
