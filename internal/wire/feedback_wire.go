package wire

import (
	"umkm-marketplace/internal/adaptor"
	"umkm-marketplace/pkg/middleware"
	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireFeedback(r chi.Router, feedbackHandler *adaptor.FeedbackHandler, config *utils.Config) {
	r.Route("/feedback", func(r chi.Router) {
		// POST /feedback/{id}: id produk, 10 request / 10 menit per IP
		r.With(middleware.FeedbackLimit(config.RateLimit.FeedbackPer10Min)).Post("/{id}", feedbackHandler.SubmitFeedback)

		// GET /feedback/{id}: id produk
		r.Get("/{id}", feedbackHandler.GetProductFeedback)

		// DELETE /feedback/{id}: id feedback, tanpa auth
		r.Delete("/{id}", feedbackHandler.DeleteFeedback)
	})
}
