package wire

import (
	"umkm-marketplace/internal/adaptor"
	"umkm-marketplace/pkg/middleware"
	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireVendor: semua route /vendor butuh token valid dan email terverifikasi
func wireVendor(
	r chi.Router,
	handler *adaptor.Handler,
	jwtManager *utils.JWTManager,
	config *utils.Config,
	log *zap.Logger,
) {
	general := middleware.GeneralLimit(config.RateLimit.GeneralPer15Min)
	strict := middleware.StrictLimit(config.RateLimit.StrictPer15Min)

	r.Route("/vendor", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtManager, log))
		r.Use(middleware.RequireVerified(log))

		// Profile
		r.Get("/profile", handler.Umkm.GetProfile)
		r.With(general).Put("/profile", handler.Umkm.UpdateProfile)
		r.With(strict).Put("/update-password", handler.Auth.UpdatePassword)

		// Products (owner only)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handler.Product.GetOwnProducts)
			r.With(general).Post("/", handler.Product.CreateProduct)
			r.Get("/{id}", handler.Product.GetOwnProduct)
			r.With(general).Put("/{id}", handler.Product.UpdateProduct)
			r.With(general).Delete("/{id}", handler.Product.DeleteProduct)
		})

		// Feedback untuk semua produk milik vendor
		r.With(general).Get("/feedback", handler.Feedback.GetOwnFeedback)
	})
}
