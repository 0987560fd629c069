package wire

import (
	"umkm-marketplace/internal/adaptor"
	"umkm-marketplace/pkg/middleware"
	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, config *utils.Config) {
	r.Route("/auth", func(r chi.Router) {
		// ==================== STRICT LIMIT ====================
		// Login dan register: 5 percobaan / 15 menit per IP
		r.Group(func(r chi.Router) {
			r.Use(middleware.StrictLimit(config.RateLimit.StrictPer15Min))

			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// ==================== GENERAL LIMIT ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.GeneralLimit(config.RateLimit.GeneralPer15Min))

			r.Get("/verify-email", authHandler.VerifyEmail)
			r.Post("/resend-verification", authHandler.ResendVerification)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		r.Post("/logout", authHandler.Logout)
	})
}
