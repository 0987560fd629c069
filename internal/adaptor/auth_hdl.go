package adaptor

import (
	"net/http"
	"time"

	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/usecase"
	"umkm-marketplace/pkg/middleware"
	"umkm-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service      usecase.AuthService
	cookieSecure bool
	sessionTTL   time.Duration
	log          *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieSecure: config.App.IsProduction(),
		sessionTTL:   config.JWT.TTL(),
		log:          log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful. Please check your email to verify your account", response)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	http.SetCookie(w, h.sessionCookie(response.Token, int(h.sessionTTL.Seconds())))
	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/v1/auth/logout
// Token stateless, cukup hapus cookie di client.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	utils.ResponseSuccess(w, "Logout successful", nil)
}

// VerifyEmail handles GET /api/v1/auth/verify-email?token=
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	req := request.VerifyEmailRequest{Token: r.URL.Query().Get("token")}

	message, err := h.service.VerifyEmail(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "verify email")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// ResendVerification handles POST /api/v1/auth/resend-verification
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req request.ResendVerificationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	message, err := h.service.ResendVerification(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "resend verification")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// ForgotPassword handles POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	message, err := h.service.ForgotPassword(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "forgot password")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// ResetPassword handles POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successful. You can now log in with your new password", nil)
}

// UpdatePassword handles PUT /api/v1/vendor/update-password
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req request.UpdatePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.UpdatePassword(r.Context(), identity.UserID, &req); err != nil {
		handleServiceError(w, h.log, err, "update password")
		return
	}

	utils.ResponseSuccess(w, "Password updated successfully", nil)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}
