package middleware

import (
	"errors"
	"net/http"
	"strings"

	"umkm-marketplace/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName is set on login and accepted when no Authorization header is sent.
const SessionCookieName = "umkm_session"

const (
	MsgNoToken          = "No token provided"
	MsgInvalidFormat    = "Invalid token format. Use: Bearer <token>"
	MsgInvalidToken     = "Invalid token"
	MsgAuthRequired     = "Authentication required"
	MsgEmailNotVerified = "Email not verified"
)

// AuthJWT middleware untuk validasi session token (JWT)
func AuthJWT(jwtManager *utils.JWTManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extract token: header dulu, cookie sebagai fallback
			token, err := extractToken(r)
			if errors.Is(err, errMissingCredential) {
				utils.ResponseUnauthorized(w, MsgInvalidFormat)
				return
			}
			if errors.Is(err, errUnsupportedScheme) {
				logger.Warn("Unsupported authorization scheme",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, MsgInvalidToken)
				return
			}
			if token == "" {
				utils.ResponseUnauthorized(w, MsgNoToken)
				return
			}

			// 2. Verifikasi signature dan expiry
			identity, err := jwtManager.Parse(token)
			if err != nil {
				logger.Warn("Invalid session token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, MsgInvalidToken)
				return
			}

			// 3. Set context dengan identity DAN token
			ctx := utils.SetIdentityContext(r.Context(), identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireVerified hanya membaca payload token, tanpa query ke database
func RequireVerified(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, MsgAuthRequired)
				return
			}

			if !identity.IsVerified {
				logger.Warn("Unverified identity blocked",
					zap.String("user_id", identity.UserID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, MsgEmailNotVerified)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

var (
	errMissingCredential = errors.New("authorization header without credential")
	errUnsupportedScheme = errors.New("authorization scheme is not Bearer")
)

// extractToken mengembalikan "" tanpa error kalau tidak ada token sama sekali.
// Header tanpa credential (401) dibedakan dari credential dengan scheme lain (403).
func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		scheme, token, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
		token = strings.TrimSpace(token)
		if token == "" {
			return "", errMissingCredential
		}
		if !strings.EqualFold(scheme, "Bearer") {
			return "", errUnsupportedScheme
		}
		return token, nil
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value, nil
	}

	return "", nil
}
