package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the signed payload of a session token.
type SessionClaims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	UmkmID     string `json:"umkm_id"`
	Username   string `json:"username"`
	IsVerified bool   `json:"is_verified"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 session tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewJWTManager(secret string, ttl time.Duration, issuer string) *JWTManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

func (m *JWTManager) TTL() time.Duration {
	return m.ttl
}

// Generate signs a token for identity and returns it with its expiry.
func (m *JWTManager) Generate(identity Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := SessionClaims{
		UserID:     identity.UserID.String(),
		Email:      identity.Email,
		UmkmID:     identity.UmkmID.String(),
		Username:   identity.Username,
		IsVerified: identity.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Parse verifies signature and expiry and decodes the identity.
func (m *JWTManager) Parse(tokenString string) (*Identity, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}
	umkmID, err := uuid.Parse(claims.UmkmID)
	if err != nil {
		return nil, fmt.Errorf("invalid token umkm: %w", err)
	}

	return &Identity{
		UserID:     userID,
		Email:      claims.Email,
		UmkmID:     umkmID,
		Username:   claims.Username,
		IsVerified: claims.IsVerified,
	}, nil
}
