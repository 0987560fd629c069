package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Email     EmailConfig
	Token     TokenConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	Debug          bool
	LogPath        string
	BaseURL        string
	FrontendURL    string
	AllowedOrigins []string
}

// IsProduction reports whether cookies must be marked Secure.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// DSN builds a key/value connection string accepted by pgx and goose.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpiryMinutes) * time.Minute
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type TokenConfig struct {
	VerificationTTLMinutes int
	ResetTTLMinutes        int
}

func (t TokenConfig) VerificationTTL() time.Duration {
	return time.Duration(t.VerificationTTLMinutes) * time.Minute
}

func (t TokenConfig) ResetTTL() time.Duration {
	return time.Duration(t.ResetTTLMinutes) * time.Minute
}

type SecurityConfig struct {
	BcryptCost       int
	UsernameAttempts int
}

type RateLimitConfig struct {
	FeedbackPer10Min int
	GeneralPer15Min  int
	StrictPer15Min   int
}

type TelemetryConfig struct {
	ServiceName  string
	OTLPEndpoint string
}

// LoadConfig reads the given env file (if present) and the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = ".env"
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "umkm-marketplace")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("APP_BASE_URL", "http://localhost:8080")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_EXPIRY_MINUTES", 60)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("VERIFICATION_TOKEN_TTL_MINUTES", 60)
	v.SetDefault("RESET_TOKEN_TTL_MINUTES", 15)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("USERNAME_ATTEMPTS", 5)
	v.SetDefault("RATE_LIMIT_FEEDBACK", 10)
	v.SetDefault("RATE_LIMIT_GENERAL", 50)
	v.SetDefault("RATE_LIMIT_STRICT", 5)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	config := &Config{
		App: AppConfig{
			Name:           v.GetString("APP_NAME"),
			Env:            v.GetString("APP_ENV"),
			Port:           v.GetString("PORT"),
			Debug:          v.GetBool("DEBUG"),
			LogPath:        v.GetString("LOG_PATH"),
			BaseURL:        strings.TrimRight(v.GetString("APP_BASE_URL"), "/"),
			FrontendURL:    strings.TrimRight(v.GetString("FRONTEND_URL"), "/"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			ExpiryMinutes: v.GetInt("JWT_EXPIRY_MINUTES"),
		},
		Email: EmailConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			From:     v.GetString("EMAIL_FROM"),
		},
		Token: TokenConfig{
			VerificationTTLMinutes: v.GetInt("VERIFICATION_TOKEN_TTL_MINUTES"),
			ResetTTLMinutes:        v.GetInt("RESET_TOKEN_TTL_MINUTES"),
		},
		Security: SecurityConfig{
			BcryptCost:       v.GetInt("BCRYPT_COST"),
			UsernameAttempts: v.GetInt("USERNAME_ATTEMPTS"),
		},
		RateLimit: RateLimitConfig{
			FeedbackPer10Min: v.GetInt("RATE_LIMIT_FEEDBACK"),
			GeneralPer15Min:  v.GetInt("RATE_LIMIT_GENERAL"),
			StrictPer15Min:   v.GetInt("RATE_LIMIT_STRICT"),
		},
		Telemetry: TelemetryConfig{
			ServiceName:  v.GetString("APP_NAME"),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{config.App.FrontendURL}
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
