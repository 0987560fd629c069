// internal/wire/wire.go
package wire

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"umkm-marketplace/internal/adaptor"
	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/internal/usecase"
	"umkm-marketplace/pkg/database"
	"umkm-marketplace/pkg/mailer"
	"umkm-marketplace/pkg/metrics"
	"umkm-marketplace/pkg/middleware"
	"umkm-marketplace/pkg/telemetry"
	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router http.Handler
}

// Wiring menginisialisasi semua dependencies
func Wiring(db database.PgxIface, config *utils.Config, logger *zap.Logger) (*App, error) {
	repo := repository.NewRepository(db, logger)

	sender, err := mailer.NewSender(config.Email, logger)
	if err != nil {
		return nil, fmt.Errorf("init mail sender: %w", err)
	}
	notifier, err := mailer.NewNotifier(sender, config.App.Name)
	if err != nil {
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	jwtManager := utils.NewJWTManager(config.JWT.Secret, config.JWT.TTL(), config.App.Name)

	// Initialize services dan handlers
	service := usecase.NewService(repo, config, jwtManager, notifier, logger)
	handler := adaptor.NewHandler(service, config, logger)

	// Setup router
	router := setupRouter(handler, db, jwtManager, config, logger)

	return &App{
		Router: telemetry.Middleware(config.Telemetry.ServiceName)(router),
	}, nil
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	db database.PgxIface,
	jwtManager *utils.JWTManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	// Liveness
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	// Readiness: database harus bisa di-ping
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}
		utils.ResponseSuccess(w, "Ready", nil)
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		wireAuth(r, handler.Auth, config)
		wireVendor(r, handler, jwtManager, config, logger)
		wireCatalog(r, handler.Catalog)
		wireFeedback(r, handler.Feedback, config)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
