package repository

import (
	"errors"

	"umkm-marketplace/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Umkm       UmkmRepository
	Product    ProductRepository
	Feedback   FeedbackRepository
	ResetToken ResetTokenRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Umkm:       NewUmkmRepository(db, log),
		Product:    NewProductRepository(db, log),
		Feedback:   NewFeedbackRepository(db, log),
		ResetToken: NewResetTokenRepository(db, log),
	}
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
