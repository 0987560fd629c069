package repository

import (
	"context"
	"fmt"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/pkg/database"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResetTokenRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type resetTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetTokenRepository(db database.PgxIface, log *zap.Logger) ResetTokenRepository {
	return &resetTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset_token")),
	}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reset token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("create reset token for user %s: %w", token.UserID.String(), err)
	}

	return nil
}

func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at
		FROM password_reset_tokens
		WHERE token = $1
	`

	var resetToken entity.PasswordResetToken
	err := pgxscan.Get(ctx, r.db, &resetToken, query, token)
	if pgxscan.NotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reset token", zap.Error(err))
		return nil, fmt.Errorf("find reset token: %w", err)
	}

	return &resetToken, nil
}

// DeleteByUserID menghapus semua token lama milik user (boleh nol baris)
func (r *resetTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM password_reset_tokens WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to delete reset tokens by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete reset tokens for user %s: %w", userID.String(), err)
	}

	return nil
}

func (r *resetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM password_reset_tokens WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reset token",
			zap.Error(err),
			zap.String("token_id", id.String()),
		)
		return fmt.Errorf("delete reset token %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reset token %s not found", id.String())
	}

	return nil
}
