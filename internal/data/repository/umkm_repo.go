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

type UmkmRepository interface {
	Create(ctx context.Context, umkm *entity.Umkm) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Umkm, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Umkm, error)
	FindByUsername(ctx context.Context, username string) (*entity.Umkm, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Umkm, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, umkm *entity.Umkm) error
}

type umkmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUmkmRepository(db database.PgxIface, log *zap.Logger) UmkmRepository {
	return &umkmRepository{
		db:  db,
		log: log.With(zap.String("repository", "umkm")),
	}
}

const umkmColumns = `id, user_id, owner_name, company_name, username, phone_number,
		       location, operating_hours, banner_images, profile_image, created_at, updated_at`

func (r *umkmRepository) Create(ctx context.Context, umkm *entity.Umkm) error {
	query := `
		INSERT INTO umkms (id, user_id, owner_name, company_name, username, phone_number,
		                   location, operating_hours, banner_images, profile_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		umkm.ID,
		umkm.UserID,
		umkm.OwnerName,
		umkm.CompanyName,
		umkm.Username,
		umkm.PhoneNumber,
		umkm.Location,
		umkm.OperatingHours,
		nonNilStrings(umkm.BannerImages),
		umkm.ProfileImage,
		umkm.CreatedAt,
		umkm.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create umkm",
			zap.Error(err),
			zap.String("user_id", umkm.UserID.String()),
			zap.String("username", umkm.Username),
		)
		return fmt.Errorf("create umkm %s: %w", umkm.Username, err)
	}

	return nil
}

func (r *umkmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Umkm, error) {
	return r.findOne(ctx, "id", id)
}

func (r *umkmRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Umkm, error) {
	return r.findOne(ctx, "user_id", userID)
}

func (r *umkmRepository) FindByUsername(ctx context.Context, username string) (*entity.Umkm, error) {
	return r.findOne(ctx, "username", username)
}

// findOne hanya dipanggil dengan nama kolom konstan dari method di atas
func (r *umkmRepository) findOne(ctx context.Context, column string, value any) (*entity.Umkm, error) {
	query := `SELECT ` + umkmColumns + ` FROM umkms WHERE ` + column + ` = $1`

	var umkm entity.Umkm
	err := pgxscan.Get(ctx, r.db, &umkm, query, value)
	if pgxscan.NotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find umkm",
			zap.Error(err),
			zap.String("column", column),
			zap.Any("value", value),
		)
		return nil, fmt.Errorf("find umkm by %s %v: %w", column, value, err)
	}

	return &umkm, nil
}

// FindAll retrieves paginated list of umkms, newest first
func (r *umkmRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Umkm, error) {
	query := `
		SELECT ` + umkmColumns + `
		FROM umkms
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var umkms []*entity.Umkm
	if err := pgxscan.Select(ctx, r.db, &umkms, query, limit, offset); err != nil {
		r.log.Error("Failed to get all umkms",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all umkms limit %d offset %d: %w", limit, offset, err)
	}

	return umkms, nil
}

func (r *umkmRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM umkms`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting umkms", zap.Error(err))
		return 0, fmt.Errorf("count all umkms: %w", err)
	}

	return count, nil
}

// Update menulis ulang field profil; username dan user_id tidak pernah berubah
func (r *umkmRepository) Update(ctx context.Context, umkm *entity.Umkm) error {
	query := `
		UPDATE umkms
		SET owner_name = $2, company_name = $3, phone_number = $4, location = $5,
		    operating_hours = $6, banner_images = $7, profile_image = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		umkm.ID,
		umkm.OwnerName,
		umkm.CompanyName,
		umkm.PhoneNumber,
		umkm.Location,
		umkm.OperatingHours,
		nonNilStrings(umkm.BannerImages),
		umkm.ProfileImage,
		umkm.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update umkm",
			zap.Error(err),
			zap.String("umkm_id", umkm.ID.String()),
		)
		return fmt.Errorf("update umkm %s: %w", umkm.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("umkm %s not found", umkm.ID.String())
	}

	return nil
}

// kolom text[] NOT NULL tidak menerima NULL dari slice nil
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
