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

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Feedback, error)
	FindByUmkmID(ctx context.Context, umkmID uuid.UUID) ([]*entity.FeedbackWithProduct, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindRatingsByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]int, error)
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, product_id, buyer_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		feedback.ID,
		feedback.ProductID,
		feedback.BuyerName,
		feedback.Rating,
		feedback.Comment,
		feedback.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.String("product_id", feedback.ProductID.String()),
		)
		return fmt.Errorf("create feedback for product %s: %w", feedback.ProductID.String(), err)
	}

	return nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	query := `
		SELECT id, product_id, buyer_name, rating, comment, created_at
		FROM feedback
		WHERE id = $1
	`

	var feedback entity.Feedback
	err := pgxscan.Get(ctx, r.db, &feedback, query, id)
	if pgxscan.NotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find feedback by ID",
			zap.Error(err),
			zap.String("feedback_id", id.String()),
		)
		return nil, fmt.Errorf("find feedback by ID %s: %w", id.String(), err)
	}

	return &feedback, nil
}

func (r *feedbackRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Feedback, error) {
	query := `
		SELECT id, product_id, buyer_name, rating, comment, created_at
		FROM feedback
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	var feedback []*entity.Feedback
	if err := pgxscan.Select(ctx, r.db, &feedback, query, productID); err != nil {
		r.log.Error("Failed to find feedback by product ID",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find feedback by product ID %s: %w", productID.String(), err)
	}

	return feedback, nil
}

// FindByUmkmID mengambil semua feedback untuk produk milik satu umkm
func (r *feedbackRepository) FindByUmkmID(ctx context.Context, umkmID uuid.UUID) ([]*entity.FeedbackWithProduct, error) {
	query := `
		SELECT f.id, f.product_id, f.buyer_name, f.rating, f.comment, f.created_at,
		       p.name AS product_name
		FROM feedback f
		JOIN products p ON p.id = f.product_id
		WHERE p.umkm_id = $1
		ORDER BY f.created_at DESC
	`

	var feedback []*entity.FeedbackWithProduct
	if err := pgxscan.Select(ctx, r.db, &feedback, query, umkmID); err != nil {
		r.log.Error("Failed to find feedback by umkm ID",
			zap.Error(err),
			zap.String("umkm_id", umkmID.String()),
		)
		return nil, fmt.Errorf("find feedback by umkm ID %s: %w", umkmID.String(), err)
	}

	return feedback, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM feedback WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete feedback",
			zap.Error(err),
			zap.String("feedback_id", id.String()),
		)
		return fmt.Errorf("delete feedback %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("feedback %s not found", id.String())
	}

	r.log.Info("Feedback deleted", zap.String("feedback_id", id.String()))
	return nil
}

type productRating struct {
	ProductID uuid.UUID `db:"product_id"`
	Rating    int       `db:"rating"`
}

// FindRatingsByProductIDs returns the raw ratings grouped by product.
func (r *feedbackRepository) FindRatingsByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	result := make(map[uuid.UUID][]int, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	ids := make([]string, len(productIDs))
	for i, id := range productIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT product_id, rating
		FROM feedback
		WHERE product_id = ANY($1::uuid[])
	`

	var rows []productRating
	if err := pgxscan.Select(ctx, r.db, &rows, query, ids); err != nil {
		r.log.Error("Failed to find ratings by product IDs",
			zap.Error(err),
			zap.Int("product_count", len(productIDs)),
		)
		return nil, fmt.Errorf("find ratings for %d products: %w", len(productIDs), err)
	}

	for _, row := range rows {
		result[row.ProductID] = append(result[row.ProductID], row.Rating)
	}

	return result, nil
}
