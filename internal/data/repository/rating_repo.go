package repository

import (
	"context"
	"fmt"

	"tourvista/internal/data/entity"
	"tourvista/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatingRepository interface {
	// Upsert inserts or replaces the caller's rating for a tour.
	// The (user_id, tour_id) pair is unique, so re-rating never duplicates.
	Upsert(ctx context.Context, rating *entity.Rating) error
	FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*entity.Rating, error)
	FindByUserAndTour(ctx context.Context, userID, tourID uuid.UUID) (*entity.Rating, error)

	// GetTourRatingStats recomputes the aggregates from the full rating set
	GetTourRatingStats(ctx context.Context, tourID uuid.UUID) (avgRating float64, totalRatings int64, err error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, tour_id, rating, review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, tour_id)
		DO UPDATE SET rating = EXCLUDED.rating, review = EXCLUDED.review, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.UserID,
		rating.TourID,
		rating.Rating,
		rating.Review,
		rating.CreatedAt,
		rating.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("tour_id", rating.TourID.String()),
		)
		return fmt.Errorf("upsert rating for tour %s by user %s: %w",
			rating.TourID.String(), rating.UserID.String(), err)
	}

	return nil
}

func (r *ratingRepository) FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*entity.Rating, error) {
	query := `
		SELECT id, user_id, tour_id, rating, review, created_at, updated_at
		FROM ratings
		WHERE tour_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, tourID)
	if err != nil {
		r.log.Error("Failed to find ratings by tour ID",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("find ratings by tour ID %s: %w", tourID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		var rating entity.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.UserID,
			&rating.TourID,
			&rating.Rating,
			&rating.Review,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings rows: %w", err)
	}

	return ratings, nil
}

func (r *ratingRepository) FindByUserAndTour(ctx context.Context, userID, tourID uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, tour_id, rating, review, created_at, updated_at
		FROM ratings
		WHERE user_id = $1 AND tour_id = $2
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, userID, tourID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.TourID,
		&rating.Rating,
		&rating.Review,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by user and tour",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("find rating by user %s and tour %s: %w",
			userID.String(), tourID.String(), err)
	}

	return &rating, nil
}

func (r *ratingRepository) GetTourRatingStats(ctx context.Context, tourID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) AS avg_rating,
			COUNT(*) AS rating_count
		FROM ratings
		WHERE tour_id = $1
	`

	var avgRating float64
	var ratingCount int64
	err := r.db.QueryRow(ctx, query, tourID).Scan(&avgRating, &ratingCount)
	if err != nil {
		r.log.Error("Failed to get tour rating stats",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return 0, 0, fmt.Errorf("get rating stats for tour %s: %w", tourID.String(), err)
	}

	return avgRating, ratingCount, nil
}
