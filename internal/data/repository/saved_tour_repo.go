package repository

import (
	"context"
	"fmt"

	"tourvista/internal/data/entity"
	"tourvista/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SavedTourRepository interface {
	// Save bookmarks a tour for a user. Saving twice is a no-op.
	Save(ctx context.Context, userID, tourID uuid.UUID) error
	// Remove deletes the bookmark. Removing an absent row is a no-op.
	Remove(ctx context.Context, userID, tourID uuid.UUID) error
	// FindToursByUserID returns the saved tours themselves, newest save first
	FindToursByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error)
}

type savedTourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSavedTourRepository(db database.PgxIface, log *zap.Logger) SavedTourRepository {
	return &savedTourRepository{
		db:  db,
		log: log.With(zap.String("repository", "saved_tour")),
	}
}

func (r *savedTourRepository) Save(ctx context.Context, userID, tourID uuid.UUID) error {
	query := `
		INSERT INTO saved_tours (user_id, tour_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, tour_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, tourID)
	if err != nil {
		r.log.Error("Failed to save tour",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return fmt.Errorf("save tour %s for user %s: %w", tourID.String(), userID.String(), err)
	}

	return nil
}

func (r *savedTourRepository) Remove(ctx context.Context, userID, tourID uuid.UUID) error {
	query := `DELETE FROM saved_tours WHERE user_id = $1 AND tour_id = $2`

	_, err := r.db.Exec(ctx, query, userID, tourID)
	if err != nil {
		r.log.Error("Failed to remove saved tour",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return fmt.Errorf("remove saved tour %s for user %s: %w", tourID.String(), userID.String(), err)
	}

	return nil
}

func (r *savedTourRepository) FindToursByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		JOIN saved_tours st ON st.tour_id = tours.id
		WHERE st.user_id = $1 AND tours.deleted_at IS NULL
		ORDER BY st.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find saved tours",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find saved tours for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectTours(rows)
}
