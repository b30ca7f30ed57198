package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tourvista/internal/data/entity"
	"tourvista/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Tour, error)
	FindAll(ctx context.Context) ([]*entity.Tour, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateRatingStats writes the derived aggregates. Only the rating flow
	// may call this.
	UpdateRatingStats(ctx context.Context, tourID uuid.UUID, avgRating float64, totalRatings int64) error
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

// Qualified so the column list also works in joins (saved_tours carries
// its own created_at).
const tourColumns = `tours.id, tours.title, tours.short_description, tours.description,
	       tours.price, tours.duration, tours.image, tours.gallery, tours.region,
	       tours.category, tours.overview, tours.itinerary, tours.included, tours.excluded,
	       tours.requirements, tours.pricing_policy, tours.important_info,
	       tours.average_rating, tours.total_ratings, tours.created_at, tours.updated_at`

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	overview, itinerary, err := marshalTourDetails(tour)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tours (id, title, short_description, description, price, duration, image,
		                   gallery, region, category, overview, itinerary, included, excluded,
		                   requirements, pricing_policy, important_info,
		                   average_rating, total_ratings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err = r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.ShortDescription,
		tour.Description,
		tour.Price,
		tour.Duration,
		tour.Image,
		tour.Gallery,
		tour.Region,
		tour.Category,
		overview,
		itinerary,
		tour.Included,
		tour.Excluded,
		tour.Requirements,
		tour.PricingPolicy,
		tour.ImportantInfo,
		tour.AverageRating,
		tour.TotalRatings,
		tour.CreatedAt,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("title", tour.Title),
		)
		return fmt.Errorf("create tour %s: %w", tour.Title, err)
	}

	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE id = $1 AND deleted_at IS NULL
	`

	tour, err := scanTour(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("find tour by ID %s: %w", id.String(), err)
	}

	return tour, nil
}

func (r *tourRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find tours page",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find tours limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return collectTours(rows)
}

func (r *tourRepository) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all tours", zap.Error(err))
		return nil, fmt.Errorf("find all tours: %w", err)
	}
	defer rows.Close()

	return collectTours(rows)
}

func (r *tourRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM tours WHERE deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count tours", zap.Error(err))
		return 0, fmt.Errorf("count all tours: %w", err)
	}

	return count, nil
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	overview, itinerary, err := marshalTourDetails(tour)
	if err != nil {
		return err
	}

	// average_rating / total_ratings deliberately not written here,
	// the rating flow owns those columns
	query := `
		UPDATE tours
		SET title = $2, short_description = $3, description = $4, price = $5,
		    duration = $6, image = $7, gallery = $8, region = $9, category = $10,
		    overview = $11, itinerary = $12, included = $13, excluded = $14,
		    requirements = $15, pricing_policy = $16, important_info = $17,
		    updated_at = $18
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.ShortDescription,
		tour.Description,
		tour.Price,
		tour.Duration,
		tour.Image,
		tour.Gallery,
		tour.Region,
		tour.Category,
		overview,
		itinerary,
		tour.Included,
		tour.Excluded,
		tour.Requirements,
		tour.PricingPolicy,
		tour.ImportantInfo,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
		)
		return fmt.Errorf("update tour %s: %w", tour.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", tour.ID.String())
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tours SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return fmt.Errorf("delete tour %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", id.String())
	}

	r.log.Info("Tour deleted", zap.String("tour_id", id.String()))
	return nil
}

func (r *tourRepository) UpdateRatingStats(ctx context.Context, tourID uuid.UUID, avgRating float64, totalRatings int64) error {
	query := `
		UPDATE tours
		SET average_rating = $2, total_ratings = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, tourID, avgRating, totalRatings)
	if err != nil {
		r.log.Error("Failed to update tour rating stats",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return fmt.Errorf("update tour %s rating stats: %w", tourID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", tourID.String())
	}

	return nil
}

// ==================== SCAN HELPERS ====================

func marshalTourDetails(tour *entity.Tour) (overview, itinerary []byte, err error) {
	overview, err = json.Marshal(tour.Overview)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal tour overview: %w", err)
	}
	itinerary, err = json.Marshal(tour.Itinerary)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal tour itinerary: %w", err)
	}
	return overview, itinerary, nil
}

func scanTour(row pgx.Row) (*entity.Tour, error) {
	var tour entity.Tour
	var overview, itinerary []byte

	err := row.Scan(
		&tour.ID,
		&tour.Title,
		&tour.ShortDescription,
		&tour.Description,
		&tour.Price,
		&tour.Duration,
		&tour.Image,
		&tour.Gallery,
		&tour.Region,
		&tour.Category,
		&overview,
		&itinerary,
		&tour.Included,
		&tour.Excluded,
		&tour.Requirements,
		&tour.PricingPolicy,
		&tour.ImportantInfo,
		&tour.AverageRating,
		&tour.TotalRatings,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(overview) > 0 {
		if err := json.Unmarshal(overview, &tour.Overview); err != nil {
			return nil, fmt.Errorf("unmarshal tour overview: %w", err)
		}
	}
	if len(itinerary) > 0 {
		if err := json.Unmarshal(itinerary, &tour.Itinerary); err != nil {
			return nil, fmt.Errorf("unmarshal tour itinerary: %w", err)
		}
	}

	return &tour, nil
}

func collectTours(rows pgx.Rows) ([]*entity.Tour, error) {
	var tours []*entity.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tours rows: %w", err)
	}

	return tours, nil
}
