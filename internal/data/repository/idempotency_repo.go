package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"tourvista/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// IdempotencyRepository maps client-generated idempotency keys to the booking
// they produced, so a retried create returns the original booking instead of
// a duplicate. Keys are stored hashed and expire after 24 hours.
type IdempotencyRepository interface {
	FindBookingID(ctx context.Context, key string) (uuid.UUID, bool, error)
	Record(ctx context.Context, key string, bookingID uuid.UUID) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type idempotencyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewIdempotencyRepository(db database.PgxIface, log *zap.Logger) IdempotencyRepository {
	return &idempotencyRepository{
		db:  db,
		log: log.With(zap.String("repository", "idempotency")),
	}
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (r *idempotencyRepository) FindBookingID(ctx context.Context, key string) (uuid.UUID, bool, error) {
	query := `
		SELECT booking_id FROM booking_idempotency
		WHERE key_hash = $1 AND expires_at > NOW()
	`

	var bookingID uuid.UUID
	err := r.db.QueryRow(ctx, query, hashKey(key)).Scan(&bookingID)

	if err == pgx.ErrNoRows {
		return uuid.Nil, false, nil
	}
	if err != nil {
		r.log.Error("Failed to look up idempotency key", zap.Error(err))
		return uuid.Nil, false, fmt.Errorf("find idempotency key: %w", err)
	}

	return bookingID, true, nil
}

func (r *idempotencyRepository) Record(ctx context.Context, key string, bookingID uuid.UUID) error {
	query := `
		INSERT INTO booking_idempotency (key_hash, booking_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key_hash) DO NOTHING
	`

	expiresAt := time.Now().Add(24 * time.Hour)
	_, err := r.db.Exec(ctx, query, hashKey(key), bookingID, expiresAt)
	if err != nil {
		r.log.Error("Failed to record idempotency key",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("record idempotency key for booking %s: %w", bookingID.String(), err)
	}

	return nil
}

func (r *idempotencyRepository) CleanupExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM booking_idempotency WHERE expires_at < NOW()`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to clean up expired idempotency keys", zap.Error(err))
		return 0, fmt.Errorf("cleanup expired idempotency keys: %w", err)
	}

	return result.RowsAffected(), nil
}
