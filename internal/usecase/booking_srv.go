package usecase

import (
	"context"
	"fmt"
	"time"

	"tourvista/internal/data/entity"
	"tourvista/internal/data/repository"
	"tourvista/internal/dto/request"
	"tourvista/internal/dto/response"
	"tourvista/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking persists a new booking in confirmed status. When
	// idempotencyKey is non-empty and was seen before, the booking it
	// originally produced is returned instead of a duplicate.
	CreateBooking(ctx context.Context, userID uuid.UUID, idempotencyKey string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// GetUserBookings lists a user's bookings. Non-admin callers may only
	// read their own.
	GetUserBookings(ctx context.Context, callerID uuid.UUID, callerRole string, targetUserID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// UpdateStatus applies the transition policy: the owning user may only
	// cancel a pending or confirmed booking, an admin may set any status.
	UpdateStatus(ctx context.Context, callerID uuid.UUID, callerRole string, bookingID, newStatus string) (*response.BookingResponse, error)

	// DeleteBooking hard-deletes a booking. Owner or admin only.
	DeleteBooking(ctx context.Context, callerID uuid.UUID, callerRole string, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, idempotencyKey string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", req.TourID, err)
	}

	// Date-only comparison against the server's local calendar day, a
	// booking for today is fine. Both sides are built as UTC midnight so
	// only the dates are compared, never clock time or zone offset.
	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("invalid travel date %s, expected YYYY-MM-DD", req.TravelDate)
	}
	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if travelDate.Before(today) {
		return nil, fmt.Errorf("travel date cannot be in the past")
	}

	// Replay of a known idempotency key returns the original booking
	if idempotencyKey != "" {
		existingID, found, err := s.repo.Idempotency.FindBookingID(ctx, idempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}
		if found {
			existing, err := s.repo.Booking.FindByID(ctx, existingID)
			if err != nil {
				return nil, fmt.Errorf("create booking: %w", err)
			}
			if existing != nil {
				s.log.Info("Booking create replayed via idempotency key",
					zap.String("booking_id", existing.ID.String()),
					zap.String("user_id", userID.String()))
				return s.buildBookingResponse(ctx, existing), nil
			}
		}
	}

	// Tour must exist, its current price is snapshotted into the booking
	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		s.log.Error("Failed to load tour for booking", zap.Error(err), zap.String("tour_id", req.TourID))
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", req.TourID)
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:              userID,
		TourID:              tourID,
		Participants:        req.Participants,
		TravelDate:          travelDate,
		ContactNumber:       req.ContactNumber,
		ContactEmail:        req.Email,
		SpecialRequirements: req.SpecialRequirements,
		// Snapshot, never recomputed if the tour price changes later
		TotalPrice: tour.Price * int64(req.Participants),
		Status:     entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Best effort, a failed record only loses replay protection
	if idempotencyKey != "" {
		if err := s.repo.Idempotency.Record(ctx, idempotencyKey, booking.ID); err != nil {
			s.log.Warn("Failed to record idempotency key",
				zap.Error(err), zap.String("booking_id", booking.ID.String()))
		}

		// Opportunistic purge keeps the replay table from growing without
		// bound, also best effort
		if removed, err := s.repo.Idempotency.CleanupExpired(ctx); err != nil {
			s.log.Warn("Failed to clean up expired idempotency keys", zap.Error(err))
		} else if removed > 0 {
			s.log.Debug("Expired idempotency keys removed", zap.Int64("count", removed))
		}
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("code", utils.BookingCode(booking.ID)),
		zap.String("user_id", userID.String()),
		zap.String("tour_id", req.TourID),
		zap.Int("participants", req.Participants),
		zap.Int64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, tour.Title)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, callerID uuid.UUID, callerRole string, targetUserID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	targetID, err := uuid.Parse(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", targetUserID, err)
	}

	if callerID != targetID && callerRole != string(entity.RoleAdmin) {
		s.log.Warn("Cross-user booking list attempt",
			zap.String("caller_id", callerID.String()),
			zap.String("target_id", targetUserID))
		return nil, fmt.Errorf("unauthorized to view these bookings")
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, targetID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, limit, total), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, callerID uuid.UUID, callerRole string, bookingID, newStatus string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	status := entity.BookingStatus(newStatus)
	if !entity.ValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid booking status %s", newStatus)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if err := statusTransitionAllowed(callerID, callerRole, booking, status); err != nil {
		s.log.Warn("Booking status transition denied",
			zap.String("booking_id", bookingID),
			zap.String("caller_id", callerID.String()),
			zap.String("caller_role", callerRole),
			zap.String("from", string(booking.Status)),
			zap.String("to", newStatus),
			zap.Error(err))
		return nil, err
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", newStatus))

	booking.Status = status
	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, callerID uuid.UUID, callerRole string, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.UserID != callerID && callerRole != string(entity.RoleAdmin) {
		s.log.Warn("Cross-user booking delete attempt",
			zap.String("caller_id", callerID.String()),
			zap.String("booking_id", bookingID))
		return fmt.Errorf("unauthorized to delete this booking")
	}

	return s.repo.Booking.Delete(ctx, id)
}

// ==================== HELPER METHODS ====================

// statusTransitionAllowed is the explicit authorization guard for status
// writes. Admins may set any of the four states, including reinstating a
// cancelled booking. The owning user may only cancel, and only while the
// booking is pending or confirmed.
func statusTransitionAllowed(callerID uuid.UUID, callerRole string, booking *entity.Booking, next entity.BookingStatus) error {
	if callerRole == string(entity.RoleAdmin) {
		return nil
	}

	if booking.UserID != callerID {
		return fmt.Errorf("unauthorized to modify this booking")
	}

	if next != entity.BookingStatusCancelled {
		return fmt.Errorf("unauthorized to set status %s", string(next))
	}

	switch booking.Status {
	case entity.BookingStatusPending, entity.BookingStatusConfirmed:
		return nil
	default:
		return fmt.Errorf("cannot cancel a %s booking", string(booking.Status))
	}
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	var tourTitle string
	tour, err := s.repo.Tour.FindByID(ctx, booking.TourID)
	if err == nil && tour != nil {
		tourTitle = tour.Title
	}

	resp := response.BookingToResponse(booking, tourTitle)
	return &resp
}
