package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"tourvista/internal/data/entity"
	"tourvista/internal/dto/request"
)

func validBookingRequest(tourID string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		TourID:        tourID,
		Participants:  3,
		TravelDate:    time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		ContactNumber: "9876543210",
	}
}

func TestCreateBookingSnapshotsPrice(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "asha@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	booking, err := svc.Booking.CreateBooking(ctx, user.ID, "", validBookingRequest(tour.ID.String()))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if booking.TotalPrice != 6000 {
		t.Errorf("total price = %d, want 6000", booking.TotalPrice)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", booking.Status)
	}
	if !strings.HasPrefix(booking.Code, "TV") || len(booking.Code) != 10 {
		t.Errorf("booking code %q has unexpected shape", booking.Code)
	}

	// A later price edit must not touch the stored total
	tour.Price = 9999
	if err := repo.Tour.Update(ctx, tour); err != nil {
		t.Fatalf("update tour: %v", err)
	}
	page, err := svc.Booking.GetUserBookings(ctx, user.ID, string(entity.RoleUser), user.ID.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("get bookings: %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].TotalPrice != 6000 {
		t.Errorf("snapshot price changed after tour edit: %+v", page.Data)
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "asha@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	req := validBookingRequest(tour.ID.String())
	req.TravelDate = time.Now().AddDate(0, 0, -2).Format("2006-01-02")

	_, err := svc.Booking.CreateBooking(ctx, user.ID, "", req)
	if err == nil || !strings.Contains(err.Error(), "past") {
		t.Errorf("expected past-date rejection, got %v", err)
	}
}

func TestCreateBookingTodayInAnyTimezone(t *testing.T) {
	originalLocal := time.Local
	defer func() { time.Local = originalLocal }()

	// Zones straddling UTC, including the extremes on both sides
	for _, offsetHours := range []int{-12, -5, 0, 5, 14} {
		time.Local = time.FixedZone("test", offsetHours*3600)

		svc, repo := newTestService()
		ctx := context.Background()
		user := seedUser(repo, "asha@example.com", entity.RoleUser)
		tour := seedTour(repo, 2000)

		// The server's local calendar day is always bookable
		req := validBookingRequest(tour.ID.String())
		req.TravelDate = time.Now().Format("2006-01-02")
		if _, err := svc.Booking.CreateBooking(ctx, user.ID, "", req); err != nil {
			t.Errorf("UTC%+d: booking for local today rejected: %v", offsetHours, err)
		}

		// And local yesterday never is
		req = validBookingRequest(tour.ID.String())
		req.TravelDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		if _, err := svc.Booking.CreateBooking(ctx, user.ID, "", req); err == nil {
			t.Errorf("UTC%+d: booking for local yesterday accepted", offsetHours)
		}
	}
}

func TestCreateBookingValidatesParticipants(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "asha@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	for _, participants := range []int{0, 11} {
		req := validBookingRequest(tour.ID.String())
		req.Participants = participants
		_, err := svc.Booking.CreateBooking(ctx, user.ID, "", req)
		if err == nil || !strings.Contains(err.Error(), "validation failed") {
			t.Errorf("participants=%d: expected validation error, got %v", participants, err)
		}
	}
}

func TestCreateBookingIdempotencyReplay(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "asha@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	req := validBookingRequest(tour.ID.String())
	first, err := svc.Booking.CreateBooking(ctx, user.ID, "retry-key-1", req)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	second, err := svc.Booking.CreateBooking(ctx, user.ID, "retry-key-1", req)
	if err != nil {
		t.Fatalf("replay create: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("replay produced a new booking: %s vs %s", second.ID, first.ID)
	}

	count, _ := repo.Booking.CountByUserID(ctx, user.ID)
	if count != 1 {
		t.Errorf("booking count = %d, want 1", count)
	}

	// A different key is a different request
	third, err := svc.Booking.CreateBooking(ctx, user.ID, "retry-key-2", req)
	if err != nil {
		t.Fatalf("second key create: %v", err)
	}
	if third.ID == first.ID {
		t.Error("distinct keys must produce distinct bookings")
	}

	// Keyed creates also sweep expired rows from the replay table
	if calls := repo.Idempotency.(*fakeIdempotencyRepo).cleanupCalls; calls == 0 {
		t.Error("expected expired-key cleanup to run on keyed creates")
	}
}

func TestOwnerMayOnlyCancel(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := seedUser(repo, "asha@example.com", entity.RoleUser)
	stranger := seedUser(repo, "ravi@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	booking, err := svc.Booking.CreateBooking(ctx, owner.ID, "", validBookingRequest(tour.ID.String()))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// Owner cannot promote a booking
	for _, status := range []string{"confirmed", "completed", "pending"} {
		_, err := svc.Booking.UpdateStatus(ctx, owner.ID, string(entity.RoleUser), booking.ID, status)
		if err == nil {
			t.Errorf("owner set status %q, should be denied", status)
		}
	}

	// Another user cannot touch it at all
	_, err = svc.Booking.UpdateStatus(ctx, stranger.ID, string(entity.RoleUser), booking.ID, "cancelled")
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("expected unauthorized for stranger, got %v", err)
	}

	// Owner cancelling a confirmed booking is fine
	updated, err := svc.Booking.UpdateStatus(ctx, owner.ID, string(entity.RoleUser), booking.ID, "cancelled")
	if err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
	if updated.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %q, want cancelled", updated.Status)
	}

	// Once cancelled the owner cannot cancel again
	_, err = svc.Booking.UpdateStatus(ctx, owner.ID, string(entity.RoleUser), booking.ID, "cancelled")
	if err == nil || !strings.Contains(err.Error(), "cannot cancel") {
		t.Errorf("expected invalid-state error, got %v", err)
	}
}

func TestAdminMayReinstateCancelled(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := seedUser(repo, "asha@example.com", entity.RoleUser)
	admin := seedUser(repo, "admin@example.com", entity.RoleAdmin)
	tour := seedTour(repo, 2000)

	booking, err := svc.Booking.CreateBooking(ctx, owner.ID, "", validBookingRequest(tour.ID.String()))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := svc.Booking.UpdateStatus(ctx, owner.ID, string(entity.RoleUser), booking.ID, "cancelled"); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}

	updated, err := svc.Booking.UpdateStatus(ctx, admin.ID, string(entity.RoleAdmin), booking.ID, "confirmed")
	if err != nil {
		t.Fatalf("admin reinstate: %v", err)
	}
	if updated.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", updated.Status)
	}
}

func TestGetUserBookingsCrossUser(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := seedUser(repo, "asha@example.com", entity.RoleUser)
	stranger := seedUser(repo, "ravi@example.com", entity.RoleUser)
	admin := seedUser(repo, "admin@example.com", entity.RoleAdmin)
	tour := seedTour(repo, 2000)

	if _, err := svc.Booking.CreateBooking(ctx, owner.ID, "", validBookingRequest(tour.ID.String())); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	_, err := svc.Booking.GetUserBookings(ctx, stranger.ID, string(entity.RoleUser), owner.ID.String(), page)
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("expected unauthorized for cross-user read, got %v", err)
	}

	got, err := svc.Booking.GetUserBookings(ctx, admin.ID, string(entity.RoleAdmin), owner.ID.String(), page)
	if err != nil {
		t.Fatalf("admin read: %v", err)
	}
	if len(got.Data) != 1 {
		t.Errorf("admin saw %d bookings, want 1", len(got.Data))
	}
}

func TestDeleteBookingAuthorization(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := seedUser(repo, "asha@example.com", entity.RoleUser)
	stranger := seedUser(repo, "ravi@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	booking, err := svc.Booking.CreateBooking(ctx, owner.ID, "", validBookingRequest(tour.ID.String()))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	err = svc.Booking.DeleteBooking(ctx, stranger.ID, string(entity.RoleUser), booking.ID)
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("expected unauthorized delete, got %v", err)
	}

	if err := svc.Booking.DeleteBooking(ctx, owner.ID, string(entity.RoleUser), booking.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	count, _ := repo.Booking.CountByUserID(ctx, owner.ID)
	if count != 0 {
		t.Errorf("booking count after delete = %d, want 0", count)
	}
}
