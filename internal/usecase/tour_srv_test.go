package usecase

import (
	"context"
	"math"
	"strings"
	"testing"

	"tourvista/internal/data/entity"
	"tourvista/internal/dto/request"

	"github.com/google/uuid"
)

func TestRateTourAggregates(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	tour := seedTour(repo, 2000)

	raters := []struct {
		user   *entity.User
		rating int
	}{
		{seedUser(repo, "a@example.com", entity.RoleUser), 5},
		{seedUser(repo, "b@example.com", entity.RoleUser), 3},
		{seedUser(repo, "c@example.com", entity.RoleUser), 4},
	}

	var last *entity.User
	for _, r := range raters {
		last = r.user
		stats, err := svc.Tour.RateTour(ctx, r.user.ID, tour.ID.String(), &request.RateTourRequest{Rating: r.rating})
		if err != nil {
			t.Fatalf("rate tour: %v", err)
		}
		if stats.TotalRatings == 0 {
			t.Fatal("stats not recomputed")
		}
	}

	got, err := svc.Tour.GetTour(ctx, tour.ID.String())
	if err != nil {
		t.Fatalf("get tour: %v", err)
	}
	if got.TotalRatings != 3 {
		t.Errorf("total ratings = %d, want 3", got.TotalRatings)
	}
	if math.Abs(got.AverageRating-4.0) > 1e-9 {
		t.Errorf("average = %v, want 4.0", got.AverageRating)
	}

	// Re-rating replaces, it never adds a second row
	stats, err := svc.Tour.RateTour(ctx, last.ID, tour.ID.String(), &request.RateTourRequest{Rating: 1})
	if err != nil {
		t.Fatalf("re-rate: %v", err)
	}
	if stats.TotalRatings != 3 {
		t.Errorf("total after re-rate = %d, want 3", stats.TotalRatings)
	}
	if math.Abs(stats.AverageRating-3.0) > 1e-9 {
		t.Errorf("average after re-rate = %v, want 3.0", stats.AverageRating)
	}
}

func TestRateTourBounds(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "a@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	for _, rating := range []int{0, 6} {
		_, err := svc.Tour.RateTour(ctx, user.ID, tour.ID.String(), &request.RateTourRequest{Rating: rating})
		if err == nil || !strings.Contains(err.Error(), "validation failed") {
			t.Errorf("rating=%d: expected validation error, got %v", rating, err)
		}
	}
}

func TestRateMissingTour(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "a@example.com", entity.RoleUser)

	_, err := svc.Tour.RateTour(ctx, user.ID, uuid.NewString(), &request.RateTourRequest{Rating: 4})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdateTourKeepsRatingStats(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "a@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	if _, err := svc.Tour.RateTour(ctx, user.ID, tour.ID.String(), &request.RateTourRequest{Rating: 5}); err != nil {
		t.Fatalf("rate: %v", err)
	}

	updated, err := svc.Tour.UpdateTour(ctx, tour.ID.String(), &request.UpdateTourRequest{
		Title:            "Kerala Backwaters Deluxe",
		ShortDescription: "Houseboat cruise through the backwaters",
		Description:      "A slow cruise through the canals of Alleppey.",
		Price:            2500,
		Duration:         "3 days",
		Image:            "https://example.com/kerala.jpg",
	})
	if err != nil {
		t.Fatalf("update tour: %v", err)
	}
	if updated.TotalRatings != 1 || updated.AverageRating != 5 {
		t.Errorf("rating stats lost on update: avg=%v total=%d", updated.AverageRating, updated.TotalRatings)
	}
}

func TestListToursPagination(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		seedTour(repo, int64(1000+i))
	}

	page, err := svc.Tour.ListTours(ctx, &request.PaginatedRequest{Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("list tours: %v", err)
	}
	if len(page.Data) != 2 {
		t.Errorf("page size = %d, want 2", len(page.Data))
	}
	if page.Pagination.Total != 5 {
		t.Errorf("total = %d, want 5", page.Pagination.Total)
	}
	if page.Pagination.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", page.Pagination.TotalPages)
	}
}

func TestDeletedTourHidden(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	tour := seedTour(repo, 2000)

	if err := svc.Tour.DeleteTour(ctx, tour.ID.String()); err != nil {
		t.Fatalf("delete tour: %v", err)
	}

	_, err := svc.Tour.GetTour(ctx, tour.ID.String())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found after delete, got %v", err)
	}
}
