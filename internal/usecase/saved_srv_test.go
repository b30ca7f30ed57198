package usecase

import (
	"context"
	"strings"
	"testing"

	"tourvista/internal/data/entity"

	"github.com/google/uuid"
)

func TestSaveTourIdempotent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "a@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	for i := 0; i < 3; i++ {
		if err := svc.Saved.SaveTour(ctx, user.ID, tour.ID.String()); err != nil {
			t.Fatalf("save #%d: %v", i+1, err)
		}
	}

	tours, err := svc.Saved.ListSaved(ctx, user.ID, string(entity.RoleUser), user.ID.String())
	if err != nil {
		t.Fatalf("list saved: %v", err)
	}
	if len(tours) != 1 {
		t.Errorf("saved count = %d, want 1", len(tours))
	}
}

func TestSaveMissingTour(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "a@example.com", entity.RoleUser)

	err := svc.Saved.SaveTour(ctx, user.ID, uuid.NewString())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRemoveSavedNoop(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "a@example.com", entity.RoleUser)
	tour := seedTour(repo, 2000)

	// Removing something never saved is not an error
	if err := svc.Saved.RemoveSaved(ctx, user.ID, user.ID.String(), tour.ID.String()); err != nil {
		t.Errorf("remove absent bookmark: %v", err)
	}
}

func TestSavedListAuthorization(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := seedUser(repo, "a@example.com", entity.RoleUser)
	stranger := seedUser(repo, "b@example.com", entity.RoleUser)
	admin := seedUser(repo, "admin@example.com", entity.RoleAdmin)
	tour := seedTour(repo, 2000)

	if err := svc.Saved.SaveTour(ctx, owner.ID, tour.ID.String()); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := svc.Saved.ListSaved(ctx, stranger.ID, string(entity.RoleUser), owner.ID.String())
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("expected unauthorized cross-user read, got %v", err)
	}

	tours, err := svc.Saved.ListSaved(ctx, admin.ID, string(entity.RoleAdmin), owner.ID.String())
	if err != nil {
		t.Fatalf("admin read: %v", err)
	}
	if len(tours) != 1 {
		t.Errorf("admin saw %d saved tours, want 1", len(tours))
	}

	// Only the owner removes bookmarks, even admins do not
	err = svc.Saved.RemoveSaved(ctx, stranger.ID, owner.ID.String(), tour.ID.String())
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("expected unauthorized remove, got %v", err)
	}
}
