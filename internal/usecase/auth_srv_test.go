package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"tourvista/internal/data/entity"
	"tourvista/internal/dto/request"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	auth, err := svc.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Asha Nair",
		Email:    "Asha@Example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if auth.Token == "" {
		t.Error("expected a token after register")
	}
	if auth.User.Email != "asha@example.com" {
		t.Errorf("email not normalized, got %q", auth.User.Email)
	}
	if auth.User.Role != entity.RoleUser {
		t.Errorf("new accounts must get the user role, got %q", auth.User.Role)
	}

	// Login accepts any casing of the registered email
	login, err := svc.Auth.Login(ctx, &request.LoginRequest{
		Email:    "ASHA@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != auth.User.ID {
		t.Error("login returned a different user")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := &request.RegisterRequest{
		Name:     "Asha Nair",
		Email:    "asha@example.com",
		Password: "secret123",
	}
	if _, err := svc.Auth.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Auth.Register(ctx, req)
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("expected duplicate email error, got %v", err)
	}

	// Case variants collide too
	req.Email = "ASHA@EXAMPLE.COM"
	_, err = svc.Auth.Register(ctx, req)
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("expected duplicate email error for case variant, got %v", err)
	}
}

func TestRegisterRaceMapsUniqueViolation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Two registers can race past the pre-insert email check; the unique
	// index then rejects the insert, which must read as a duplicate, not
	// as a server failure.
	repo.User.(*fakeUserRepo).createErr = fmt.Errorf("create user: %w",
		&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := svc.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Asha Nair",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("expected duplicate email error, got %v", err)
	}
}

func TestUpdateProfileRaceMapsUniqueViolation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "asha@example.com", entity.RoleUser)

	repo.User.(*fakeUserRepo).updateErr = fmt.Errorf("update user: %w",
		&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	newEmail := "new@example.com"
	_, err := svc.Auth.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{Email: &newEmail})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("expected duplicate email error, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedUser(repo, "asha@example.com", entity.RoleUser)

	_, errUnknown := svc.Auth.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	_, errWrongPass := svc.Auth.Login(ctx, &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})

	if errUnknown == nil || errWrongPass == nil {
		t.Fatal("expected both login attempts to fail")
	}
	// Unknown email and wrong password must not be tellable apart
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("error messages differ: %q vs %q", errUnknown, errWrongPass)
	}
}

func TestUpdateProfileEmailUniqueness(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedUser(repo, "taken@example.com", entity.RoleUser)
	user := seedUser(repo, "asha@example.com", entity.RoleUser)

	taken := "taken@example.com"
	_, err := svc.Auth.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{Email: &taken})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("expected duplicate email error, got %v", err)
	}

	// Re-submitting your own email is not a conflict
	own := "Asha@example.com"
	updated, err := svc.Auth.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{Email: &own})
	if err != nil {
		t.Fatalf("update with own email: %v", err)
	}
	if updated.Email != "asha@example.com" {
		t.Errorf("got %q", updated.Email)
	}
}

func TestGetProfileDeletedUser(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(repo, "asha@example.com", entity.RoleUser)

	if err := repo.User.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err := svc.Auth.GetProfile(ctx, user.ID)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found for deleted account, got %v", err)
	}
}
