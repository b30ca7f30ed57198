package usecase

import (
	"context"
	"sort"
	"time"

	"tourvista/internal/data/entity"
	"tourvista/internal/data/repository"
	"tourvista/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the SQL repositories' observable
// behavior: nil result for a missing row, soft delete for users and tours,
// upsert keyed on (user_id, tour_id) for ratings.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User

	// createErr and updateErr fail the next write, for simulating
	// constraint violations the happy-path maps cannot produce
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		if user.DeletedAt == nil {
			cp := *user
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		err := r.updateErr
		r.updateErr = nil
		return err
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if user, ok := r.users[id]; ok {
		now := time.Now()
		user.DeletedAt = &now
	}
	return nil
}

type fakeTourRepo struct {
	tours map[uuid.UUID]*entity.Tour
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{tours: make(map[uuid.UUID]*entity.Tour)}
}

func (r *fakeTourRepo) Create(_ context.Context, tour *entity.Tour) error {
	cp := *tour
	r.tours[tour.ID] = &cp
	return nil
}

func (r *fakeTourRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tour, error) {
	tour, ok := r.tours[id]
	if !ok || tour.DeletedAt != nil {
		return nil, nil
	}
	cp := *tour
	return &cp, nil
}

func (r *fakeTourRepo) FindPage(_ context.Context, limit, offset int) ([]*entity.Tour, error) {
	all, _ := r.FindAll(context.Background())
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeTourRepo) FindAll(_ context.Context) ([]*entity.Tour, error) {
	var out []*entity.Tour
	for _, tour := range r.tours {
		if tour.DeletedAt == nil {
			cp := *tour
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTourRepo) CountAll(_ context.Context) (int64, error) {
	all, _ := r.FindAll(context.Background())
	return int64(len(all)), nil
}

func (r *fakeTourRepo) Update(_ context.Context, tour *entity.Tour) error {
	existing, ok := r.tours[tour.ID]
	if ok {
		// Rating aggregates are owned by UpdateRatingStats
		tour.AverageRating = existing.AverageRating
		tour.TotalRatings = existing.TotalRatings
	}
	cp := *tour
	r.tours[tour.ID] = &cp
	return nil
}

func (r *fakeTourRepo) Delete(_ context.Context, id uuid.UUID) error {
	if tour, ok := r.tours[id]; ok {
		now := time.Now()
		tour.DeletedAt = &now
	}
	return nil
}

func (r *fakeTourRepo) UpdateRatingStats(_ context.Context, tourID uuid.UUID, avgRating float64, totalRatings int64) error {
	if tour, ok := r.tours[tourID]; ok {
		tour.AverageRating = avgRating
		tour.TotalRatings = totalRatings
	}
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *booking
	return &cp, nil
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var all []*entity.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			cp := *booking
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range r.bookings {
		cp := *booking
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if booking, ok := r.bookings[bookingID]; ok {
		booking.Status = status
		booking.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bookings, id)
	return nil
}

type ratingKey struct {
	userID uuid.UUID
	tourID uuid.UUID
}

type fakeRatingRepo struct {
	ratings map[ratingKey]*entity.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[ratingKey]*entity.Rating)}
}

func (r *fakeRatingRepo) Upsert(_ context.Context, rating *entity.Rating) error {
	key := ratingKey{userID: rating.UserID, tourID: rating.TourID}
	if existing, ok := r.ratings[key]; ok {
		existing.Rating = rating.Rating
		existing.Review = rating.Review
		existing.UpdatedAt = rating.UpdatedAt
		return nil
	}
	cp := *rating
	r.ratings[key] = &cp
	return nil
}

func (r *fakeRatingRepo) FindByTourID(_ context.Context, tourID uuid.UUID) ([]*entity.Rating, error) {
	var out []*entity.Rating
	for _, rating := range r.ratings {
		if rating.TourID == tourID {
			cp := *rating
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRatingRepo) FindByUserAndTour(_ context.Context, userID, tourID uuid.UUID) (*entity.Rating, error) {
	rating, ok := r.ratings[ratingKey{userID: userID, tourID: tourID}]
	if !ok {
		return nil, nil
	}
	cp := *rating
	return &cp, nil
}

func (r *fakeRatingRepo) GetTourRatingStats(_ context.Context, tourID uuid.UUID) (float64, int64, error) {
	var sum, count int64
	for _, rating := range r.ratings {
		if rating.TourID == tourID {
			sum += int64(rating.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type savedKey struct {
	userID uuid.UUID
	tourID uuid.UUID
}

type fakeSavedTourRepo struct {
	saved map[savedKey]time.Time
	tours *fakeTourRepo
}

func newFakeSavedTourRepo(tours *fakeTourRepo) *fakeSavedTourRepo {
	return &fakeSavedTourRepo{saved: make(map[savedKey]time.Time), tours: tours}
}

func (r *fakeSavedTourRepo) Save(_ context.Context, userID, tourID uuid.UUID) error {
	key := savedKey{userID: userID, tourID: tourID}
	if _, ok := r.saved[key]; !ok {
		r.saved[key] = time.Now()
	}
	return nil
}

func (r *fakeSavedTourRepo) Remove(_ context.Context, userID, tourID uuid.UUID) error {
	delete(r.saved, savedKey{userID: userID, tourID: tourID})
	return nil
}

func (r *fakeSavedTourRepo) FindToursByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error) {
	var out []*entity.Tour
	for key := range r.saved {
		if key.userID != userID {
			continue
		}
		tour, _ := r.tours.FindByID(ctx, key.tourID)
		if tour != nil {
			out = append(out, tour)
		}
	}
	return out, nil
}

type fakeIdempotencyRepo struct {
	keys         map[string]uuid.UUID
	cleanupCalls int
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]uuid.UUID)}
}

func (r *fakeIdempotencyRepo) FindBookingID(_ context.Context, key string) (uuid.UUID, bool, error) {
	id, ok := r.keys[key]
	return id, ok, nil
}

func (r *fakeIdempotencyRepo) Record(_ context.Context, key string, bookingID uuid.UUID) error {
	if _, ok := r.keys[key]; !ok {
		r.keys[key] = bookingID
	}
	return nil
}

func (r *fakeIdempotencyRepo) CleanupExpired(_ context.Context) (int64, error) {
	r.cleanupCalls++
	return 0, nil
}

func newTestRepository() *repository.Repository {
	tours := newFakeTourRepo()
	return &repository.Repository{
		User:        newFakeUserRepo(),
		Tour:        tours,
		Booking:     newFakeBookingRepo(),
		Rating:      newFakeRatingRepo(),
		SavedTour:   newFakeSavedTourRepo(tours),
		Idempotency: newFakeIdempotencyRepo(),
	}
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "tourvista-test", Port: "0"},
		JWT: utils.JWTConfig{Secret: "test-secret-key", ExpiryHours: 1},
	}
}

func newTestService() (*Service, *repository.Repository) {
	repo := newTestRepository()
	svc := NewService(repo, newTestConfig(), zap.NewNop())
	return svc, repo
}

func seedTour(repo *repository.Repository, price int64) *entity.Tour {
	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:            "Kerala Backwaters",
		ShortDescription: "Houseboat cruise through the backwaters",
		Description:      "A slow cruise through the canals of Alleppey.",
		Price:            price,
		Duration:         "3 days",
		Image:            "https://example.com/kerala.jpg",
	}
	repo.Tour.Create(context.Background(), tour)
	return tour
}

func seedUser(repo *repository.Repository, email string, role entity.UserRole) *entity.User {
	now := time.Now()
	hash, _ := utils.HashPassword("password123")
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	repo.User.Create(context.Background(), user)
	return user
}
