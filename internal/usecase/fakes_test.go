package usecase

import (
	"context"
	"sort"
	"time"

	"locallink/internal/data/entity"
	"locallink/internal/data/repository"
	"locallink/pkg/geo"
	"locallink/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. Each one mirrors the query semantics of its
// SQL counterpart, including result ordering and the conditional status
// update, so service behavior can be exercised without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeWorkerRepo struct {
	profiles map[uuid.UUID]*entity.WorkerProfile
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{profiles: make(map[uuid.UUID]*entity.WorkerProfile)}
}

func (f *fakeWorkerRepo) Create(_ context.Context, profile *entity.WorkerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeWorkerRepo) Update(_ context.Context, profile *entity.WorkerProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeWorkerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WorkerProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeWorkerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.WorkerProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) FindInBoundingBox(_ context.Context, box geo.BoundingBox, category *entity.ServiceCategory, verifiedOnly bool) ([]*entity.WorkerProfile, error) {
	var out []*entity.WorkerProfile
	for _, p := range f.profiles {
		if p.LocationLat < box.MinLat || p.LocationLat > box.MaxLat {
			continue
		}
		if p.LocationLng < box.MinLng || p.LocationLng > box.MaxLng {
			continue
		}
		if category != nil && p.ServiceCategory != *category {
			continue
		}
		if verifiedOnly && !p.IsVerified {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.BookingRequest
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.BookingRequest)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.BookingRequest) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BookingRequest, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID, status *entity.BookingStatus) ([]*entity.BookingRequest, error) {
	return f.filter(func(b *entity.BookingRequest) bool { return b.CustomerID == customerID }, status), nil
}

func (f *fakeBookingRepo) FindByWorkerID(_ context.Context, workerID uuid.UUID, status *entity.BookingStatus) ([]*entity.BookingRequest, error) {
	return f.filter(func(b *entity.BookingRequest) bool { return b.WorkerID == workerID }, status), nil
}

func (f *fakeBookingRepo) filter(match func(*entity.BookingRequest) bool, status *entity.BookingStatus) []*entity.BookingRequest {
	var out []*entity.BookingRequest
	for _, b := range f.bookings {
		if !match(b) {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	// newest first, like the SQL ORDER BY created_at DESC
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, current, target entity.BookingStatus) (bool, error) {
	b, ok := f.bookings[id]
	if !ok || b.Status != current {
		return false, nil
	}
	b.Status = target
	b.UpdatedAt = time.Now()
	return true, nil
}

type fakeMessageRepo struct {
	messages []*entity.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, message *entity.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		// strictly increasing so ordering is deterministic
		message.CreatedAt = time.Now().Add(time.Duration(len(f.messages)) * time.Millisecond)
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range f.messages {
		if m.BookingID == bookingID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().Add(time.Duration(len(f.reviews)) * time.Millisecond)
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.BookingID == bookingID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByWorkerID(_ context.Context, workerID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.WorkerID == workerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeReviewRepo) RatingsByWorkerID(_ context.Context, workerID uuid.UUID) ([]int, error) {
	var out []int
	for _, r := range f.reviews {
		if r.WorkerID == workerID {
			out = append(out, r.Rating)
		}
	}
	return out, nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:    newFakeUserRepo(),
		Worker:  newFakeWorkerRepo(),
		Booking: newFakeBookingRepo(),
		Message: &fakeMessageRepo{},
		Review:  &fakeReviewRepo{},
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "locallink-test", Port: "0", Debug: true},
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Geo: utils.GeoConfig{
			EarthRadiusMiles:  geo.DefaultEarthRadiusMiles,
			MilesPerDegreeLat: geo.DefaultMilesPerDegreeLat,
		},
	}
}

func testService() (*Service, *repository.Repository) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop())
	return svc, repo
}

// seedUser inserts a user directly into the fake store.
func seedUser(repo *repository.Repository, name string, role entity.UserRole) *entity.User {
	user := &entity.User{
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
	}
	_ = repo.User.Create(context.Background(), user)
	return user
}

// seedWorker inserts a worker user plus profile at the given location.
func seedWorker(repo *repository.Repository, name string, category entity.ServiceCategory, lat, lng float64) (*entity.User, *entity.WorkerProfile) {
	user := seedUser(repo, name, entity.RoleWorker)
	profile := &entity.WorkerProfile{
		UserID:            user.ID,
		Bio:               "Experienced local " + name,
		ServiceCategory:   category,
		LocationLat:       lat,
		LocationLng:       lng,
		Neighborhood:      "Downtown",
		RadiusMiles:       entity.DefaultRadiusMiles,
		VerificationBadge: entity.BadgeNone,
	}
	_ = repo.Worker.Create(context.Background(), profile)
	return user, profile
}

// seedBooking inserts a booking in the given status.
func seedBooking(repo *repository.Repository, customerID, workerProfileID uuid.UUID, status entity.BookingStatus) *entity.BookingRequest {
	booking := &entity.BookingRequest{
		CustomerID:      customerID,
		WorkerID:        workerProfileID,
		ServiceCategory: entity.CategoryCleaning,
		Message:         "Need a deep clean of the apartment",
		ProposedDate:    time.Now().AddDate(0, 0, 7),
		ProposedTime:    "10:00",
		Status:          status,
	}
	_ = repo.Booking.Create(context.Background(), booking)
	return booking
}
