package usecase

import (
	"context"
	"testing"

	"locallink/internal/data/entity"
	"locallink/internal/data/repository"
	"locallink/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

func TestWorkerProfile(t *testing.T) {
	ctx := context.Background()

	newRequest := func() *request.CreateWorkerProfileRequest {
		return &request.CreateWorkerProfileRequest{
			Bio:             "Reliable cleaner with five years of experience",
			ServiceCategory: "CLEANING",
			HourlyRate:      float64Ptr(25),
			LocationLat:     float64Ptr(42.3601),
			LocationLng:     float64Ptr(-71.0589),
			Neighborhood:    "Back Bay",
		}
	}

	t.Run("creates a profile with defaults", func(t *testing.T) {
		svc, repo := testService()
		user := seedUser(repo, "bob", entity.RoleWorker)

		resp, err := svc.Worker.CreateProfile(ctx, user.ID.String(), newRequest())
		require.NoError(t, err)

		assert.Equal(t, float64(entity.DefaultRadiusMiles), resp.RadiusMiles)
		assert.False(t, resp.IsVerified)
		assert.Equal(t, entity.BadgeNone, resp.VerificationBadge)
		assert.Equal(t, "bob", resp.User.Name)
	})

	t.Run("second profile for the same user conflicts", func(t *testing.T) {
		svc, repo := testService()
		user := seedUser(repo, "bob", entity.RoleWorker)

		_, err := svc.Worker.CreateProfile(ctx, user.ID.String(), newRequest())
		require.NoError(t, err)

		_, err = svc.Worker.CreateProfile(ctx, user.ID.String(), newRequest())
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("short bio fails validation", func(t *testing.T) {
		svc, repo := testService()
		user := seedUser(repo, "bob", entity.RoleWorker)

		req := newRequest()
		req.Bio = "too short"

		_, err := svc.Worker.CreateProfile(ctx, user.ID.String(), req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("partial update keeps unsent fields", func(t *testing.T) {
		svc, repo := testService()
		user := seedUser(repo, "bob", entity.RoleWorker)

		created, err := svc.Worker.CreateProfile(ctx, user.ID.String(), newRequest())
		require.NoError(t, err)

		updated, err := svc.Worker.UpdateProfile(ctx, user.ID.String(), &request.UpdateWorkerProfileRequest{
			HourlyRate:   float64Ptr(30),
			Neighborhood: stringPtr("South End"),
		})
		require.NoError(t, err)

		assert.Equal(t, float64(30), *updated.HourlyRate)
		assert.Equal(t, "South End", updated.Neighborhood)
		assert.Equal(t, created.Bio, updated.Bio)
		assert.Equal(t, created.LocationLat, updated.LocationLat)
		assert.Equal(t, created.RadiusMiles, updated.RadiusMiles)
	})

	t.Run("update without a profile is not found", func(t *testing.T) {
		svc, repo := testService()
		user := seedUser(repo, "bob", entity.RoleWorker)

		_, err := svc.Worker.UpdateProfile(ctx, user.ID.String(), &request.UpdateWorkerProfileRequest{
			HourlyRate: float64Ptr(30),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates reviews", func(t *testing.T) {
		svc, repo := testService()
		alice := seedUser(repo, "alice", entity.RoleCustomer)
		_, profile := seedWorker(repo, "bob", entity.CategoryCleaning, 42.36, -71.05)

		for _, rating := range []int{5, 5, 4} {
			booking := seedBooking(repo, alice.ID, profile.ID, entity.BookingStatusCompleted)
			_ = repo.Review.Create(ctx, &entity.Review{
				ReviewerID: alice.ID,
				WorkerID:   profile.ID,
				BookingID:  booking.ID,
				Rating:     rating,
				Comment:    "Fantastic work, would hire again",
			})
		}

		resp, err := svc.Worker.GetWorker(ctx, profile.ID.String())
		require.NoError(t, err)

		// (5+5+4)/3 = 4.666..., reported at one decimal
		assert.Equal(t, 4.7, resp.AverageRating)
		assert.Equal(t, 3, resp.ReviewCount)
		require.Len(t, resp.Reviews, 3)
		assert.Equal(t, "alice", resp.Reviews[0].Reviewer.Name)
	})

	t.Run("no reviews means zero rating", func(t *testing.T) {
		svc, repo := testService()
		_, profile := seedWorker(repo, "bob", entity.CategoryCleaning, 42.36, -71.05)

		resp, err := svc.Worker.GetWorker(ctx, profile.ID.String())
		require.NoError(t, err)

		assert.Equal(t, 0.0, resp.AverageRating)
		assert.Equal(t, 0, resp.ReviewCount)
		assert.Empty(t, resp.Reviews)
	})

	t.Run("unknown worker is not found", func(t *testing.T) {
		svc, _ := testService()

		_, err := svc.Worker.GetWorker(ctx, "4b4fa1e0-9d3a-4a88-9a3c-0a1b2c3d4e5f")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSearchWorkers(t *testing.T) {
	ctx := context.Background()

	// Boston Common as origin; North End is about 1.2 miles out, Cambridge
	// about 2.5, Quincy well past the default radius.
	const (
		originLat = 42.3601
		originLng = -71.0589
	)

	seedBoston := func(repo *repository.Repository) (northEnd, cambridge, quincy *entity.WorkerProfile) {
		_, northEnd = seedWorker(repo, "nina", entity.CategoryCleaning, 42.3647, -71.0542)
		_, cambridge = seedWorker(repo, "carl", entity.CategoryCleaning, 42.3292, -71.0846)
		_, quincy = seedWorker(repo, "quinn", entity.CategoryCleaning, 42.2529, -71.0023)
		return
	}

	search := func(svc *Service, req request.SearchWorkersRequest) ([]string, error) {
		req.Lat = float64Ptr(originLat)
		req.Lng = float64Ptr(originLng)
		results, err := svc.Worker.Search(ctx, &req)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(results))
		for i, r := range results {
			ids[i] = r.ID
		}
		return ids, nil
	}

	t.Run("orders by distance within radius", func(t *testing.T) {
		svc, repo := testService()
		northEnd, cambridge, _ := seedBoston(repo)

		ids, err := search(svc, request.SearchWorkersRequest{})
		require.NoError(t, err)

		assert.Equal(t, []string{northEnd.ID.String(), cambridge.ID.String()}, ids)
	})

	t.Run("reports rounded distance", func(t *testing.T) {
		svc, repo := testService()
		seedBoston(repo)

		results, err := svc.Worker.Search(ctx, &request.SearchWorkersRequest{
			Lat: float64Ptr(originLat),
			Lng: float64Ptr(originLng),
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.InDelta(t, 0.4, results[0].Distance, 0.101)
		assert.InDelta(t, 2.5, results[1].Distance, 0.101)
	})

	t.Run("larger radius reaches further", func(t *testing.T) {
		svc, repo := testService()
		_, _, quincy := seedBoston(repo)

		ids, err := search(svc, request.SearchWorkersRequest{Radius: 15})
		require.NoError(t, err)

		assert.Len(t, ids, 3)
		assert.Equal(t, quincy.ID.String(), ids[2])
	})

	t.Run("category filter", func(t *testing.T) {
		svc, repo := testService()
		seedBoston(repo)
		_, handyman := seedWorker(repo, "hank", entity.CategoryHandyman, 42.3611, -71.0570)

		ids, err := search(svc, request.SearchWorkersRequest{Category: stringPtr("HANDYMAN")})
		require.NoError(t, err)

		assert.Equal(t, []string{handyman.ID.String()}, ids)
	})

	t.Run("verified only filter", func(t *testing.T) {
		svc, repo := testService()
		northEnd, cambridge, _ := seedBoston(repo)
		cambridge.IsVerified = true
		cambridge.VerificationBadge = entity.BadgeIDVerified

		ids, err := search(svc, request.SearchWorkersRequest{VerifiedOnly: true})
		require.NoError(t, err)

		assert.Equal(t, []string{cambridge.ID.String()}, ids)
		assert.NotContains(t, ids, northEnd.ID.String())
	})

	t.Run("min rating filters on the rounded average", func(t *testing.T) {
		svc, repo := testService()
		alice := seedUser(repo, "alice", entity.RoleCustomer)
		northEnd, cambridge, _ := seedBoston(repo)

		rate := func(profile *entity.WorkerProfile, ratings ...int) {
			for _, rating := range ratings {
				booking := seedBooking(repo, alice.ID, profile.ID, entity.BookingStatusCompleted)
				_ = repo.Review.Create(ctx, &entity.Review{
					ReviewerID: alice.ID,
					WorkerID:   profile.ID,
					BookingID:  booking.ID,
					Rating:     rating,
					Comment:    "Fantastic work, would hire again",
				})
			}
		}
		rate(northEnd, 5, 4)  // 4.5
		rate(cambridge, 4, 3) // 3.5

		ids, err := search(svc, request.SearchWorkersRequest{MinRating: float64Ptr(4)})
		require.NoError(t, err)

		assert.Equal(t, []string{northEnd.ID.String()}, ids)
	})

	t.Run("unrated workers pass without a min rating filter", func(t *testing.T) {
		svc, repo := testService()
		seedBoston(repo)

		results, err := svc.Worker.Search(ctx, &request.SearchWorkersRequest{
			Lat: float64Ptr(originLat),
			Lng: float64Ptr(originLng),
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.Equal(t, 0.0, r.AverageRating)
			assert.Equal(t, 0, r.ReviewCount)
		}
	})

	t.Run("missing coordinates fail validation", func(t *testing.T) {
		svc, _ := testService()

		_, err := svc.Worker.Search(ctx, &request.SearchWorkersRequest{Lat: float64Ptr(originLat)})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}
