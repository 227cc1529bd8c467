package repository

import (
	"context"
	"fmt"

	"locallink/internal/data/entity"
	"locallink/pkg/database"
	"locallink/pkg/geo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WorkerRepository interface {
	Create(ctx context.Context, profile *entity.WorkerProfile) error
	Update(ctx context.Context, profile *entity.WorkerProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkerProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkerProfile, error)

	// FindInBoundingBox is the coarse first phase of proximity search; the
	// caller still has to refine candidates with an exact distance check.
	FindInBoundingBox(ctx context.Context, box geo.BoundingBox, category *entity.ServiceCategory, verifiedOnly bool) ([]*entity.WorkerProfile, error)
}

type workerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWorkerRepository(db database.PgxIface, log *zap.Logger) WorkerRepository {
	return &workerRepository{
		db:  db,
		log: log.With(zap.String("repository", "worker")),
	}
}

const workerProfileColumns = `id, user_id, bio, service_category, hourly_rate, location_lat, location_lng,
		neighborhood, radius_miles, is_verified, verification_badge, availability_notes, created_at, updated_at`

func scanWorkerProfile(row pgx.Row) (*entity.WorkerProfile, error) {
	var profile entity.WorkerProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Bio,
		&profile.ServiceCategory,
		&profile.HourlyRate,
		&profile.LocationLat,
		&profile.LocationLng,
		&profile.Neighborhood,
		&profile.RadiusMiles,
		&profile.IsVerified,
		&profile.VerificationBadge,
		&profile.AvailabilityNotes,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *workerRepository) Create(ctx context.Context, profile *entity.WorkerProfile) error {
	query := `
		INSERT INTO worker_profiles (id, user_id, bio, service_category, hourly_rate, location_lat, location_lng,
			neighborhood, radius_miles, is_verified, verification_badge, availability_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Bio,
		profile.ServiceCategory,
		profile.HourlyRate,
		profile.LocationLat,
		profile.LocationLng,
		profile.Neighborhood,
		profile.RadiusMiles,
		profile.IsVerified,
		profile.VerificationBadge,
		profile.AvailabilityNotes,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create worker profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create worker profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *workerRepository) Update(ctx context.Context, profile *entity.WorkerProfile) error {
	query := `
		UPDATE worker_profiles
		SET bio = $2, service_category = $3, hourly_rate = $4, location_lat = $5, location_lng = $6,
		    neighborhood = $7, radius_miles = $8, is_verified = $9, verification_badge = $10,
		    availability_notes = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Bio,
		profile.ServiceCategory,
		profile.HourlyRate,
		profile.LocationLat,
		profile.LocationLng,
		profile.Neighborhood,
		profile.RadiusMiles,
		profile.IsVerified,
		profile.VerificationBadge,
		profile.AvailabilityNotes,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update worker profile",
			zap.Error(err),
			zap.String("profile_id", profile.ID.String()),
		)
		return fmt.Errorf("update worker profile %s: %w", profile.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("worker profile %s not found", profile.ID.String())
	}

	return nil
}

func (r *workerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkerProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM worker_profiles WHERE id = $1`, workerProfileColumns)

	profile, err := scanWorkerProfile(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find worker profile by ID",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return nil, fmt.Errorf("find worker profile by ID %s: %w", id.String(), err)
	}

	return profile, nil
}

func (r *workerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkerProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM worker_profiles WHERE user_id = $1`, workerProfileColumns)

	profile, err := scanWorkerProfile(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find worker profile by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find worker profile by user ID %s: %w", userID.String(), err)
	}

	return profile, nil
}

func (r *workerRepository) FindInBoundingBox(ctx context.Context, box geo.BoundingBox, category *entity.ServiceCategory, verifiedOnly bool) ([]*entity.WorkerProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM worker_profiles
		WHERE location_lat BETWEEN $1 AND $2
		  AND location_lng BETWEEN $3 AND $4`, workerProfileColumns)
	args := []any{box.MinLat, box.MaxLat, box.MinLng, box.MaxLng}

	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND service_category = $%d", len(args))
	}
	if verifiedOnly {
		query += " AND is_verified = TRUE"
	}

	query += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search worker profiles",
			zap.Error(err),
			zap.Float64("min_lat", box.MinLat),
			zap.Float64("max_lat", box.MaxLat),
		)
		return nil, fmt.Errorf("search worker profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.WorkerProfile
	for rows.Next() {
		profile, err := scanWorkerProfile(rows)
		if err != nil {
			r.log.Error("Failed to scan worker profile row", zap.Error(err))
			return nil, fmt.Errorf("scan worker profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
