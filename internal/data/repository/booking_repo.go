package repository

import (
	"context"
	"fmt"

	"locallink/internal/data/entity"
	"locallink/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.BookingRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingRequest, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, status *entity.BookingStatus) ([]*entity.BookingRequest, error)
	FindByWorkerID(ctx context.Context, workerID uuid.UUID, status *entity.BookingStatus) ([]*entity.BookingRequest, error)

	// UpdateStatus applies the transition only when the row still holds the
	// expected current status, and reports whether a row changed. A false
	// return with no error means a concurrent update won.
	UpdateStatus(ctx context.Context, id uuid.UUID, current, target entity.BookingStatus) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_id, worker_id, service_category, message, proposed_date, proposed_time, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.BookingRequest, error) {
	var booking entity.BookingRequest
	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.WorkerID,
		&booking.ServiceCategory,
		&booking.Message,
		&booking.ProposedDate,
		&booking.ProposedTime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.BookingRequest) error {
	query := `
		INSERT INTO booking_requests (id, customer_id, worker_id, service_category, message, proposed_date, proposed_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.WorkerID,
		booking.ServiceCategory,
		booking.Message,
		booking.ProposedDate,
		booking.ProposedTime,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", booking.CustomerID.String()),
			zap.String("worker_id", booking.WorkerID.String()),
		)
		return fmt.Errorf("create booking for customer %s: %w", booking.CustomerID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM booking_requests WHERE id = $1`, bookingColumns)

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, status *entity.BookingStatus) ([]*entity.BookingRequest, error) {
	return r.findByColumn(ctx, "customer_id", customerID, status)
}

func (r *bookingRepository) FindByWorkerID(ctx context.Context, workerID uuid.UUID, status *entity.BookingStatus) ([]*entity.BookingRequest, error) {
	return r.findByColumn(ctx, "worker_id", workerID, status)
}

func (r *bookingRepository) findByColumn(ctx context.Context, column string, id uuid.UUID, status *entity.BookingStatus) ([]*entity.BookingRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM booking_requests WHERE %s = $1`, bookingColumns, column)
	args := []any{id}

	if status != nil {
		args = append(args, *status)
		query += " AND status = $2"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String(column, id.String()),
		)
		return nil, fmt.Errorf("find bookings by %s %s: %w", column, id.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.BookingRequest
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, current, target entity.BookingStatus) (bool, error) {
	query := `UPDATE booking_requests SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, current, target)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("target", string(target)),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(target), err)
	}

	return result.RowsAffected() > 0, nil
}
