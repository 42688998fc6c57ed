package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"sharksports/internal/domain"
	"sharksports/internal/scope"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingFilter holds the optional list filters from the query string.
type BookingFilter struct {
	VenueID int64
	Status  string
	Date    string
}

// List returns bookings within the given scope, newest first, joined with
// venue and vendor display columns.
func (r *BookingRepository) List(ctx context.Context, pred scope.Predicate, f BookingFilter) ([]domain.BookingWithVenue, error) {
	q := r.db.WithContext(ctx).Table("bookings").
		Select("bookings.*, venues.name AS venue_name, venues.location AS venue_location, users.name AS vendor_name").
		Joins("JOIN venues ON bookings.venue_id = venues.id").
		Joins("LEFT JOIN users ON venues.vendor_id = users.id")
	q = pred(q)

	if f.VenueID != 0 {
		q = q.Where("bookings.venue_id = ?", f.VenueID)
	}
	if f.Status != "" {
		q = q.Where("bookings.booking_status = ?", f.Status)
	}
	if f.Date != "" {
		q = q.Where("bookings.booking_date = ?", f.Date)
	}

	var rows []domain.BookingWithVenue
	if err := q.Order("bookings.booking_date DESC, bookings.start_time DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID fetches one booking within scope. A foreign booking and a
// missing booking both come back as ErrNotFound.
func (r *BookingRepository) GetByID(ctx context.Context, pred scope.Predicate, id int64) (*domain.BookingWithVenue, error) {
	q := r.db.WithContext(ctx).Table("bookings").
		Select("bookings.*, venues.name AS venue_name, venues.location AS venue_location, users.name AS vendor_name").
		Joins("JOIN venues ON bookings.venue_id = venues.id").
		Joins("LEFT JOIN users ON venues.vendor_id = users.id").
		Where("bookings.id = ?", id)
	q = pred(q)

	var row domain.BookingWithVenue
	tx := q.Limit(1).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

// HasLocationConflict reports whether any non-cancelled booking at the
// target venue's location overlaps [start, end) on the given date. The
// location is matched by exact string equality, so two listings over one
// physical ground block each other. Uses the canonical half-open overlap
// test; a booking ending exactly when another starts does not conflict.
func (r *BookingRepository) HasLocationConflict(ctx context.Context, venueID int64, date, start, end string) (bool, error) {
	return hasLocationConflict(r.db.WithContext(ctx), venueID, date, start, end)
}

func hasLocationConflict(db *gorm.DB, venueID int64, date, start, end string) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings b
JOIN venues v ON b.venue_id = v.id
WHERE v.location = (SELECT location FROM venues WHERE id = ?)
  AND b.booking_date = ?
  AND b.booking_status <> 'cancelled'
  AND b.start_time < ?
  AND b.end_time > ?
`
	if err := db.Raw(q, venueID, date, end, start).Scan(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// CreateWithConflictCheck runs the conflict check and the insert inside a
// single transaction. On Postgres the rows of every venue sharing the
// target location are locked first, so two concurrent creators for one
// location serialize instead of both passing the check. SQLite serializes
// writers on its own. Any error from the check aborts the create; it never
// degrades to "no conflict".
func (r *BookingRepository) CreateWithConflictCheck(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			var ids []int64
			lock := `SELECT id FROM venues WHERE location = (SELECT location FROM venues WHERE id = ?) FOR UPDATE`
			if err := tx.Raw(lock, b.VenueID).Scan(&ids).Error; err != nil {
				return err
			}
		}

		conflict, err := hasLocationConflict(tx, b.VenueID, b.BookingDate, b.StartTime, b.EndTime)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		if err := tx.Create(b).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505") {
				return ErrConflict
			}
			return err
		}
		return nil
	})
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// UpdateFields applies a partial update to a scoped booking.
func (r *BookingRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}

// SetPaymentID stores the gateway transaction reference.
func (r *BookingRepository) SetPaymentID(ctx context.Context, id int64, paymentID string) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).
		Update("payment_id", paymentID).Error
}

// SetPaymentStatus updates the payment status after a gateway callback.
func (r *BookingRepository) SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).
		Update("payment_status", status).Error
}
