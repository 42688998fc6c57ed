package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"sharksports/internal/domain"
	"sharksports/internal/scope"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        "file:bookingrepo_test?mode=memory&cache=shared",
	}), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Venue{}, &domain.Booking{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM bookings")
		db.Exec("DELETE FROM venues")
		db.Exec("DELETE FROM users")
	})
	return db
}

// seedGround creates two venues on one physical location plus one venue
// elsewhere, and an existing 10:00-12:00 booking on the first venue.
func seedGround(t *testing.T, db *gorm.DB) (sameLocA, sameLocB, elsewhere domain.Venue) {
	t.Helper()
	vendor := domain.User{Name: "Vendor", Email: "v@example.com", Role: domain.RoleVendor, Status: domain.UserActive}
	require.NoError(t, db.Create(&vendor).Error)

	sameLocA = domain.Venue{Name: "Morning Cricket", Location: "MG Road, Bengaluru", VendorID: &vendor.ID, BasePrice: 1000, Capacity: 22}
	sameLocB = domain.Venue{Name: "Evening Football", Location: "MG Road, Bengaluru", VendorID: &vendor.ID, BasePrice: 1500, Capacity: 22}
	elsewhere = domain.Venue{Name: "Tennis Court", Location: "Indiranagar, Bengaluru", VendorID: &vendor.ID, BasePrice: 500, Capacity: 4}
	require.NoError(t, db.Create(&sameLocA).Error)
	require.NoError(t, db.Create(&sameLocB).Error)
	require.NoError(t, db.Create(&elsewhere).Error)

	existing := domain.Booking{
		VenueID:       sameLocA.ID,
		CustomerName:  "First Customer",
		CustomerEmail: "first@example.com",
		BookingDate:   "2026-09-15",
		StartTime:     "10:00:00",
		EndTime:       "12:00:00",
		TotalAmount:   2000,
		BookingStatus: domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
	require.NoError(t, db.Create(&existing).Error)
	return sameLocA, sameLocB, elsewhere
}

func TestHasLocationConflict_OverlapSameVenue(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	a, _, _ := seedGround(t, db)

	conflict, err := repo.HasLocationConflict(context.Background(), a.ID, "2026-09-15", "11:00:00", "13:00:00")
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestHasLocationConflict_OverlapAcrossVenuesSharingLocation(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	_, b, _ := seedGround(t, db)

	// different venue row, same physical ground
	conflict, err := repo.HasLocationConflict(context.Background(), b.ID, "2026-09-15", "09:30:00", "10:30:00")
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestHasLocationConflict_BackToBackAllowed(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	a, _, _ := seedGround(t, db)

	conflict, err := repo.HasLocationConflict(context.Background(), a.ID, "2026-09-15", "12:00:00", "14:00:00")
	require.NoError(t, err)
	assert.False(t, conflict)

	conflict, err = repo.HasLocationConflict(context.Background(), a.ID, "2026-09-15", "08:00:00", "10:00:00")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasLocationConflict_DifferentDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	a, _, _ := seedGround(t, db)

	conflict, err := repo.HasLocationConflict(context.Background(), a.ID, "2026-09-16", "10:00:00", "12:00:00")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasLocationConflict_DifferentLocation(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	_, _, elsewhere := seedGround(t, db)

	conflict, err := repo.HasLocationConflict(context.Background(), elsewhere.ID, "2026-09-15", "10:00:00", "12:00:00")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasLocationConflict_CancelledIgnored(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	a, _, _ := seedGround(t, db)

	require.NoError(t, db.Model(&domain.Booking{}).
		Where("venue_id = ?", a.ID).
		Update("booking_status", domain.BookingCancelled).Error)

	conflict, err := repo.HasLocationConflict(context.Background(), a.ID, "2026-09-15", "10:00:00", "12:00:00")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestCreateWithConflictCheck(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	_, b, _ := seedGround(t, db)

	overlapping := &domain.Booking{
		VenueID:       b.ID,
		CustomerName:  "Second Customer",
		CustomerEmail: "second@example.com",
		BookingDate:   "2026-09-15",
		StartTime:     "11:00:00",
		EndTime:       "13:00:00",
		TotalAmount:   1500,
		BookingStatus: domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
	err := repo.CreateWithConflictCheck(context.Background(), overlapping)
	assert.ErrorIs(t, err, ErrConflict)

	var cnt int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt, "rejected booking must not be persisted")

	backToBack := &domain.Booking{
		VenueID:       b.ID,
		CustomerName:  "Second Customer",
		CustomerEmail: "second@example.com",
		BookingDate:   "2026-09-15",
		StartTime:     "12:00:00",
		EndTime:       "14:00:00",
		TotalAmount:   1500,
		BookingStatus: domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
	err = repo.CreateWithConflictCheck(context.Background(), backToBack)
	require.NoError(t, err)
	assert.NotZero(t, backToBack.ID)
}

func TestGetByID_ScopedToVendor(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	a, _, _ := seedGround(t, db)

	var existing domain.Booking
	require.NoError(t, db.Where("venue_id = ?", a.ID).First(&existing).Error)

	otherVendor := domain.User{Name: "Other", Email: "other@example.com", Role: domain.RoleVendor, Status: domain.UserActive}
	require.NoError(t, db.Create(&otherVendor).Error)

	ownerPred, err := scope.Bookings(scope.Actor{UserID: *a.VendorID, Role: domain.RoleVendor})
	require.NoError(t, err)
	got, err := repo.GetByID(context.Background(), ownerPred, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning Cricket", got.VenueName)
	assert.Equal(t, "MG Road, Bengaluru", got.VenueLocation)

	foreignPred, err := scope.Bookings(scope.Actor{UserID: otherVendor.ID, Role: domain.RoleVendor})
	require.NoError(t, err)
	_, err = repo.GetByID(context.Background(), foreignPred, existing.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
