package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sharksports/internal/domain"
)

// StatsRepository backs the dashboard and report aggregates. Grouping by
// calendar month/day happens in Go so the same queries run on Postgres and
// SQLite.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type Totals struct {
	Vendors  int64   `json:"total_vendors,omitempty"`
	Venues   int64   `json:"total_venues"`
	Bookings int64   `json:"total_bookings"`
	Revenue  float64 `json:"total_revenue"`
}

// AdminTotals counts the whole platform: vendors, active venues, bookings
// and paid revenue.
func (r *StatsRepository) AdminTotals(ctx context.Context) (*Totals, error) {
	var t Totals
	db := r.db.WithContext(ctx)

	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleVendor).Count(&t.Vendors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Venue{}).Where("status = ?", domain.VenueActive).Count(&t.Venues).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Booking{}).Count(&t.Bookings).Error; err != nil {
		return nil, err
	}
	err := db.Model(&domain.Booking{}).
		Where("payment_status = ?", domain.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&t.Revenue).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// VendorTotals is the same view narrowed to one vendor's venues.
func (r *StatsRepository) VendorTotals(ctx context.Context, vendorID int64) (*Totals, error) {
	var t Totals
	db := r.db.WithContext(ctx)

	err := db.Model(&domain.Venue{}).
		Where("vendor_id = ? AND status = ?", vendorID, domain.VenueActive).
		Count(&t.Venues).Error
	if err != nil {
		return nil, err
	}

	bookings := db.Table("bookings b").
		Joins("JOIN venues v ON b.venue_id = v.id").
		Where("v.vendor_id = ?", vendorID)
	if err := bookings.Count(&t.Bookings).Error; err != nil {
		return nil, err
	}

	err = db.Table("bookings b").
		Joins("JOIN venues v ON b.venue_id = v.id").
		Where("v.vendor_id = ? AND b.payment_status = ?", vendorID, domain.PaymentPaid).
		Select("COALESCE(SUM(b.total_amount), 0)").Scan(&t.Revenue).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type MonthlyTrend struct {
	Month    string  `json:"month"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type trendRow struct {
	CreatedAt   time.Time `gorm:"column:created_at"`
	TotalAmount float64   `gorm:"column:total_amount"`
}

// BookingTrends buckets bookings by calendar month for the six months up
// to now. Pass vendorID 0 for the platform-wide view. The window starts on
// the first of the month so every bucket covers a whole month.
func (r *StatsRepository) BookingTrends(ctx context.Context, vendorID int64, now time.Time) ([]MonthlyTrend, error) {
	since := time.Date(now.Year(), now.Month()-6, 1, 0, 0, 0, 0, now.Location())

	q := r.db.WithContext(ctx).Table("bookings b").
		Select("b.created_at, b.total_amount").
		Where("b.created_at >= ?", since)
	if vendorID != 0 {
		q = q.Joins("JOIN venues v ON b.venue_id = v.id").Where("v.vendor_id = ?", vendorID)
	}

	var rows []trendRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	byMonth := map[string]*MonthlyTrend{}
	for _, row := range rows {
		key := row.CreatedAt.Format("2006-01")
		t, ok := byMonth[key]
		if !ok {
			t = &MonthlyTrend{Month: key}
			byMonth[key] = t
		}
		t.Bookings++
		t.Revenue += row.TotalAmount
	}

	// since is pinned to day one, so stepping by months never skips a
	// bucket over short months.
	out := make([]MonthlyTrend, 0, len(byMonth))
	for cur := 0; cur <= 6; cur++ {
		key := time.Date(since.Year(), since.Month()+time.Month(cur), 1, 0, 0, 0, 0, since.Location()).Format("2006-01")
		if t, ok := byMonth[key]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

type VenueTypeCount struct {
	VenueType string `json:"venue_type" gorm:"column:venue_type"`
	Count     int64  `json:"count" gorm:"column:cnt"`
}

// VenueTypes classifies active venues into sport buckets by name, matching
// the legacy dashboard's LIKE heuristic.
func (r *StatsRepository) VenueTypes(ctx context.Context, vendorID int64) ([]VenueTypeCount, error) {
	q := `
SELECT
  CASE
    WHEN LOWER(name) LIKE '%cricket%' THEN 'Cricket Grounds'
    WHEN LOWER(name) LIKE '%football%' OR LOWER(name) LIKE '%soccer%' THEN 'Football Fields'
    WHEN LOWER(name) LIKE '%basketball%' THEN 'Basketball Courts'
    WHEN LOWER(name) LIKE '%tennis%' THEN 'Tennis Courts'
    WHEN LOWER(name) LIKE '%badminton%' THEN 'Badminton Courts'
    ELSE 'Other Sports'
  END AS venue_type,
  COUNT(*) AS cnt
FROM venues
WHERE status = 'active'
`
	args := []any{}
	if vendorID != 0 {
		q += " AND vendor_id = ?"
		args = append(args, vendorID)
	}
	q += " GROUP BY venue_type ORDER BY cnt DESC"

	var rows []VenueTypeCount
	if err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type QuickStats struct {
	TodayBookings  int64   `json:"today_bookings"`
	Confirmed      int64   `json:"confirmed_bookings"`
	PendingPayment int64   `json:"pending_payments"`
	Cancelled      int64   `json:"cancelled_bookings"`
	TodayRevenue   float64 `json:"today_revenue"`
}

// TodayQuickStats counts bookings created today. vendorID 0 means
// platform-wide.
func (r *StatsRepository) TodayQuickStats(ctx context.Context, vendorID int64, now time.Time) (*QuickStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("bookings b").
			Where("b.created_at >= ? AND b.created_at < ?", dayStart, dayEnd)
		if vendorID != 0 {
			q = q.Joins("JOIN venues v ON b.venue_id = v.id").Where("v.vendor_id = ?", vendorID)
		}
		return q
	}

	var qs QuickStats
	if err := base().Count(&qs.TodayBookings).Error; err != nil {
		return nil, err
	}
	if err := base().Where("b.booking_status = ?", domain.BookingConfirmed).Count(&qs.Confirmed).Error; err != nil {
		return nil, err
	}
	if err := base().Where("b.payment_status = ?", domain.PaymentPending).Count(&qs.PendingPayment).Error; err != nil {
		return nil, err
	}
	if err := base().Where("b.booking_status = ?", domain.BookingCancelled).Count(&qs.Cancelled).Error; err != nil {
		return nil, err
	}
	err := base().Where("b.payment_status = ?", domain.PaymentPaid).
		Select("COALESCE(SUM(b.total_amount), 0)").Scan(&qs.TodayRevenue).Error
	if err != nil {
		return nil, err
	}
	return &qs, nil
}

type VenuePerformance struct {
	domain.Venue  `gorm:"embedded"`
	VendorName    string  `json:"vendor_name" gorm:"column:vendor_name"`
	TotalBookings int64   `json:"total_bookings" gorm:"column:total_bookings"`
	TotalRevenue  float64 `json:"total_revenue" gorm:"column:total_revenue"`
}

// VenuePerformanceReport lists venues with booking counts and paid revenue,
// best earners first.
func (r *StatsRepository) VenuePerformanceReport(ctx context.Context, vendorID int64) ([]VenuePerformance, error) {
	q := r.db.WithContext(ctx).Table("venues v").
		Select(`v.*, u.name AS vendor_name,
COUNT(b.id) AS total_bookings,
COALESCE(SUM(CASE WHEN b.payment_status = 'paid' THEN b.total_amount ELSE 0 END), 0) AS total_revenue`).
		Joins("LEFT JOIN users u ON v.vendor_id = u.id").
		Joins("LEFT JOIN bookings b ON v.id = b.venue_id")
	if vendorID != 0 {
		q = q.Where("v.vendor_id = ?", vendorID)
	}

	var rows []VenuePerformance
	err := q.Group("v.id, u.name").Order("total_revenue DESC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
