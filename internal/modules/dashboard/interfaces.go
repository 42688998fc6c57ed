package dashboard

import (
	"context"
	"time"

	"sharksports/internal/repository"
)

type StatsRepository interface {
	AdminTotals(ctx context.Context) (*repository.Totals, error)
	VendorTotals(ctx context.Context, vendorID int64) (*repository.Totals, error)
	BookingTrends(ctx context.Context, vendorID int64, now time.Time) ([]repository.MonthlyTrend, error)
	VenueTypes(ctx context.Context, vendorID int64) ([]repository.VenueTypeCount, error)
	TodayQuickStats(ctx context.Context, vendorID int64, now time.Time) (*repository.QuickStats, error)
}

type ActivityRepository interface {
	ListForAdmin(ctx context.Context, limit int) ([]repository.ActivityWithUser, error)
	ListForVendor(ctx context.Context, vendorID int64, limit int) ([]repository.ActivityWithUser, error)
}
