package report

import (
	"context"

	"sharksports/internal/domain"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

type BookingRepository interface {
	List(ctx context.Context, pred scope.Predicate, f repository.BookingFilter) ([]domain.BookingWithVenue, error)
}

type StatsRepository interface {
	VenuePerformanceReport(ctx context.Context, vendorID int64) ([]repository.VenuePerformance, error)
}

type ActivityRepository interface {
	ListForAdmin(ctx context.Context, limit int) ([]repository.ActivityWithUser, error)
	ListForVendor(ctx context.Context, vendorID int64, limit int) ([]repository.ActivityWithUser, error)
}
