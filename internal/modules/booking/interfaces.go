package booking

import (
	"context"

	"sharksports/internal/domain"
	"sharksports/internal/events"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

type BookingRepository interface {
	List(ctx context.Context, pred scope.Predicate, f repository.BookingFilter) ([]domain.BookingWithVenue, error)
	GetByID(ctx context.Context, pred scope.Predicate, id int64) (*domain.BookingWithVenue, error)
	CreateWithConflictCheck(ctx context.Context, b *domain.Booking) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type VenueRepository interface {
	GetByID(ctx context.Context, pred scope.Predicate, id int64) (*repository.VenueWithVendor, error)
}

type ActivityLogger interface {
	Log(ctx context.Context, userID *int64, action, description, entityType string, entityID int64) error
}

type NotificationSender interface {
	Notify(ctx context.Context, userID int64, title, message string, ntype domain.NotificationType, entityType string, entityID int64)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}
