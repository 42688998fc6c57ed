package venue

import (
	"context"

	"sharksports/internal/domain"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

type VenueRepository interface {
	List(ctx context.Context, pred scope.Predicate, vendorID int64) ([]repository.VenueWithVendor, error)
	GetByID(ctx context.Context, pred scope.Predicate, id int64) (*repository.VenueWithVendor, error)
	Create(ctx context.Context, v *domain.Venue) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type ActivityLogger interface {
	Log(ctx context.Context, userID *int64, action, description, entityType string, entityID int64) error
}
