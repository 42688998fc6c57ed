package payment

import (
	"context"

	"sharksports/internal/domain"
	"sharksports/internal/scope"
)

type BookingRepository interface {
	GetByID(ctx context.Context, pred scope.Predicate, id int64) (*domain.BookingWithVenue, error)
	SetPaymentID(ctx context.Context, id int64, paymentID string) error
	SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

type ConfigRepository interface {
	Get(ctx context.Context, provider string) (*domain.PaymentConfig, error)
	GetActive(ctx context.Context, provider string) (*domain.PaymentConfig, error)
	Upsert(ctx context.Context, cfg *domain.PaymentConfig) error
}

type ActivityLogger interface {
	Log(ctx context.Context, userID *int64, action, description, entityType string, entityID int64) error
}
