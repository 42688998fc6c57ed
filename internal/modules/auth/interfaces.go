package auth

import (
	"context"

	"sharksports/internal/domain"
)

// UserRepository is the persistence surface the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}
