package profile

import (
	"context"

	"sharksports/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}
