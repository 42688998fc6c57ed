package profile

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sharksports/internal/domain"
	"sharksports/internal/repository"
)

const bcryptCost = 12

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update applies partial changes to the caller's own account. A password
// change must present the current password first.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateProfileRequest) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return ErrValidation
		}
		fields["name"] = name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return ErrValidation
		}
		taken, err := s.users.EmailTaken(ctx, email, userID)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		fields["email"] = email
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			return ErrValidation
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return ErrWrongPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
		if err != nil {
			return err
		}
		fields["password"] = string(hash)
	}

	if len(fields) == 0 {
		return ErrValidation
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
