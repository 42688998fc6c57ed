package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sharksports/internal/domain"
)

type PaymentConfigRepository struct {
	db *gorm.DB
}

func NewPaymentConfigRepository(db *gorm.DB) *PaymentConfigRepository {
	return &PaymentConfigRepository{db: db}
}

func (r *PaymentConfigRepository) Get(ctx context.Context, provider string) (*domain.PaymentConfig, error) {
	var cfg domain.PaymentConfig
	err := r.db.WithContext(ctx).Where("provider = ?", provider).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// GetActive returns the provider config only when it is switched on.
func (r *PaymentConfigRepository) GetActive(ctx context.Context, provider string) (*domain.PaymentConfig, error) {
	var cfg domain.PaymentConfig
	err := r.db.WithContext(ctx).
		Where("provider = ? AND is_active = ?", provider, true).
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// Upsert inserts or replaces the credentials for a provider.
func (r *PaymentConfigRepository) Upsert(ctx context.Context, cfg *domain.PaymentConfig) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"merchant_key", "merchant_salt", "environment", "is_active", "updated_at",
		}),
	}).Create(cfg).Error
}
