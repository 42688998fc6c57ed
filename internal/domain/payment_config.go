package domain

import "time"

// PaymentConfig stores the gateway credentials managed from the admin
// settings screen. One row per provider.
type PaymentConfig struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	Provider     string    `json:"provider" gorm:"column:provider;uniqueIndex"`
	MerchantKey  string    `json:"merchant_key" gorm:"column:merchant_key"`
	MerchantSalt string    `json:"-" gorm:"column:merchant_salt"`
	Environment  string    `json:"environment" gorm:"column:environment;default:test"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (PaymentConfig) TableName() string { return "payment_config" }
