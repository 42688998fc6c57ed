package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sharksports/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetActiveByEmail is the login lookup; inactive accounts cannot sign in.
func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND status = ?", email, domain.UserActive).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// EmailTaken reports whether the email belongs to any user other than
// excludeID (pass 0 to check against everyone).
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// VendorWithVenueCount is the admin vendor-list row.
type VendorWithVenueCount struct {
	ID         int64  `json:"id" gorm:"column:id"`
	Name       string `json:"name" gorm:"column:name"`
	Email      string `json:"email" gorm:"column:email"`
	Phone      string `json:"phone" gorm:"column:phone"`
	Status     string `json:"status" gorm:"column:status"`
	CreatedAt  string `json:"created_at" gorm:"column:created_at"`
	VenueCount int64  `json:"venue_count" gorm:"column:venue_count"`
}

func (r *UserRepository) ListVendors(ctx context.Context) ([]VendorWithVenueCount, error) {
	var rows []VendorWithVenueCount
	q := `
SELECT
  u.id, u.name, u.email, u.phone, u.status, u.created_at,
  COUNT(v.id) AS venue_count
FROM users u
LEFT JOIN venues v ON u.id = v.vendor_id
WHERE u.role = 'vendor'
GROUP BY u.id, u.name, u.email, u.phone, u.status, u.created_at
ORDER BY u.created_at DESC
`
	if err := r.db.WithContext(ctx).Raw(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetVendorByID resolves a user only when it is a vendor.
func (r *UserRepository) GetVendorByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, domain.RoleVendor).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// DeleteVendor removes a vendor account. Owned venues keep their rows with
// vendor_id set to NULL, matching the FK's SET NULL semantics.
func (r *UserRepository) DeleteVendor(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Venue{}).Where("vendor_id = ?", id).
			Update("vendor_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND role = ?", id, domain.RoleVendor).Delete(&domain.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
