package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sharksports/internal/domain"
	"sharksports/internal/scope"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// VenueWithVendor adds the owning vendor's display columns to a venue row.
type VenueWithVendor struct {
	domain.Venue
	VendorName  string `json:"vendor_name,omitempty" gorm:"-"`
	VendorEmail string `json:"vendor_email,omitempty" gorm:"-"`
}

// List returns scoped venues, newest first. Admins may additionally filter
// by vendor id.
func (r *VenueRepository) List(ctx context.Context, pred scope.Predicate, vendorID int64) ([]VenueWithVendor, error) {
	q := r.db.WithContext(ctx).Model(&domain.Venue{}).Preload("Vendor")
	q = pred(q)
	if vendorID != 0 {
		q = q.Where("venues.vendor_id = ?", vendorID)
	}

	var venues []domain.Venue
	if err := q.Order("venues.created_at DESC").Find(&venues).Error; err != nil {
		return nil, err
	}

	out := make([]VenueWithVendor, 0, len(venues))
	for _, v := range venues {
		row := VenueWithVendor{Venue: v}
		if v.Vendor != nil {
			row.VendorName = v.Vendor.Name
			row.VendorEmail = v.Vendor.Email
			row.Vendor = nil
		}
		out = append(out, row)
	}
	return out, nil
}

// GetByID fetches one venue within scope; out-of-scope and missing ids are
// both ErrNotFound.
func (r *VenueRepository) GetByID(ctx context.Context, pred scope.Predicate, id int64) (*VenueWithVendor, error) {
	q := r.db.WithContext(ctx).Model(&domain.Venue{}).Preload("Vendor").Where("venues.id = ?", id)
	q = pred(q)

	var v domain.Venue
	if err := q.First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	row := &VenueWithVendor{Venue: v}
	if v.Vendor != nil {
		row.VendorName = v.Vendor.Name
		row.VendorEmail = v.Vendor.Email
		row.Vendor = nil
	}
	return row, nil
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VenueRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.Venue{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the venue and its bookings. SQLite does not always honor
// the FK cascade, so bookings are deleted explicitly in one transaction.
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Venue{}, id).Error
	})
}
