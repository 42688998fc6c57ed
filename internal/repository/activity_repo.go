package repository

import (
	"context"

	"gorm.io/gorm"

	"sharksports/internal/domain"
)

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Log appends one audit row. userID may be nil for unauthenticated
// sources such as gateway callbacks.
func (r *ActivityLogRepository) Log(ctx context.Context, userID *int64, action, description, entityType string, entityID int64) error {
	row := domain.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		EntityType:  entityType,
		EntityID:    entityID,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// ActivityWithUser joins the actor's display name onto the audit row.
type ActivityWithUser struct {
	domain.ActivityLog
	UserName string `json:"user_name" gorm:"column:user_name"`
}

// ListForAdmin returns the newest audit rows platform-wide.
func (r *ActivityLogRepository) ListForAdmin(ctx context.Context, limit int) ([]ActivityWithUser, error) {
	var rows []ActivityWithUser
	q := r.db.WithContext(ctx).Table("activity_logs al").
		Select("al.*, u.name AS user_name").
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Order("al.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListForVendor returns audit rows touching the vendor's venues, the
// bookings of those venues, or actions the vendor performed.
func (r *ActivityLogRepository) ListForVendor(ctx context.Context, vendorID int64, limit int) ([]ActivityWithUser, error) {
	var rows []ActivityWithUser
	q := r.db.WithContext(ctx).Table("activity_logs al").
		Select("al.*, u.name AS user_name").
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Where(`(al.entity_type = 'venue' AND al.entity_id IN (SELECT id FROM venues WHERE vendor_id = ?))
OR (al.entity_type = 'booking' AND al.entity_id IN (
  SELECT b.id FROM bookings b JOIN venues v ON b.venue_id = v.id WHERE v.vendor_id = ?
))
OR al.user_id = ?`, vendorID, vendorID, vendorID).
		Order("al.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
