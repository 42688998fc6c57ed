package domain

import "time"

// ActivityLog is an append-only audit record written as a side effect of
// mutations. UserID is nullable so gateway callbacks without an
// authenticated actor can still be logged.
type ActivityLog struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	UserID      *int64    `json:"user_id" gorm:"column:user_id;index"`
	Action      string    `json:"action" gorm:"column:action"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	EntityType  string    `json:"entity_type,omitempty" gorm:"column:entity_type"`
	EntityID    int64     `json:"entity_id,omitempty" gorm:"column:entity_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
