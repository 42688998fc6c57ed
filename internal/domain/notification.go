package domain

import "time"

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

type Notification struct {
	ID         int64            `json:"id" gorm:"column:id;primaryKey"`
	UserID     int64            `json:"user_id" gorm:"column:user_id;index"`
	Title      string           `json:"title" gorm:"column:title"`
	Message    string           `json:"message" gorm:"column:message;type:text"`
	Type       NotificationType `json:"type" gorm:"column:type;default:info"`
	IsRead     bool             `json:"is_read" gorm:"column:is_read;default:false"`
	EntityType string           `json:"entity_type,omitempty" gorm:"column:entity_type"`
	EntityID   int64            `json:"entity_id,omitempty" gorm:"column:entity_id"`
	CreatedAt  time.Time        `json:"created_at" gorm:"column:created_at"`
}

func (Notification) TableName() string { return "notifications" }
