package domain

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleVendor UserRole = "vendor"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID           int64      `json:"id" gorm:"column:id;primaryKey"`
	Name         string     `json:"name" gorm:"column:name"`
	Email        string     `json:"email" gorm:"column:email;uniqueIndex"`
	Phone        string     `json:"phone,omitempty" gorm:"column:phone"`
	PasswordHash string     `json:"-" gorm:"column:password"`
	Role         UserRole   `json:"role" gorm:"column:role"`
	Status       UserStatus `json:"status" gorm:"column:status;default:active"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }
