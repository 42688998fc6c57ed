package domain

import "time"

type VenueStatus string

const (
	VenueActive   VenueStatus = "active"
	VenueInactive VenueStatus = "inactive"
)

// Venue is a bookable offering owned by exactly one vendor. Location is a
// free-text string naming a physical place; several venues may share one
// location, and the booking conflict check groups by that string, not by
// venue id.
type Venue struct {
	ID          int64       `json:"id" gorm:"column:id;primaryKey"`
	Name        string      `json:"name" gorm:"column:name"`
	Location    string      `json:"location" gorm:"column:location;index"`
	Description string      `json:"description,omitempty" gorm:"column:description;type:text"`
	VendorID    *int64      `json:"vendor_id" gorm:"column:vendor_id;index"`
	Sports      []string    `json:"sports" gorm:"column:sports;serializer:json"`
	BasePrice   float64     `json:"base_price" gorm:"column:base_price"`
	PeakPrice   float64     `json:"peak_price" gorm:"column:peak_price"`
	Capacity    int         `json:"capacity" gorm:"column:capacity"`
	Facilities  []string    `json:"facilities" gorm:"column:facilities;serializer:json"`
	Status      VenueStatus `json:"status" gorm:"column:status;default:active"`
	CreatedAt   time.Time   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"column:updated_at"`

	Vendor *User `json:"vendor,omitempty" gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL"`
}

func (Venue) TableName() string { return "venues" }
