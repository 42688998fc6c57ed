package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking reserves a venue for a date and time range on behalf of a
// customer who has no account of their own. BookingDate is a plain
// YYYY-MM-DD string and the times are zero-padded HH:MM:SS strings, so
// lexicographic comparison is interval comparison.
type Booking struct {
	ID            int64         `json:"id" gorm:"column:id;primaryKey"`
	VenueID       int64         `json:"venue_id" gorm:"column:venue_id;index"`
	CustomerName  string        `json:"customer_name" gorm:"column:customer_name"`
	CustomerEmail string        `json:"customer_email" gorm:"column:customer_email"`
	CustomerPhone string        `json:"customer_phone,omitempty" gorm:"column:customer_phone"`
	BookingDate   string        `json:"booking_date" gorm:"column:booking_date;index"`
	StartTime     string        `json:"start_time" gorm:"column:start_time"`
	EndTime       string        `json:"end_time" gorm:"column:end_time"`
	TotalAmount   float64       `json:"total_amount" gorm:"column:total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"column:payment_status;default:pending"`
	BookingStatus BookingStatus `json:"booking_status" gorm:"column:booking_status;default:confirmed"`
	PaymentID     string        `json:"payment_id,omitempty" gorm:"column:payment_id"`
	Notes         string        `json:"notes,omitempty" gorm:"column:notes;type:text"`
	CreatedAt     time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"column:updated_at"`

	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (Booking) TableName() string { return "bookings" }

// BookingWithVenue carries the joined columns used by list views and
// reports: booking row plus the venue name/location and the vendor name.
type BookingWithVenue struct {
	Booking       `gorm:"embedded"`
	VenueName     string `json:"venue_name" gorm:"column:venue_name"`
	VenueLocation string `json:"venue_location" gorm:"column:venue_location"`
	VendorName    string `json:"vendor_name" gorm:"column:vendor_name"`
}
