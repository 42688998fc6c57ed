package booking

type CreateBookingRequest struct {
	VenueID       int64   `json:"venue_id" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	CustomerPhone string  `json:"customer_phone"`
	BookingDate   string  `json:"booking_date" binding:"required"`
	StartTime     string  `json:"start_time" binding:"required"`
	EndTime       string  `json:"end_time" binding:"required"`
	TotalAmount   float64 `json:"total_amount" binding:"required,gt=0"`
	Notes         string  `json:"notes"`
}

// UpdateBookingRequest is a partial update; only status fields and notes
// are mutable after creation.
type UpdateBookingRequest struct {
	BookingStatus *string `json:"booking_status"`
	PaymentStatus *string `json:"payment_status"`
	Notes         *string `json:"notes"`
}
