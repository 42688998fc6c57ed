package report

import (
	"sharksports/internal/domain"
	"sharksports/internal/repository"
)

type BookingSummary struct {
	Total     int64   `json:"total_bookings"`
	Confirmed int64   `json:"confirmed"`
	Cancelled int64   `json:"cancelled"`
	Completed int64   `json:"completed"`
	Revenue   float64 `json:"total_revenue"`
}

type BookingsReport struct {
	Bookings []domain.BookingWithVenue `json:"bookings"`
	Summary  BookingSummary            `json:"summary"`
}

type RevenueMonth struct {
	Month    string  `json:"month"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type RevenueReport struct {
	Months       []RevenueMonth `json:"monthly"`
	TotalRevenue float64        `json:"total_revenue"`
	PaidBookings int64          `json:"paid_bookings"`
}

type VenuesReport struct {
	Venues []repository.VenuePerformance `json:"venues"`
}

type ActivitiesReport struct {
	Activities []repository.ActivityWithUser `json:"activities"`
}
