package dashboard

import "sharksports/internal/repository"

// Stats is the main dashboard payload. Vendors get the same shape with
// totals narrowed to their own venues and no vendor count.
type Stats struct {
	Totals     *repository.Totals            `json:"totals"`
	Trends     []repository.MonthlyTrend     `json:"booking_trends"`
	VenueTypes []repository.VenueTypeCount   `json:"venue_types"`
	Recent     []repository.ActivityWithUser `json:"recent_activities"`
}
