package venue

type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description"`
	VendorID    int64    `json:"vendor_id"`
	Sports      []string `json:"sports" binding:"required,min=1"`
	BasePrice   float64  `json:"base_price" binding:"required,gt=0"`
	PeakPrice   float64  `json:"peak_price"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	Facilities  []string `json:"facilities"`
}

type UpdateVenueRequest struct {
	Name        *string   `json:"name"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Sports      *[]string `json:"sports"`
	BasePrice   *float64  `json:"base_price"`
	PeakPrice   *float64  `json:"peak_price"`
	Capacity    *int      `json:"capacity"`
	Facilities  *[]string `json:"facilities"`
	Status      *string   `json:"status"`
}
