package payment

type InitiateRequest struct {
	BookingID int64 `json:"booking_id" binding:"required,gt=0"`
}

type UpdateConfigRequest struct {
	MerchantKey  string `json:"merchant_key" binding:"required"`
	MerchantSalt string `json:"merchant_salt" binding:"required"`
	Environment  string `json:"environment" binding:"required,oneof=test live"`
	IsActive     *bool  `json:"is_active" binding:"required"`
}
