package payment

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharksports/internal/middleware"
	"sharksports/internal/pkg/payu"
	"sharksports/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts payment initiation onto the authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/initiate", h.Initiate)
}

// RegisterCallbackRoutes mounts the gateway postbacks. These stay public;
// PayU does not hold a session.
func (h *Handler) RegisterCallbackRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/success", h.Callback)
	rg.POST("/payments/failure", h.Callback)
}

// RegisterAdminRoutes mounts credential management onto the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/payment-config", h.GetConfig)
	rg.PUT("/payment-config", h.UpdateConfig)
}

func (h *Handler) Initiate(c *gin.Context) {
	var req InitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A booking id is required")
		return
	}

	pr, err := h.service.Initiate(c.Request.Context(), middleware.Actor(c), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found or access denied")
		case errors.Is(err, ErrNotPending):
			response.Error(c, http.StatusConflict, "PAYMENT_NOT_PENDING", "Booking payment is not pending")
		case errors.Is(err, ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to initiate payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": pr})
}

// Callback receives the gateway's form post and sends the customer's
// browser back to the result page. A malformed callback changes nothing.
func (h *Handler) Callback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusSeeOther, h.service.appCfg.PublicBaseURL+"/payment/failure")
		return
	}

	result, err := payu.ParseCallback(c.Request.PostForm)
	if err != nil {
		log.Printf("payment: unparseable gateway callback: %v", err)
		c.Redirect(http.StatusSeeOther, h.service.appCfg.PublicBaseURL+"/payment/failure")
		return
	}

	c.Redirect(http.StatusSeeOther, h.service.HandleCallback(c.Request.Context(), result))
}

func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.service.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch payment config")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"config": cfg})
}

func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Merchant key, salt, environment, and active flag are required")
		return
	}

	if err := h.service.UpdateConfig(c.Request.Context(), middleware.Actor(c), req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment config")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Payment config updated successfully"})
}
