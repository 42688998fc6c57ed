package venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sharksports/internal/middleware"
	"sharksports/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues", h.List)
	rg.POST("/venues", h.Create)
	rg.GET("/venues/:id", h.Get)
	rg.PUT("/venues/:id", h.Update)
	rg.DELETE("/venues/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var vendorID int64
	if v := c.Query("vendorId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vendor id")
			return
		}
		vendorID = id
	}

	venues, err := h.service.List(c.Request.Context(), middleware.Actor(c), vendorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch venues")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	v, err := h.service.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch venue")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"venue": v})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Name, location, at least one sport, base price, and capacity are required")
		return
	}

	v, err := h.service.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue data")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create venue")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"venue": v})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue data")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found or access denied")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update venue")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Venue updated successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found or access denied")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete venue")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Venue deleted successfully"})
}

func venueID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue ID")
		return 0, false
	}
	return id, true
}
