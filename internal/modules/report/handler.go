package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharksports/internal/middleware"
	"sharksports/internal/pkg/response"
	"sharksports/internal/scope"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports", h.Get)
}

// Get serves one report selected by the type query parameter. Date bounds
// apply to the bookings and revenue reports only.
func (h *Handler) Get(c *gin.Context) {
	actor := middleware.Actor(c)
	from := c.Query("fromDate")
	to := c.Query("toDate")

	var (
		data any
		err  error
	)
	switch c.DefaultQuery("type", "bookings") {
	case "bookings":
		data, err = h.service.Bookings(c.Request.Context(), actor, from, to)
	case "revenue":
		data, err = h.service.Revenue(c.Request.Context(), actor, from, to)
	case "venues":
		data, err = h.service.Venues(c.Request.Context(), actor)
	case "activities":
		data, err = h.service.Activities(c.Request.Context(), actor)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown report type")
		return
	}

	if err != nil {
		if errors.Is(err, scope.ErrDenied) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate report")
		return
	}

	response.Success(c, http.StatusOK, data)
}
