package dashboard

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
	rg.GET("/dashboard/stats", h.Stats)
	rg.GET("/dashboard/quick-stats", h.QuickStats)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		if errors.Is(err, scope.ErrDenied) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) QuickStats(c *gin.Context) {
	qs, err := h.service.QuickStats(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		if errors.Is(err, scope.ErrDenied) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quick stats")
		return
	}
	response.Success(c, http.StatusOK, qs)
}
