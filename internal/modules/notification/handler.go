package notification

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
	rg.GET("/notifications", h.List)
	rg.GET("/notifications/unread-count", h.UnreadCount)
	rg.PUT("/notifications/read", h.MarkRead)
}

// RegisterAdminRoutes mounts the fan-out sender onto the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/notifications", h.Send)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Recipient ids, title, and message are required")
		return
	}

	if err := h.service.Send(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrInvalidType) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid notification type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send notifications")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Notifications sent"})
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	limit, _ := strconv.Atoi(c.Query("limit"))
	unreadOnly := c.Query("unread") == "true"

	rows, err := h.service.List(c.Request.Context(), actor.UserID, limit, unreadOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": rows})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	actor := middleware.Actor(c)

	cnt, err := h.service.UnreadCount(c.Request.Context(), actor.UserID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to count notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": cnt})
}

func (h *Handler) MarkRead(c *gin.Context) {
	actor := middleware.Actor(c)

	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "At least one notification id is required")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), actor.UserID, req.IDs); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notifications read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notifications marked as read"})
}
