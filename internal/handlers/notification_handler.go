package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// notificationPageSize caps the notification list at the 20 most recent rows.
const notificationPageSize = 20

// MarkAllRequest identifies the user for bulk notification operations
type MarkAllRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notificationRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.POST("/notifications/:id/read", h.MarkAsRead)
	g.POST("/notifications/read-all", h.MarkAllAsRead)
	g.POST("/notifications/clear-all", h.ClearAll)
}

// GetNotifications returns the viewer's 20 most recent notifications, newest
// first, plus the unread count.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	viewerID, err := requireViewer(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationRepository.GetRecent(viewerID, notificationPageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	unreadCount, err := h.notificationRepository.GetUnreadCount(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	views := make([]models.NotificationView, len(notifications))
	for i, n := range notifications {
		views[i] = models.NotificationView{
			ID:        n.ID,
			Type:      n.Type,
			ActorID:   n.ActorID,
			ActorName: n.ActorName,
			PostID:    n.PostID,
			CommentID: n.CommentID,
			Message:   n.Message,
			Read:      n.Read,
			Time:      timeAgo(n.CreatedAt, now),
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"notifications": views,
		"unreadCount":   unreadCount,
	})
}

// MarkAsRead marks a single notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}
	if err := h.notificationRepository.MarkAsRead(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// MarkAllAsRead marks all of one user's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	var req MarkAllRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.notificationRepository.MarkAllAsRead(req.UserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ClearAll deletes all of one user's notifications
func (h *NotificationHandler) ClearAll(c echo.Context) error {
	var req MarkAllRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.notificationRepository.ClearAll(req.UserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
