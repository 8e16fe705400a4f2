package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ItsBhatt/devConnector/internal/middleware"
	"github.com/ItsBhatt/devConnector/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
}

// GetNotifications returns the most recent notifications for the current user
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	notifications, err := h.notificationRepository.GetRecent(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load notifications").SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"notifications": notifications}})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.notificationRepository.GetUnreadCount(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count notifications").SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks one of the current user's notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notifID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkAsRead(c.Request().Context(), middleware.UserID(c), uint(notifID)); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update notification").SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// MarkAllAsRead marks all notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	if err := h.notificationRepository.MarkAllAsRead(c.Request().Context(), middleware.UserID(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update notifications").SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
