package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/server/http/dto"
)

// NotificationHandler serves the per-user event feed.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	events := h.facade.Notifications(user.ID)

	resp := make([]dto.NotificationResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, toNotificationResponse(event))
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /api/notifications/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user := CurrentUser(c)
	h.facade.MarkNotificationsRead(user.ID)
	c.Status(http.StatusOK)
}
