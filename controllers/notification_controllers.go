package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type NotificationController struct{}

func NewNotificationController() *NotificationController {
	return &NotificationController{}
}

func (nc *NotificationController) List(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	items, err := d.Notifications.Load(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of notifications", gin.H{
		"items":  items,
		"unread": d.Notifications.UnreadCount(),
	})
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := d.Notifications.MarkRead(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", gin.H{
		"unread": d.Notifications.UnreadCount(),
	})
}
