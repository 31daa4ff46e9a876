package handlers

import (
	"net/http"

	"islamicdashboard/models"
	"islamicdashboard/services/notification"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves /api/notifications.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// ListHandler handles GET /api/notifications?type=&limit=&offset=.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	page := pageFrom(c, notification.DefaultListLimit)
	writeList(c, h.Service.List(c.Query("type"), page), page)
}

// SendHandler handles POST /api/notifications/send.
func (h *NotificationHandler) SendHandler(c *gin.Context) {
	var req models.SendRequest
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	n, err := h.Service.Send(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, n, utils.WithMessage("Notification sent successfully"))
}

// AnnouncementHandler handles POST /api/notifications/announcement.
func (h *NotificationHandler) AnnouncementHandler(c *gin.Context) {
	var req models.AnnouncementRequest
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	n, err := h.Service.Announce(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, n, utils.WithMessage("Announcement sent to all users"))
}

// MarkReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	var req models.MarkReadRequest
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	n, err := h.Service.MarkRead(id, int(req.UserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, n, utils.WithMessage("Notification marked as read"))
}

// StatsHandler handles GET /api/notifications/stats.
func (h *NotificationHandler) StatsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.Stats())
}

// DeleteHandler handles DELETE /api/notifications/:id.
func (h *NotificationHandler) DeleteHandler(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	n, err := h.Service.Delete(id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, n, utils.WithMessage("Notification deleted successfully"))
}
