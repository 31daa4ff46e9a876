// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// System endpoints
	RootHandler     gin.HandlerFunc
	HealthHandler   gin.HandlerFunc
	NotFoundHandler gin.HandlerFunc

	// Content endpoints
	ListDuasHandler    gin.HandlerFunc
	GetDuaHandler      gin.HandlerFunc
	CreateDuaHandler   gin.HandlerFunc
	ListRuqyaHandler   gin.HandlerFunc
	GetRuqyaHandler    gin.HandlerFunc
	CreateRuqyaHandler gin.HandlerFunc
	ListBooksHandler   gin.HandlerFunc
	GetBookHandler     gin.HandlerFunc
	CreateBookHandler  gin.HandlerFunc
	ContentStats       gin.HandlerFunc

	// Notification endpoints
	ListNotifications  gin.HandlerFunc
	SendNotification   gin.HandlerFunc
	SendAnnouncement   gin.HandlerFunc
	MarkNotification   gin.HandlerFunc
	NotificationStats  gin.HandlerFunc
	DeleteNotification gin.HandlerFunc

	// Auth endpoints
	LoginHandler          gin.HandlerFunc
	RegisterDeviceHandler gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	ListUsersHandler      gin.HandlerFunc
	UserStatsHandler      gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}

// NewHandlerBundle wires the area handlers into a bundle.
func NewHandlerBundle(sys *SystemHandler, content *ContentHandler, notif *NotificationHandler, auth *AuthHandler, admin *AdminHandler) *HandlerBundle {
	return &HandlerBundle{
		RootHandler:     sys.RootHandler,
		HealthHandler:   sys.HealthHandler,
		NotFoundHandler: sys.NotFoundHandler,

		ListDuasHandler:    content.ListDuasHandler,
		GetDuaHandler:      content.GetDuaHandler,
		CreateDuaHandler:   content.CreateDuaHandler,
		ListRuqyaHandler:   content.ListRuqyaHandler,
		GetRuqyaHandler:    content.GetRuqyaHandler,
		CreateRuqyaHandler: content.CreateRuqyaHandler,
		ListBooksHandler:   content.ListBooksHandler,
		GetBookHandler:     content.GetBookHandler,
		CreateBookHandler:  content.CreateBookHandler,
		ContentStats:       content.StatsHandler,

		ListNotifications:  notif.ListHandler,
		SendNotification:   notif.SendHandler,
		SendAnnouncement:   notif.AnnouncementHandler,
		MarkNotification:   notif.MarkReadHandler,
		NotificationStats:  notif.StatsHandler,
		DeleteNotification: notif.DeleteHandler,

		LoginHandler:          auth.LoginHandler,
		RegisterDeviceHandler: auth.RegisterDeviceHandler,
		GetProfileHandler:     auth.GetProfileHandler,
		UpdateProfileHandler:  auth.UpdateProfileHandler,
		ListUsersHandler:      auth.ListUsersHandler,
		UserStatsHandler:      auth.UserStatsHandler,
		LogoutHandler:         auth.LogoutHandler,

		AdminHandler: admin,
	}
}
