package notification

import (
	"context"
	"time"

	notificationRepo "islamicdashboard/database/repository/notification"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

// DefaultListLimit is the page size when a list request omits limit.
const DefaultListLimit = 20

// NotificationService defines the notification centre operations.
type NotificationService interface {
	List(notificationType string, page listquery.Page) listquery.Result[models.Notification]
	Send(ctx context.Context, req models.SendRequest) (models.Notification, error)
	Announce(ctx context.Context, req models.AnnouncementRequest) (models.Notification, error)
	MarkRead(id, userID int) (models.Notification, error)
	Delete(id int) (models.Notification, error)
	Stats() models.NotificationStats
}

// SettingsSource reports whether push delivery is currently enabled.
type SettingsSource interface {
	Settings() models.SystemSettings
}

// DefaultNotificationService is the in-memory implementation.
type DefaultNotificationService struct {
	Repo     notificationRepo.NotificationRepository
	Notifier Notifier
	Settings SettingsSource
	logger   *zap.Logger
	now      func() time.Time
}

func NewDefaultNotificationService(
	repo notificationRepo.NotificationRepository,
	notifier Notifier,
	settings SettingsSource,
) *DefaultNotificationService {
	logger := utils.Named("notifications")
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}
	return &DefaultNotificationService{
		Repo:     repo,
		Notifier: notifier,
		Settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}
