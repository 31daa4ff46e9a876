package admin

import (
	"time"

	adminRepo "islamicdashboard/database/repository/admin"
	contentRepo "islamicdashboard/database/repository/content"
	notificationRepo "islamicdashboard/database/repository/notification"
	userRepo "islamicdashboard/database/repository/user"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

// DefaultLogLimit is the page size when a logs request omits limit.
const DefaultLogLimit = 50

// LevelAll disables the level filter on the logs endpoint.
const LevelAll = "all"

type AdminService interface {
	Dashboard() models.DashboardStats
	Health() models.SystemHealth
	ContentStats() map[string]models.ContentTypeStats
	UserAnalytics() models.UserAnalytics
	ContentAnalytics() models.ContentAnalytics

	Settings() models.SystemSettings
	UpdateSettings(update models.SettingsUpdate) models.SystemSettings

	CreateBackup() models.Backup
	Backups() []models.Backup
	Logs(level string, page listquery.Page) listquery.Result[models.LogEntry]
}

// LogSource yields captured log entries.
type LogSource interface {
	Entries() []models.LogEntry
}

// DefaultAdminService computes every report from the live stores.
type DefaultAdminService struct {
	Content       contentRepo.ContentRepository
	Users         userRepo.UserRepository
	Notifications notificationRepo.NotificationRepository
	System        adminRepo.AdminRepository
	LogSource     LogSource

	Version     string
	Environment string

	started time.Time
	logger  *zap.Logger
	now     func() time.Time
}

// Deps groups the stores the admin service reads.
type Deps struct {
	Content       contentRepo.ContentRepository
	Users         userRepo.UserRepository
	Notifications notificationRepo.NotificationRepository
	System        adminRepo.AdminRepository
	LogSource     LogSource
	Version       string
	Environment   string
}

func NewDefaultAdminService(d Deps) *DefaultAdminService {
	return &DefaultAdminService{
		Content:       d.Content,
		Users:         d.Users,
		Notifications: d.Notifications,
		System:        d.System,
		LogSource:     d.LogSource,
		Version:       d.Version,
		Environment:   d.Environment,
		started:       time.Now(),
		logger:        utils.Named("admin"),
		now:           time.Now,
	}
}
