package admin

import (
	"encoding/json"
	"fmt"
	"time"

	"islamicdashboard/models"
	"islamicdashboard/services/listquery"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) Settings() models.SystemSettings {
	return s.System.Settings()
}

func (s *DefaultAdminService) UpdateSettings(update models.SettingsUpdate) models.SystemSettings {
	settings := s.System.UpdateSettings(update, s.now())
	s.logger.Info("System settings updated",
		zap.Bool("maintenanceMode", settings.MaintenanceMode),
		zap.Bool("pushNotifications", settings.PushNotifications),
		zap.Bool("contentApproval", settings.ContentApproval))
	return settings
}

// CreateBackup records a full backup of the current stores. Size is the encoded
// size of a snapshot; nothing is written anywhere.
func (s *DefaultAdminService) CreateBackup() models.Backup {
	backup := s.System.Backups().Create(models.Backup{
		Timestamp: s.now(),
		Size:      formatSize(s.snapshotSize()),
		Status:    models.BackupCompleted,
		Type:      models.BackupFull,
	})
	s.System.SetLastBackup(backup.Timestamp)
	s.logger.Info("Backup completed", zap.Int("id", backup.ID), zap.String("size", backup.Size))
	return backup
}

func (s *DefaultAdminService) snapshotSize() int {
	snapshot := map[string]any{
		models.KindDuas:  s.Content.Duas().List(),
		models.KindRuqya: s.Content.Ruqya().List(),
		models.KindBooks: s.Content.Books().List(),
		"users":          s.Users.List(),
		"notifications":  s.Notifications.List(),
	}
	b, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Warn("Failed to measure backup snapshot", zap.Error(err))
		return 0
	}
	return len(b)
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// Backups returns the backup history, newest first.
func (s *DefaultAdminService) Backups() []models.Backup {
	return listquery.SortByTimeDesc(s.System.Backups().List(), func(b models.Backup) time.Time { return b.Timestamp })
}

// Logs pages through captured log entries, newest first. LevelAll or an empty
// level returns every level.
func (s *DefaultAdminService) Logs(level string, page listquery.Page) listquery.Result[models.LogEntry] {
	if level == LevelAll {
		level = ""
	}
	var entries []models.LogEntry
	if s.LogSource != nil {
		entries = s.LogSource.Entries()
	}
	return listquery.Run(entries, listquery.Query[models.LogEntry]{
		Filters: []listquery.Filter[models.LogEntry]{
			listquery.FieldEquals(level, func(e models.LogEntry) string { return e.Level }),
		},
		SortKey: func(e models.LogEntry) time.Time { return e.Timestamp },
		Page:    page,
	})
}
