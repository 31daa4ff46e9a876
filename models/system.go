package models

import "time"

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// LogEntry is one captured application log line.
type LogEntry struct {
	ID        int       `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	BackupCompleted = "completed"
	BackupFull      = "full"
)

// Backup is a record of a (synthetic) data backup.
type Backup struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Size      string    `json:"size"`
	Status    string    `json:"status"`
	Type      string    `json:"type"`
}

func (b Backup) GetID() int    { return b.ID }
func (b *Backup) SetID(id int) { b.ID = id }

func (b *Backup) Touch(now time.Time, created bool) {
	if created && b.Timestamp.IsZero() {
		b.Timestamp = now
	}
}

// SystemSettings are the process-wide admin switches.
type SystemSettings struct {
	MaintenanceMode   bool      `json:"maintenanceMode"`
	PushNotifications bool      `json:"pushNotifications"`
	ContentApproval   bool      `json:"contentApproval"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// SettingsUpdate leaves a flag untouched when it is nil.
type SettingsUpdate struct {
	MaintenanceMode   *bool `json:"maintenanceMode" form:"maintenanceMode"`
	PushNotifications *bool `json:"pushNotifications" form:"pushNotifications"`
	ContentApproval   *bool `json:"contentApproval" form:"contentApproval"`
}
