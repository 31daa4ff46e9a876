package models

import (
	"slices"
	"time"
)

const (
	NotificationGeneral        = "general"
	NotificationContentUpdate  = "content_update"
	NotificationAnnouncement   = "announcement"
	NotificationPrayerReminder = "prayer_reminder"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// NotificationTypes and NotificationPriorities list the known values in report order.
var (
	NotificationTypes      = []string{NotificationGeneral, NotificationContentUpdate, NotificationAnnouncement, NotificationPrayerReminder}
	NotificationPriorities = []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}
)

type Notification struct {
	ID        int            `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Priority  string         `json:"priority"`
	SentAt    time.Time      `json:"sentAt"`
	ExpiresAt *time.Time     `json:"expiresAt,omitempty"`
	ReadBy    []int          `json:"readBy"`
	Data      map[string]any `json:"data"`
}

func (n Notification) GetID() int    { return n.ID }
func (n *Notification) SetID(id int) { n.ID = id }

func (n *Notification) Touch(now time.Time, created bool) {
	if created && n.SentAt.IsZero() {
		n.SentAt = now
	}
}

// IsUrgent reports whether delivery should use the high-priority channel.
func (n Notification) IsUrgent() bool {
	return n.Priority == PriorityHigh || n.Priority == PriorityUrgent
}

// MarkReadBy adds userID to ReadBy unless it is already present.
// It always installs a fresh slice so earlier snapshots are never aliased.
func (n *Notification) MarkReadBy(userID int) {
	if slices.Contains(n.ReadBy, userID) {
		return
	}
	readBy := make([]int, 0, len(n.ReadBy)+1)
	readBy = append(readBy, n.ReadBy...)
	n.ReadBy = append(readBy, userID)
}

// SendRequest is the body of POST /api/notifications/send.
type SendRequest struct {
	Title    string         `json:"title" form:"title"`
	Message  string         `json:"message" form:"message"`
	Type     string         `json:"type" form:"type"`
	Priority string         `json:"priority" form:"priority"`
	Data     map[string]any `json:"data" form:"data"`
}

// AnnouncementRequest is the body of POST /api/notifications/announcement.
type AnnouncementRequest struct {
	Title     string     `json:"title" form:"title"`
	Message   string     `json:"message" form:"message"`
	Priority  string     `json:"priority" form:"priority"`
	ExpiresAt *time.Time `json:"expiresAt" form:"expiresAt"`
}

// MarkReadRequest is the body of PUT /api/notifications/:id/read.
type MarkReadRequest struct {
	UserID FlexibleID `json:"userId" form:"userId"`
}

// NotificationStats summarizes the notification store.
type NotificationStats struct {
	Total      int            `json:"total"`
	ByType     map[string]int `json:"byType"`
	ByPriority map[string]int `json:"byPriority"`
	Recent     int            `json:"recent"`
}
