package models

import "time"

const RoleSuperAdmin = "super_admin"

// AdminAccount is a dashboard operator. PasswordHash is never serialized.
type AdminAccount struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    time.Time `json:"lastLogin"`
}

func (a AdminAccount) GetID() int    { return a.ID }
func (a *AdminAccount) SetID(id int) { a.ID = id }

func (a *AdminAccount) Touch(now time.Time, created bool) {
	if created {
		a.CreatedAt = now
		if a.LastLogin.IsZero() {
			a.LastLogin = now
		}
	}
}

// AdminSummary is the public view of an admin returned on login.
type AdminSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (a AdminAccount) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role}
}

// LoginResult is returned by a successful admin login.
type LoginResult struct {
	Token string       `json:"token"`
	User  AdminSummary `json:"user"`
}

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalUsers         int       `json:"totalUsers"`
	ActiveUsers        int       `json:"activeUsers"`
	TotalContent       int       `json:"totalContent"`
	TotalNotifications int       `json:"totalNotifications"`
	SystemHealth       string    `json:"systemHealth"`
	LastBackup         time.Time `json:"lastBackup"`
}

type MemoryUsage struct {
	RSS       uint64 `json:"rss"`
	VMS       uint64 `json:"vms"`
	HeapAlloc uint64 `json:"heapAlloc"`
	HeapSys   uint64 `json:"heapSys"`
	Sys       uint64 `json:"sys"`
}

type CPUUsage struct {
	User    float64 `json:"user"`
	System  float64 `json:"system"`
	Percent float64 `json:"percent"`
}

// SystemHealth describes the running process.
type SystemHealth struct {
	Status      string      `json:"status"`
	Uptime      float64     `json:"uptime"`
	Timestamp   time.Time   `json:"timestamp"`
	Version     string      `json:"version"`
	Environment string      `json:"environment"`
	Goroutines  int         `json:"goroutines"`
	Memory      MemoryUsage `json:"memory"`
	CPU         CPUUsage    `json:"cpu"`
}

// ContentTypeStats is one entry of the admin content report.
type ContentTypeStats struct {
	Total      int      `json:"total"`
	Categories []string `json:"categories"`
	Recent     int      `json:"recent"`
}

type DeviceShare struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
}

type UserAnalytics struct {
	TotalUsers        int           `json:"totalUsers"`
	ActiveUsers       int           `json:"activeUsers"`
	NewUsersThisWeek  int           `json:"newUsersThisWeek"`
	NewUsersThisMonth int           `json:"newUsersThisMonth"`
	DeviceTypes       []DeviceShare `json:"deviceTypes"`
}

type CategoryBreakdown struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
}

// LatestContent is a content item flattened across kinds.
type LatestContent struct {
	Type      string    `json:"type"`
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContentAnalytics struct {
	Categories map[string]CategoryBreakdown `json:"categories"`
	Latest     []LatestContent              `json:"latest"`
}
