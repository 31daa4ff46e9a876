package models

import "time"

const (
	DeviceAndroid = "android"
	DeviceIOS     = "ios"
)

// User is a mobile app user. DeviceToken is never serialized.
type User struct {
	ID          int            `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	DeviceToken *string        `json:"-"`
	DeviceType  string         `json:"deviceType,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	LastActive  time.Time      `json:"lastActive"`
}

func (u User) GetID() int    { return u.ID }
func (u *User) SetID(id int) { u.ID = id }

// Touch refreshes LastActive on every write.
func (u *User) Touch(now time.Time, created bool) {
	if created && u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.LastActive = now
}

// ProfileUpdate carries the optional fields of a profile edit.
type ProfileUpdate struct {
	Username    string         `json:"username" form:"username"`
	Email       string         `json:"email" form:"email"`
	Preferences map[string]any `json:"preferences" form:"preferences"`
}

// DeviceRegistration is the body of POST /api/auth/register-device.
type DeviceRegistration struct {
	UserID      FlexibleID `json:"userId" form:"userId"`
	DeviceToken string     `json:"deviceToken" form:"deviceToken"`
	DeviceType  string     `json:"deviceType" form:"deviceType"`
}

// DeviceRegistrationResult echoes the registered device back to the caller.
type DeviceRegistrationResult struct {
	UserID      int    `json:"userId"`
	DeviceToken string `json:"deviceToken"`
}

// ProfileView is returned by a profile update.
type ProfileView struct {
	ID          int            `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// UserStats summarizes the user store.
type UserStats struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	NewThisWeek  int            `json:"newThisWeek"`
	NewThisMonth int            `json:"newThisMonth"`
	DeviceTypes  map[string]int `json:"deviceTypes"`
}
