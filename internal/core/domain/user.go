package domain

import "time"

type User struct {
	ID        uint64
	Name      string
	Email     string
	CreatedAt time.Time
}

type Settings struct {
	EmailNotifications bool
	PushNotifications  bool
	TaskReminders      bool
	CompactMode        bool
	Theme              string
}

// DefaultSettings are inserted lazily the first time a user's settings
// are read.
func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		PushNotifications:  false,
		TaskReminders:      true,
		CompactMode:        false,
		Theme:              "light",
	}
}

// UserExport bundles everything stored about one user.
type UserExport struct {
	User       User
	Tasks      []Task
	Settings   Settings
	ExportDate time.Time
}
