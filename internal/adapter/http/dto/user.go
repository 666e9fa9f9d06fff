package dto

type UserItem struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User    UserItem `json:"user"`
	Message string   `json:"message"`
}

type SettingsItem struct {
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	TaskReminders      bool   `json:"task_reminders"`
	CompactMode        bool   `json:"compact_mode"`
	Theme              string `json:"theme"`
}

type UpdateSettingsRequest struct {
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	TaskReminders      bool   `json:"task_reminders"`
	CompactMode        bool   `json:"compact_mode"`
	Theme              string `json:"theme" binding:"required,oneof=light dark"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email,max=255"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type UserExportResponse struct {
	User       UserItem     `json:"user"`
	Tasks      []TaskItem   `json:"tasks"`
	Settings   SettingsItem `json:"settings"`
	ExportDate string       `json:"exportDate"`
}

type NotificationItem struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}
