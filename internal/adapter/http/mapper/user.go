package mapper

import (
	"time"

	"taskclaim/internal/adapter/http/dto"
	"taskclaim/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToSettingsItem(settings domain.Settings) dto.SettingsItem {
	return dto.SettingsItem{
		EmailNotifications: settings.EmailNotifications,
		PushNotifications:  settings.PushNotifications,
		TaskReminders:      settings.TaskReminders,
		CompactMode:        settings.CompactMode,
		Theme:              settings.Theme,
	}
}

func ToUserExportResponse(export domain.UserExport) dto.UserExportResponse {
	return dto.UserExportResponse{
		User:       ToUserItem(export.User),
		Tasks:      ToTaskItems(export.Tasks),
		Settings:   ToSettingsItem(export.Settings),
		ExportDate: export.ExportDate.Format(time.RFC3339),
	}
}

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, dto.NotificationItem{
			Type:     string(notification.Type),
			Message:  notification.Message,
			Priority: string(notification.Priority),
		})
	}
	return items
}
