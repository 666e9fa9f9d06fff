package domain

type NotificationType string

const (
	NotificationTypeUrgent     NotificationType = "urgent"
	NotificationTypeReminder   NotificationType = "reminder"
	NotificationTypeInfo       NotificationType = "info"
	NotificationTypeSuggestion NotificationType = "suggestion"
)

type Notification struct {
	Type     NotificationType
	Message  string
	Priority TaskPriority
}
