package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
)

const (
	dueDateLayout = "2006-01-02"

	welcomeMessage    = "Welcome to Group project task claimer!"
	suggestionMessage = "Claim some tasks to get started!"
)

// NotificationService derives a deadline feed from the user's claimed
// tasks. Tasks due today or tomorrow (or overdue) become urgent notices,
// tasks due within three days become reminders. A static welcome notice
// is always appended, plus a suggestion when the user holds no tasks.
type NotificationService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewNotificationService(taskRepository ports.TaskRepository) *NotificationService {
	return &NotificationService{
		taskRepository: taskRepository,
		now:            time.Now,
	}
}

// NewNotificationServiceWithClock pins "now" for tests.
func NewNotificationServiceWithClock(taskRepository ports.TaskRepository, now func() time.Time) *NotificationService {
	return &NotificationService{
		taskRepository: taskRepository,
		now:            now,
	}
}

func (s *NotificationService) NotificationsFor(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	tasks, err := s.taskRepository.ListTasksClaimedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	notifications := buildDeadlineNotifications(tasks, s.now())

	notifications = append(notifications, domain.Notification{
		Type:     domain.NotificationTypeInfo,
		Message:  welcomeMessage,
		Priority: domain.TaskPriorityLow,
	})

	if len(tasks) == 0 {
		notifications = append(notifications, domain.Notification{
			Type:     domain.NotificationTypeSuggestion,
			Message:  suggestionMessage,
			Priority: domain.TaskPriorityLow,
		})
	}

	return notifications, nil
}

func buildDeadlineNotifications(tasks []domain.Task, now time.Time) []domain.Notification {
	notifications := make([]domain.Notification, 0, len(tasks))
	today := truncateToDay(now)

	for _, task := range tasks {
		dueDate, err := time.Parse(dueDateLayout, task.DueDate)
		if err != nil {
			// Legacy rows may carry free-text due dates; they simply
			// produce no deadline notice.
			zap.L().Debug("skipping task with unparseable due date",
				zap.Uint64("task_id", task.ID), zap.String("due_date", task.DueDate))
			continue
		}

		daysUntilDue := int(truncateToDay(dueDate).Sub(today).Hours() / 24)
		switch {
		case daysUntilDue <= 1:
			when := "tomorrow"
			if daysUntilDue <= 0 {
				when = "today"
			}
			notifications = append(notifications, domain.Notification{
				Type:     domain.NotificationTypeUrgent,
				Message:  fmt.Sprintf("Task %q is due %s!", task.Title, when),
				Priority: domain.TaskPriorityHigh,
			})
		case daysUntilDue <= 3:
			notifications = append(notifications, domain.Notification{
				Type:     domain.NotificationTypeReminder,
				Message:  fmt.Sprintf("Task %q is due in %d days", task.Title, daysUntilDue),
				Priority: domain.TaskPriorityMedium,
			})
		}
	}

	return notifications
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var _ ports.NotificationService = (*NotificationService)(nil)
