package ports

import (
	"context"

	"taskclaim/internal/core/domain"
)

type StatsRepository interface {
	CountTasks(ctx context.Context) (int, error)
	CountTasksByStatus(ctx context.Context, status domain.TaskStatus) (int, error)
	CountTasksByPriority(ctx context.Context, priority domain.TaskPriority) (int, error)
	CountUsers(ctx context.Context) (int, error)
	RecentTasks(ctx context.Context, limit int) ([]domain.Task, error)
	CountTasksClaimedBy(ctx context.Context, userID uint64) (int, error)
	CountHighPriorityClaimedBy(ctx context.Context, userID uint64) (int, error)
	RecentTasksClaimedBy(ctx context.Context, userID uint64, limit int) ([]domain.Task, error)
	TasksGroupedByStatus(ctx context.Context) ([]domain.CountBucket, error)
	TasksGroupedByPriority(ctx context.Context) ([]domain.CountBucket, error)
	TasksGroupedByCategory(ctx context.Context) ([]domain.CountBucket, error)
	TasksGroupedByClaimant(ctx context.Context) ([]domain.CountBucket, error)
	AnalyticsTotals(ctx context.Context) (domain.AnalyticsTotals, error)
	TeamOverview(ctx context.Context) ([]domain.TeamMemberOverview, error)
}

type StatsService interface {
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
	UserStats(ctx context.Context, userID uint64) (domain.UserStats, error)
	AnalyticsOverview(ctx context.Context) (domain.AnalyticsOverview, error)
	TeamOverview(ctx context.Context) ([]domain.TeamMemberOverview, error)
}

type NotificationService interface {
	NotificationsFor(ctx context.Context, userID uint64) ([]domain.Notification, error)
}
