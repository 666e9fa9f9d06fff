package mapper

import (
	"taskclaim/internal/adapter/http/dto"
	"taskclaim/internal/core/domain"
)

func ToDashboardStats(stats domain.DashboardStats) dto.DashboardStats {
	return dto.DashboardStats{
		TotalTasks:        stats.TotalTasks,
		ClaimedTasks:      stats.ClaimedTasks,
		UnclaimedTasks:    stats.UnclaimedTasks,
		TotalUsers:        stats.TotalUsers,
		HighPriorityTasks: stats.HighPriorityTasks,
		RecentTasks:       ToTaskItems(stats.RecentTasks),
	}
}

func ToUserStats(stats domain.UserStats) dto.UserStats {
	return dto.UserStats{
		MyTasks:        stats.MyTasks,
		MyHighPriority: stats.MyHighPriority,
		MyRecentTasks:  ToTaskItems(stats.MyRecentTasks),
	}
}

func ToAnalyticsOverview(overview domain.AnalyticsOverview) dto.AnalyticsOverview {
	result := dto.AnalyticsOverview{
		TasksByStatus:   make([]dto.StatusCount, 0, len(overview.TasksByStatus)),
		TasksByPriority: make([]dto.PriorityCount, 0, len(overview.TasksByPriority)),
		TasksByCategory: make([]dto.CategoryCount, 0, len(overview.TasksByCategory)),
		TeamPerformance: make([]dto.ClaimantCount, 0, len(overview.TeamPerformance)),
		TotalStats: dto.AnalyticsTotals{
			TotalTasks:    overview.Totals.TotalTasks,
			ClaimedTasks:  overview.Totals.ClaimedTasks,
			ActiveMembers: overview.Totals.ActiveMembers,
			TotalMembers:  overview.Totals.TotalMembers,
		},
	}

	for _, bucket := range overview.TasksByStatus {
		result.TasksByStatus = append(result.TasksByStatus, dto.StatusCount{Status: bucket.Key, Count: bucket.Count})
	}
	for _, bucket := range overview.TasksByPriority {
		result.TasksByPriority = append(result.TasksByPriority, dto.PriorityCount{Priority: bucket.Key, Count: bucket.Count})
	}
	for _, bucket := range overview.TasksByCategory {
		result.TasksByCategory = append(result.TasksByCategory, dto.CategoryCount{Category: bucket.Key, Count: bucket.Count})
	}
	for _, bucket := range overview.TeamPerformance {
		result.TeamPerformance = append(result.TeamPerformance, dto.ClaimantCount{Name: bucket.Key, Count: bucket.Count})
	}

	return result
}

func ToTeamMemberOverviews(rows []domain.TeamMemberOverview) []dto.TeamMemberOverview {
	items := make([]dto.TeamMemberOverview, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.TeamMemberOverview{
			ID:                row.ID,
			Name:              row.Name,
			Email:             row.Email,
			TaskCount:         row.TaskCount,
			HighPriorityCount: row.HighPriorityCount,
		})
	}
	return items
}
