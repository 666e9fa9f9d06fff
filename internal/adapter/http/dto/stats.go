package dto

type DashboardStats struct {
	TotalTasks        int        `json:"totalTasks"`
	ClaimedTasks      int        `json:"claimedTasks"`
	UnclaimedTasks    int        `json:"unclaimedTasks"`
	TotalUsers        int        `json:"totalUsers"`
	HighPriorityTasks int        `json:"highPriorityTasks"`
	RecentTasks       []TaskItem `json:"recentTasks"`
}

type UserStats struct {
	MyTasks        int        `json:"myTasks"`
	MyHighPriority int        `json:"myHighPriority"`
	MyRecentTasks  []TaskItem `json:"myRecentTasks"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type ClaimantCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AnalyticsTotals struct {
	TotalTasks    int `json:"totalTasks"`
	ClaimedTasks  int `json:"claimedTasks"`
	ActiveMembers int `json:"activeMembers"`
	TotalMembers  int `json:"totalMembers"`
}

type AnalyticsOverview struct {
	TasksByStatus   []StatusCount   `json:"tasksByStatus"`
	TasksByPriority []PriorityCount `json:"tasksByPriority"`
	TasksByCategory []CategoryCount `json:"tasksByCategory"`
	TeamPerformance []ClaimantCount `json:"teamPerformance"`
	TotalStats      AnalyticsTotals `json:"totalStats"`
}

type TeamMemberOverview struct {
	ID                uint64 `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	TaskCount         int    `json:"taskCount"`
	HighPriorityCount int    `json:"highPriorityCount"`
}
