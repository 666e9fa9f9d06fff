package domain

// DashboardStats is the board-wide aggregate view.
type DashboardStats struct {
	TotalTasks        int
	ClaimedTasks      int
	UnclaimedTasks    int
	TotalUsers        int
	HighPriorityTasks int
	RecentTasks       []Task
}

// UserStats is the per-user aggregate view.
type UserStats struct {
	MyTasks        int
	MyHighPriority int
	MyRecentTasks  []Task
}

// CountBucket is one row of a GROUP BY count, keyed by the grouped
// column value (status, priority, category or claimant name).
type CountBucket struct {
	Key   string
	Count int
}

type AnalyticsTotals struct {
	TotalTasks    int
	ClaimedTasks  int
	ActiveMembers int
	TotalMembers  int
}

type AnalyticsOverview struct {
	TasksByStatus   []CountBucket
	TasksByPriority []CountBucket
	TasksByCategory []CountBucket
	TeamPerformance []CountBucket
	Totals          AnalyticsTotals
}

// TeamMemberOverview is one row of the team overview join.
type TeamMemberOverview struct {
	ID                uint64
	Name              string
	Email             string
	TaskCount         int
	HighPriorityCount int
}
