package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
)

const countTasksQuery = `SELECT COUNT(*) FROM tasks;`

const countTasksByStatusQuery = `SELECT COUNT(*) FROM tasks WHERE status = ?;`

const countTasksByPriorityQuery = `SELECT COUNT(*) FROM tasks WHERE priority = ?;`

const countUsersQuery = `SELECT COUNT(*) FROM users;`

const recentTasksQuery = `
SELECT id, title, description, priority, due_date, category, claimed_by, claimed_by_id, status
FROM tasks
ORDER BY id DESC
LIMIT ?;
`

const countTasksClaimedByQuery = `SELECT COUNT(*) FROM tasks WHERE claimed_by_id = ?;`

const countHighPriorityClaimedByQuery = `
SELECT COUNT(*) FROM tasks WHERE claimed_by_id = ? AND priority = 'high';
`

const recentTasksClaimedByQuery = `
SELECT id, title, description, priority, due_date, category, claimed_by, claimed_by_id, status
FROM tasks
WHERE claimed_by_id = ?
ORDER BY id DESC
LIMIT ?;
`

const tasksGroupedByStatusQuery = `
SELECT status AS bucket, COUNT(*) AS count
FROM tasks
GROUP BY status;
`

const tasksGroupedByPriorityQuery = `
SELECT priority AS bucket, COUNT(*) AS count
FROM tasks
GROUP BY priority;
`

const tasksGroupedByCategoryQuery = `
SELECT COALESCE(category, 'Other') AS bucket, COUNT(*) AS count
FROM tasks
GROUP BY category;
`

const tasksGroupedByClaimantQuery = `
SELECT claimed_by AS bucket, COUNT(*) AS count
FROM tasks
WHERE claimed_by IS NOT NULL
GROUP BY claimed_by;
`

const analyticsTotalsQuery = `
SELECT
  COUNT(*) AS total_tasks,
  COUNT(CASE WHEN status = 'claimed' THEN 1 END) AS claimed_tasks,
  COUNT(DISTINCT claimed_by_id) AS active_members,
  (SELECT COUNT(*) FROM users) AS total_members
FROM tasks;
`

const teamOverviewQuery = `
SELECT
  u.id, u.name, u.email,
  COUNT(t.id) AS task_count,
  COUNT(CASE WHEN t.priority = 'high' THEN 1 END) AS high_priority_count
FROM users u
LEFT JOIN tasks t ON u.id = t.claimed_by_id
GROUP BY u.id, u.name, u.email
ORDER BY task_count DESC;
`

type StatsRepository struct {
	db *sqlx.DB
}

type countBucketRow struct {
	Bucket string `db:"bucket"`
	Count  int    `db:"count"`
}

type analyticsTotalsRow struct {
	TotalTasks    int `db:"total_tasks"`
	ClaimedTasks  int `db:"claimed_tasks"`
	ActiveMembers int `db:"active_members"`
	TotalMembers  int `db:"total_members"`
}

type teamOverviewRow struct {
	ID                uint64 `db:"id"`
	Name              string `db:"name"`
	Email             string `db:"email"`
	TaskCount         int    `db:"task_count"`
	HighPriorityCount int    `db:"high_priority_count"`
}

var _ ports.StatsRepository = (*StatsRepository)(nil)

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountTasks(ctx context.Context) (int, error) {
	return r.count(ctx, countTasksQuery)
}

func (r *StatsRepository) CountTasksByStatus(ctx context.Context, status domain.TaskStatus) (int, error) {
	return r.count(ctx, countTasksByStatusQuery, string(status))
}

func (r *StatsRepository) CountTasksByPriority(ctx context.Context, priority domain.TaskPriority) (int, error) {
	return r.count(ctx, countTasksByPriorityQuery, string(priority))
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, countUsersQuery)
}

func (r *StatsRepository) RecentTasks(ctx context.Context, limit int) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, recentTasksQuery, limit); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows), nil
}

func (r *StatsRepository) CountTasksClaimedBy(ctx context.Context, userID uint64) (int, error) {
	return r.count(ctx, countTasksClaimedByQuery, userID)
}

func (r *StatsRepository) CountHighPriorityClaimedBy(ctx context.Context, userID uint64) (int, error) {
	return r.count(ctx, countHighPriorityClaimedByQuery, userID)
}

func (r *StatsRepository) RecentTasksClaimedBy(ctx context.Context, userID uint64, limit int) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, recentTasksClaimedByQuery, userID, limit); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows), nil
}

func (r *StatsRepository) TasksGroupedByStatus(ctx context.Context) ([]domain.CountBucket, error) {
	return r.countBuckets(ctx, tasksGroupedByStatusQuery)
}

func (r *StatsRepository) TasksGroupedByPriority(ctx context.Context) ([]domain.CountBucket, error) {
	return r.countBuckets(ctx, tasksGroupedByPriorityQuery)
}

func (r *StatsRepository) TasksGroupedByCategory(ctx context.Context) ([]domain.CountBucket, error) {
	return r.countBuckets(ctx, tasksGroupedByCategoryQuery)
}

func (r *StatsRepository) TasksGroupedByClaimant(ctx context.Context) ([]domain.CountBucket, error) {
	return r.countBuckets(ctx, tasksGroupedByClaimantQuery)
}

func (r *StatsRepository) AnalyticsTotals(ctx context.Context) (domain.AnalyticsTotals, error) {
	var row analyticsTotalsRow
	if err := r.db.GetContext(ctx, &row, analyticsTotalsQuery); err != nil {
		return domain.AnalyticsTotals{}, err
	}

	return domain.AnalyticsTotals{
		TotalTasks:    row.TotalTasks,
		ClaimedTasks:  row.ClaimedTasks,
		ActiveMembers: row.ActiveMembers,
		TotalMembers:  row.TotalMembers,
	}, nil
}

func (r *StatsRepository) TeamOverview(ctx context.Context) ([]domain.TeamMemberOverview, error) {
	var rows []teamOverviewRow
	if err := r.db.SelectContext(ctx, &rows, teamOverviewQuery); err != nil {
		return nil, err
	}

	overview := make([]domain.TeamMemberOverview, 0, len(rows))
	for _, row := range rows {
		overview = append(overview, domain.TeamMemberOverview{
			ID:                row.ID,
			Name:              row.Name,
			Email:             row.Email,
			TaskCount:         row.TaskCount,
			HighPriorityCount: row.HighPriorityCount,
		})
	}

	return overview, nil
}

func (r *StatsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatsRepository) countBuckets(ctx context.Context, query string) ([]domain.CountBucket, error) {
	var rows []countBucketRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	buckets := make([]domain.CountBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, domain.CountBucket{Key: row.Bucket, Count: row.Count})
	}

	return buckets, nil
}
