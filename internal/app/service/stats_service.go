package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
)

const (
	recentTasksLimit     = 6
	userRecentTasksLimit = 3
)

// StatsService composes the aggregate read models. Every endpoint fans
// the underlying queries out concurrently and answers all-or-nothing:
// the first failed query cancels the rest and fails the whole request.
type StatsService struct {
	statsRepository ports.StatsRepository
}

func NewStatsService(statsRepository ports.StatsRepository) *StatsService {
	return &StatsService{statsRepository: statsRepository}
}

func (s *StatsService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalTasks, err = s.statsRepository.CountTasks(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ClaimedTasks, err = s.statsRepository.CountTasksByStatus(ctx, domain.TaskStatusClaimed)
		return err
	})
	g.Go(func() (err error) {
		stats.UnclaimedTasks, err = s.statsRepository.CountTasksByStatus(ctx, domain.TaskStatusUnclaimed)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.statsRepository.CountUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.HighPriorityTasks, err = s.statsRepository.CountTasksByPriority(ctx, domain.TaskPriorityHigh)
		return err
	})
	g.Go(func() (err error) {
		stats.RecentTasks, err = s.statsRepository.RecentTasks(ctx, recentTasksLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}
	return stats, nil
}

func (s *StatsService) UserStats(ctx context.Context, userID uint64) (domain.UserStats, error) {
	var stats domain.UserStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.MyTasks, err = s.statsRepository.CountTasksClaimedBy(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.MyHighPriority, err = s.statsRepository.CountHighPriorityClaimedBy(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.MyRecentTasks, err = s.statsRepository.RecentTasksClaimedBy(ctx, userID, userRecentTasksLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.UserStats{}, err
	}
	return stats, nil
}

func (s *StatsService) AnalyticsOverview(ctx context.Context) (domain.AnalyticsOverview, error) {
	var overview domain.AnalyticsOverview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.TasksByStatus, err = s.statsRepository.TasksGroupedByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.TasksByPriority, err = s.statsRepository.TasksGroupedByPriority(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.TasksByCategory, err = s.statsRepository.TasksGroupedByCategory(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.TeamPerformance, err = s.statsRepository.TasksGroupedByClaimant(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Totals, err = s.statsRepository.AnalyticsTotals(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.AnalyticsOverview{}, err
	}
	return overview, nil
}

func (s *StatsService) TeamOverview(ctx context.Context) ([]domain.TeamMemberOverview, error) {
	return s.statsRepository.TeamOverview(ctx)
}

var _ ports.StatsService = (*StatsService)(nil)
