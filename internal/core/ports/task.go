package ports

import (
	"context"

	"taskclaim/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) error
	DeleteTask(ctx context.Context, taskID uint64) error
	ClaimTask(ctx context.Context, taskID uint64, claimantName string, claimantID uint64) error
	UnclaimTask(ctx context.Context, taskID uint64) error
	ListTasksClaimedBy(ctx context.Context, userID uint64) ([]domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) error
	DeleteTask(ctx context.Context, taskID uint64) error
	ClaimTask(ctx context.Context, taskID uint64, claimantName string, claimantID uint64) error
	UnclaimTask(ctx context.Context, taskID uint64) error
}
