package service

import (
	"context"

	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) error {
	return s.taskRepository.UpdateTask(ctx, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	return s.taskRepository.DeleteTask(ctx, taskID)
}

func (s *TaskService) ClaimTask(ctx context.Context, taskID uint64, claimantName string, claimantID uint64) error {
	return s.taskRepository.ClaimTask(ctx, taskID, claimantName, claimantID)
}

func (s *TaskService) UnclaimTask(ctx context.Context, taskID uint64) error {
	return s.taskRepository.UnclaimTask(ctx, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
