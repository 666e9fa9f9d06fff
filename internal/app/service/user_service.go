package service

import (
	"context"
	"strings"
	"time"

	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
}

func NewUserService(userRepository ports.UserRepository, taskRepository ports.TaskRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
		taskRepository: taskRepository,
	}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	return s.userRepository.CreateUser(ctx, name, email, password)
}

func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return s.userRepository.GetUserByCredentials(ctx, strings.TrimSpace(email), strings.TrimSpace(password))
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, userID uint64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}

func (s *UserService) GetSettings(ctx context.Context, userID uint64) (domain.Settings, error) {
	return s.userRepository.GetSettings(ctx, userID)
}

func (s *UserService) UpdateSettings(ctx context.Context, userID uint64, settings domain.Settings) error {
	return s.userRepository.UpdateSettings(ctx, userID, settings)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, name, email string) error {
	return s.userRepository.UpdateProfile(ctx, userID, name, email)
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint64, currentPassword, newPassword string) error {
	return s.userRepository.ChangePassword(ctx, userID, currentPassword, newPassword)
}

func (s *UserService) ExportUserData(ctx context.Context, userID uint64) (domain.UserExport, error) {
	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		return domain.UserExport{}, err
	}

	tasks, err := s.taskRepository.ListTasksClaimedBy(ctx, userID)
	if err != nil {
		return domain.UserExport{}, err
	}

	settings, err := s.userRepository.GetSettings(ctx, userID)
	if err != nil {
		return domain.UserExport{}, err
	}

	return domain.UserExport{
		User:       user,
		Tasks:      tasks,
		Settings:   settings,
		ExportDate: time.Now().UTC(),
	}, nil
}

var _ ports.UserService = (*UserService)(nil)
