package ports

import (
	"context"

	"taskclaim/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, name, email, password string) (domain.User, error)
	GetUserByCredentials(ctx context.Context, email, password string) (domain.User, error)
	GetUser(ctx context.Context, userID uint64) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID uint64) error
	GetSettings(ctx context.Context, userID uint64) (domain.Settings, error)
	UpdateSettings(ctx context.Context, userID uint64, settings domain.Settings) error
	UpdateProfile(ctx context.Context, userID uint64, name, email string) error
	ChangePassword(ctx context.Context, userID uint64, currentPassword, newPassword string) error
}

type UserService interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID uint64) error
	GetSettings(ctx context.Context, userID uint64) (domain.Settings, error)
	UpdateSettings(ctx context.Context, userID uint64, settings domain.Settings) error
	UpdateProfile(ctx context.Context, userID uint64, name, email string) error
	ChangePassword(ctx context.Context, userID uint64, currentPassword, newPassword string) error
	ExportUserData(ctx context.Context, userID uint64) (domain.UserExport, error)
}
