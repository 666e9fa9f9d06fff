package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskclaim/internal/adapter/http/dto"
	"taskclaim/internal/adapter/http/handlers"
	"taskclaim/internal/adapter/http/middleware"
	"taskclaim/internal/core/domain"
	"taskclaim/pkg/apierrors"
)

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *userServiceMock) GetSettings(ctx context.Context, userID uint64) (domain.Settings, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *userServiceMock) UpdateSettings(ctx context.Context, userID uint64, settings domain.Settings) error {
	args := m.Called(ctx, userID, settings)
	return args.Error(0)
}

func (m *userServiceMock) UpdateProfile(ctx context.Context, userID uint64, name, email string) error {
	args := m.Called(ctx, userID, name, email)
	return args.Error(0)
}

func (m *userServiceMock) ChangePassword(ctx context.Context, userID uint64, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *userServiceMock) ExportUserData(ctx context.Context, userID uint64) (domain.UserExport, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserExport), args.Error(1)
}

func newUserRouter(serviceMock *userServiceMock) *gin.Engine {
	handler := handlers.NewUserHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.GET("/users", handler.ListUsers)
	api.DELETE("/users/:id", handler.DeleteUser)
	api.GET("/users/:id/settings", handler.GetSettings)
	api.PUT("/users/:id/settings", handler.UpdateSettings)
	api.PUT("/users/:id/profile", handler.UpdateProfile)
	api.PUT("/users/:id/password", handler.ChangePassword)
	api.GET("/users/:id/export", handler.ExportUserData)
	return router
}

func TestUserHandler_Register_Success(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Register", mock.Anything, "Alice", "alice@example.com", "secret").
		Return(domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil).Once()

	body := `{"name":"Alice","email":"alice@example.com","password":"secret"}`
	rec := doJSON(t, newUserRouter(serviceMock), http.MethodPost, "/api/register", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.User.ID)
	require.Equal(t, "Alice", got.User.Name)
	require.Equal(t, "Registration successful", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Register", mock.Anything, "Alice", "alice@example.com", "secret").
		Return(domain.User{}, domain.ErrEmailTaken).Once()

	body := `{"name":"Alice","email":"alice@example.com","password":"secret"}`
	rec := doJSON(t, newUserRouter(serviceMock), http.MethodPost, "/api/register", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Email already exists", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(domain.User{}, domain.ErrInvalidCredentials).Once()

	body := `{"email":"alice@example.com","password":"wrong"}`
	rec := doJSON(t, newUserRouter(serviceMock), http.MethodPost, "/api/login", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid email or password", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_DeleteUser_Success(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("DeleteUser", mock.Anything, uint64(3)).Return(nil).Once()

	rec := doJSON(t, newUserRouter(serviceMock), http.MethodDelete, "/api/users/3", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, "User deleted successfully", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_DeleteUser_NotFound(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("DeleteUser", mock.Anything, uint64(999)).Return(domain.ErrUserNotFound).Once()

	rec := doJSON(t, newUserRouter(serviceMock), http.MethodDelete, "/api/users/999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_GetSettings_ReturnsDefaults(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("GetSettings", mock.Anything, uint64(1)).Return(domain.DefaultSettings(), nil).Once()

	rec := doJSON(t, newUserRouter(serviceMock), http.MethodGet, "/api/users/1/settings", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SettingsItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.EmailNotifications)
	require.False(t, got.PushNotifications)
	require.True(t, got.TaskReminders)
	require.False(t, got.CompactMode)
	require.Equal(t, "light", got.Theme)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_UpdateSettings_Success(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("UpdateSettings", mock.Anything, uint64(1), domain.Settings{
		EmailNotifications: false,
		PushNotifications:  true,
		TaskReminders:      false,
		CompactMode:        true,
		Theme:              "dark",
	}).Return(nil).Once()

	body := `{"email_notifications":false,"push_notifications":true,"task_reminders":false,"compact_mode":true,"theme":"dark"}`
	rec := doJSON(t, newUserRouter(serviceMock), http.MethodPut, "/api/users/1/settings", body)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_UpdateProfile_DuplicateEmail(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("UpdateProfile", mock.Anything, uint64(1), "Alice", "bob@example.com").
		Return(domain.ErrEmailTaken).Once()

	body := `{"name":"Alice","email":"bob@example.com"}`
	rec := doJSON(t, newUserRouter(serviceMock), http.MethodPut, "/api/users/1/profile", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Email already exists", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ChangePassword_WrongCurrentPassword(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ChangePassword", mock.Anything, uint64(1), "wrong", "next").
		Return(domain.ErrWrongPassword).Once()

	body := `{"currentPassword":"wrong","newPassword":"next"}`
	rec := doJSON(t, newUserRouter(serviceMock), http.MethodPut, "/api/users/1/password", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Current password is incorrect", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ExportUserData_Success(t *testing.T) {
	claimedBy := "Alice"
	claimedByID := uint64(1)
	exportDate := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	serviceMock := new(userServiceMock)
	serviceMock.On("ExportUserData", mock.Anything, uint64(1)).Return(domain.UserExport{
		User: domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
		Tasks: []domain.Task{
			{
				ID:          4,
				Title:       "Testing & QA",
				Description: "Write tests",
				Priority:    domain.TaskPriorityLow,
				DueDate:     "2026-10-25",
				Status:      domain.TaskStatusClaimed,
				ClaimedBy:   &claimedBy,
				ClaimedByID: &claimedByID,
			},
		},
		Settings:   domain.DefaultSettings(),
		ExportDate: exportDate,
	}, nil).Once()

	rec := doJSON(t, newUserRouter(serviceMock), http.MethodGet, "/api/users/1/export", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.User.ID)
	require.Len(t, got.Tasks, 1)
	require.Equal(t, "claimed", got.Tasks[0].Status)
	require.Equal(t, "2026-08-28T12:00:00Z", got.ExportDate)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ExportUserData_UserNotFound(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ExportUserData", mock.Anything, uint64(999)).
		Return(domain.UserExport{}, domain.ErrUserNotFound).Once()

	rec := doJSON(t, newUserRouter(serviceMock), http.MethodGet, "/api/users/999/export", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ListUsers_Error(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ListUsers", mock.Anything).Return(nil, errors.New("db is down")).Once()

	rec := doJSON(t, newUserRouter(serviceMock), http.MethodGet, "/api/users", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to list users", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
