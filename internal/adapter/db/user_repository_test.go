package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"taskclaim/internal/core/domain"
)

func userColumns() []string {
	return []string{"id", "name", "email", "created_at"}
}

func TestUserRepository_CreateUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(createUserQuery)).
		WithArgs("Alice", "alice@example.com", "secret").
		WillReturnResult(sqlmock.NewResult(1, 1))

	user, err := repo.CreateUser(context.Background(), "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	require.Equal(t, "Alice", user.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(createUserQuery)).
		WithArgs("Alice", "alice@example.com", "secret").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice@example.com' for key 'users.email'"})

	_, err := repo.CreateUser(context.Background(), "Alice", "alice@example.com", "secret")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByCredentials_Invalid(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(getUserByCredentialsQuery)).
		WithArgs("alice@example.com", "wrong").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByCredentials(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByCredentials_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(getUserByCredentialsQuery)).
		WithArgs("alice@example.com", "secret").
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(1, "Alice", "alice@example.com", createdAt))

	user, err := repo.GetUserByCredentials(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser_CascadesInOneTransaction(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	// Unclaim tasks, drop settings, then delete the user row, all
	// inside the same transaction.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(unclaimUserTasksQuery)).
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserSettingsQuery)).
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserQuery)).
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteUser(context.Background(), 3)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser_NotFoundRollsBack(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(unclaimUserTasksQuery)).
		WithArgs(uint64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserSettingsQuery)).
		WithArgs(uint64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserQuery)).
		WithArgs(uint64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser_PartialFailureRollsBack(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(unclaimUserTasksQuery)).
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserSettingsQuery)).
		WithArgs(uint64(3)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), 3)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetSettings_Existing(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(getSettingsQuery)).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"email_notifications", "push_notifications", "task_reminders", "compact_mode", "theme"}).
			AddRow(false, true, false, true, "dark"))

	settings, err := repo.GetSettings(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, settings.EmailNotifications)
	require.True(t, settings.PushNotifications)
	require.Equal(t, "dark", settings.Theme)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetSettings_CreatesDefaultsOnFirstRead(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(getSettingsQuery)).
		WithArgs(uint64(1)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta(insertDefaultSettingsQuery)).
		WithArgs(uint64(1), true, false, true, false, "light").
		WillReturnResult(sqlmock.NewResult(0, 1))

	settings, err := repo.GetSettings(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultSettings(), settings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_DuplicateEmail(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(updateProfileQuery)).
		WithArgs("Alice", "bob@example.com", uint64(1)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'bob@example.com' for key 'users.email'"})

	err := repo.UpdateProfile(context.Background(), 1, "Alice", "bob@example.com")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ChangePassword_WrongCurrent(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(getPasswordQuery)).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"password"}).AddRow("secret"))

	err := repo.ChangePassword(context.Background(), 1, "wrong", "next")
	require.ErrorIs(t, err, domain.ErrWrongPassword)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ChangePassword_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(getPasswordQuery)).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"password"}).AddRow("secret"))
	mock.ExpectExec(regexp.QuoteMeta(updatePasswordQuery)).
		WithArgs("next", uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ChangePassword(context.Background(), 1, "secret", "next")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
