package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
)

const createUserQuery = `
INSERT INTO users (name, email, password)
VALUES (?, ?, ?);
`

const getUserByCredentialsQuery = `
SELECT id, name, email, created_at
FROM users
WHERE email = ? AND password = ?;
`

const getUserQuery = `
SELECT id, name, email, created_at
FROM users
WHERE id = ?;
`

const listUsersQuery = `
SELECT id, name, email, created_at
FROM users
ORDER BY id;
`

const unclaimUserTasksQuery = `
UPDATE tasks
SET claimed_by = NULL, claimed_by_id = NULL, status = 'unclaimed'
WHERE claimed_by_id = ?;
`

const deleteUserSettingsQuery = `DELETE FROM user_settings WHERE user_id = ?;`

const deleteUserQuery = `DELETE FROM users WHERE id = ?;`

const getSettingsQuery = `
SELECT email_notifications, push_notifications, task_reminders, compact_mode, theme
FROM user_settings
WHERE user_id = ?;
`

const insertDefaultSettingsQuery = `
INSERT INTO user_settings (user_id, email_notifications, push_notifications, task_reminders, compact_mode, theme)
VALUES (?, ?, ?, ?, ?, ?);
`

const upsertSettingsQuery = `
INSERT INTO user_settings (user_id, email_notifications, push_notifications, task_reminders, compact_mode, theme)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  email_notifications = VALUES(email_notifications),
  push_notifications = VALUES(push_notifications),
  task_reminders = VALUES(task_reminders),
  compact_mode = VALUES(compact_mode),
  theme = VALUES(theme);
`

const updateProfileQuery = `UPDATE users SET name = ?, email = ? WHERE id = ?;`

const getPasswordQuery = `SELECT password FROM users WHERE id = ?;`

const updatePasswordQuery = `UPDATE users SET password = ? WHERE id = ?;`

const userExistsQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?);`

// MySQL error 1062: duplicate entry for a unique key.
const mysqlErrDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type settingsRow struct {
	EmailNotifications bool   `db:"email_notifications"`
	PushNotifications  bool   `db:"push_notifications"`
	TaskReminders      bool   `db:"task_reminders"`
	CompactMode        bool   `db:"compact_mode"`
	Theme              string `db:"theme"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, name, email, password string) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, createUserQuery, name, email, password)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:    uint64(userID),
		Name:  name,
		Email: email,
	}, nil
}

func (r *UserRepository) GetUserByCredentials(ctx context.Context, email, password string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserByCredentialsQuery, email, password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, listUsersQuery); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}

	return users, nil
}

// DeleteUser cascades inside one transaction: the user's tasks are
// unclaimed and the settings row removed before the user row goes,
// so a partial failure never leaves tasks claimed by a missing user.
func (r *UserRepository) DeleteUser(ctx context.Context, userID uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, unclaimUserTasksQuery, userID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, deleteUserSettingsQuery, userID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, deleteUserQuery, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit()
}

func (r *UserRepository) GetSettings(ctx context.Context, userID uint64) (domain.Settings, error) {
	var row settingsRow
	err := r.db.GetContext(ctx, &row, getSettingsQuery, userID)
	if err == nil {
		return domain.Settings{
			EmailNotifications: row.EmailNotifications,
			PushNotifications:  row.PushNotifications,
			TaskReminders:      row.TaskReminders,
			CompactMode:        row.CompactMode,
			Theme:              row.Theme,
		}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Settings{}, err
	}

	// First read creates the defaults.
	defaults := domain.DefaultSettings()
	if _, err := r.db.ExecContext(ctx, insertDefaultSettingsQuery,
		userID,
		defaults.EmailNotifications,
		defaults.PushNotifications,
		defaults.TaskReminders,
		defaults.CompactMode,
		defaults.Theme,
	); err != nil {
		return domain.Settings{}, err
	}

	return defaults, nil
}

func (r *UserRepository) UpdateSettings(ctx context.Context, userID uint64, settings domain.Settings) error {
	_, err := r.db.ExecContext(ctx, upsertSettingsQuery,
		userID,
		settings.EmailNotifications,
		settings.PushNotifications,
		settings.TaskReminders,
		settings.CompactMode,
		settings.Theme,
	)
	return err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID uint64, name, email string) error {
	result, err := r.db.ExecContext(ctx, updateProfileQuery, name, email, userID)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrEmailTaken
		}
		return err
	}

	return r.requireUserWhenUnaffected(ctx, result, userID)
}

func (r *UserRepository) ChangePassword(ctx context.Context, userID uint64, currentPassword, newPassword string) error {
	var password string
	if err := r.db.GetContext(ctx, &password, getPasswordQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if password != currentPassword {
		return domain.ErrWrongPassword
	}

	_, err := r.db.ExecContext(ctx, updatePasswordQuery, newPassword, userID)
	return err
}

func (r *UserRepository) requireUserWhenUnaffected(ctx context.Context, result sql.Result, userID uint64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, userExistsQuery, userID); err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}
