package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const createSchemaStatements = `
CREATE TABLE IF NOT EXISTS users (
  id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
  name VARCHAR(255) NOT NULL,
  email VARCHAR(255) UNIQUE NOT NULL,
  password VARCHAR(255) NOT NULL,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS user_settings (
  user_id BIGINT UNSIGNED PRIMARY KEY,
  email_notifications BOOLEAN DEFAULT TRUE,
  push_notifications BOOLEAN DEFAULT FALSE,
  task_reminders BOOLEAN DEFAULT TRUE,
  compact_mode BOOLEAN DEFAULT FALSE,
  theme VARCHAR(32) DEFAULT 'light'
);
CREATE TABLE IF NOT EXISTS tasks (
  id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
  title VARCHAR(255) NOT NULL,
  description TEXT NOT NULL,
  priority VARCHAR(16) NOT NULL,
  due_date VARCHAR(32) NOT NULL,
  category VARCHAR(255),
  claimed_by VARCHAR(255),
  claimed_by_id BIGINT UNSIGNED,
  status VARCHAR(16) NOT NULL DEFAULT 'unclaimed'
);
`

const countTasksForSeedQuery = `SELECT COUNT(*) FROM tasks;`

const seedTaskQuery = `
INSERT INTO tasks (title, description, priority, due_date)
VALUES (?, ?, ?, ?);
`

type seedTask struct {
	title       string
	description string
	priority    string
	dueDate     string
}

var seedTasks = []seedTask{
	{"Frontend Development", "Build responsive user interface with React components", "high", "2026-10-15"},
	{"API Integration", "Connect frontend to backend services with proper error handling", "medium", "2026-10-18"},
	{"Database Design", "Design and implement database schema with proper relationships", "high", "2026-10-12"},
	{"Testing & QA", "Write comprehensive tests and perform quality assurance", "low", "2026-10-25"},
	{"Documentation", "Create user guides and technical documentation", "medium", "2026-10-30"},
	{"Deployment Setup", "Configure CI/CD pipeline and production environment", "high", "2026-11-05"},
}

// Bootstrap creates the schema when missing and seeds the board with
// sample tasks when the tasks table is empty. Requires
// multiStatements=true on the connection.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createSchemaStatements); err != nil {
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count, countTasksForSeedQuery); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, task := range seedTasks {
		if _, err := db.ExecContext(ctx, seedTaskQuery, task.title, task.description, task.priority, task.dueDate); err != nil {
			return err
		}
	}
	zap.L().Info("seeded sample tasks", zap.Int("count", len(seedTasks)))

	return nil
}
