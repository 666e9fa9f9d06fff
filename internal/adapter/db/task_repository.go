package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
)

const listTasksQuery = `
SELECT id, title, description, priority, due_date, category, claimed_by, claimed_by_id, status
FROM tasks
ORDER BY id DESC;
`

const getTaskQuery = `
SELECT id, title, description, priority, due_date, category, claimed_by, claimed_by_id, status
FROM tasks
WHERE id = ?;
`

const listTasksClaimedByQuery = `
SELECT id, title, description, priority, due_date, category, claimed_by, claimed_by_id, status
FROM tasks
WHERE claimed_by_id = ?
ORDER BY id DESC;
`

const createTaskQuery = `
INSERT INTO tasks (title, description, priority, due_date, category)
VALUES (?, ?, ?, ?, ?);
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, priority = ?, due_date = ?, category = ?
WHERE id = ?;
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`

// claimTaskQuery only matches unclaimed rows, so two racing claims
// resolve to exactly one winner on the store's single-statement
// atomicity.
const claimTaskQuery = `
UPDATE tasks
SET claimed_by = ?, claimed_by_id = ?, status = 'claimed'
WHERE id = ? AND status = 'unclaimed';
`

const unclaimTaskQuery = `
UPDATE tasks
SET claimed_by = NULL, claimed_by_id = NULL, status = 'unclaimed'
WHERE id = ?;
`

const taskExistsQuery = `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?);`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Priority    string         `db:"priority"`
	DueDate     string         `db:"due_date"`
	Category    sql.NullString `db:"category"`
	ClaimedBy   sql.NullString `db:"claimed_by"`
	ClaimedByID sql.NullInt64  `db:"claimed_by_id"`
	Status      string         `db:"status"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	return mapTaskRowsToDomainTasks(rows), nil
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListTasksClaimedBy(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksClaimedByQuery, userID); err != nil {
		return nil, err
	}

	return mapTaskRowsToDomainTasks(rows), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, createTaskQuery,
		input.Title,
		input.Description,
		string(input.Priority),
		input.DueDate,
		input.Category,
	)
	if err != nil {
		return domain.Task{}, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return domain.Task{
		ID:          uint64(taskID),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Category:    input.Category,
		Status:      domain.TaskStatusUnclaimed,
	}, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) error {
	result, err := r.db.ExecContext(ctx, updateTaskQuery,
		input.Title,
		input.Description,
		string(input.Priority),
		input.DueDate,
		input.Category,
		taskID,
	)
	if err != nil {
		return err
	}

	return r.requireTaskWhenUnaffected(ctx, result, taskID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) ClaimTask(ctx context.Context, taskID uint64, claimantName string, claimantID uint64) error {
	result, err := r.db.ExecContext(ctx, claimTaskQuery, claimantName, claimantID, taskID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// The row is either absent or already claimed by someone.
		exists, err := r.taskExists(ctx, taskID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrTaskNotFound
		}
		return domain.ErrTaskAlreadyClaimed
	}

	return nil
}

func (r *TaskRepository) UnclaimTask(ctx context.Context, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, unclaimTaskQuery, taskID)
	if err != nil {
		return err
	}

	// MySQL reports rows changed, not rows matched: unclaiming an
	// already-unclaimed task affects zero rows yet must still succeed.
	return r.requireTaskWhenUnaffected(ctx, result, taskID)
}

func (r *TaskRepository) requireTaskWhenUnaffected(ctx context.Context, result sql.Result, taskID uint64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.taskExists(ctx, taskID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) taskExists(ctx context.Context, taskID uint64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, taskExistsQuery, taskID); err != nil {
		return false, err
	}
	return exists, nil
}

func mapTaskRowsToDomainTasks(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Priority:    domain.TaskPriority(row.Priority),
		DueDate:     row.DueDate,
		Status:      domain.TaskStatus(row.Status),
	}

	if row.Category.Valid {
		value := row.Category.String
		task.Category = &value
	}

	if row.ClaimedBy.Valid {
		value := row.ClaimedBy.String
		task.ClaimedBy = &value
	}

	if row.ClaimedByID.Valid {
		value := uint64(row.ClaimedByID.Int64)
		task.ClaimedByID = &value
	}

	return task
}
