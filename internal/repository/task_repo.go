package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campuspulse-backend/internal/models"
)

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

func (r *TaskRepo) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, description, priority, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	task.ID = uuid.New()
	task.Status = models.TaskStatusPending

	return r.pool.QueryRow(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Priority, task.Status, task.DueDate,
	).Scan(&task.CreatedAt)
}

func (r *TaskRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error) {
	task := &models.Task{}
	query := `SELECT id, user_id, title, description, priority, status, due_date, created_at, completed_at
		FROM tasks WHERE id = $1 AND user_id = $2`

	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.Priority,
		&task.Status, &task.DueDate, &task.CreatedAt, &task.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	query := `SELECT id, user_id, title, description, priority, status, due_date, created_at, completed_at
		FROM tasks WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority,
			&t.Status, &t.DueDate, &t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListPending returns tasks that have not been completed, newest first.
func (r *TaskRepo) ListPending(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	query := `SELECT id, user_id, title, description, priority, status, due_date, created_at, completed_at
		FROM tasks WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, models.TaskStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority,
			&t.Status, &t.DueDate, &t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, task *models.Task) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE tasks SET title = $1, description = $2, priority = $3, due_date = $4
		 WHERE id = $5 AND user_id = $6`,
		task.Title, task.Description, task.Priority, task.DueDate, task.ID, task.UserID,
	)
	return err
}

func (r *TaskRepo) SetStatus(ctx context.Context, id, userID uuid.UUID, status string) error {
	var completedAt *time.Time
	if status == models.TaskStatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}
	_, err := r.pool.Exec(ctx,
		"UPDATE tasks SET status = $1, completed_at = $2 WHERE id = $3 AND user_id = $4",
		status, completedAt, id, userID,
	)
	return err
}

func (r *TaskRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// BatchComplete marks the given tasks completed and returns how many rows changed.
// Tasks belonging to other users are silently skipped.
func (r *TaskRepo) BatchComplete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET status = $1, completed_at = NOW()
		 WHERE user_id = $2 AND id = ANY($3) AND status <> $1`,
		models.TaskStatusCompleted, userID, ids,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *TaskRepo) BatchDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM tasks WHERE user_id = $1 AND id = ANY($2)", userID, ids,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *TaskRepo) Counts(ctx context.Context, userID uuid.UUID) (total int, completed int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $2)
		FROM tasks WHERE user_id = $1
	`, userID, models.TaskStatusCompleted).Scan(&total, &completed)
	return
}

// RecentPending returns the newest pending tasks, capped at limit.
func (r *TaskRepo) RecentPending(ctx context.Context, userID uuid.UUID, limit int) ([]models.Task, error) {
	query := `SELECT id, user_id, title, description, priority, status, due_date, created_at, completed_at
		FROM tasks WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, userID, models.TaskStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, limit)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority,
			&t.Status, &t.DueDate, &t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MapByID loads all of the user's tasks keyed by ID, for resolving
// session task names without per-row lookups.
func (r *TaskRepo) MapByID(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]models.Task, error) {
	tasks, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	return byID, nil
}
