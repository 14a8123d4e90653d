package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campuspulse-backend/internal/models"
)

type StudySessionRepo struct {
	pool *pgxpool.Pool
}

func NewStudySessionRepo(pool *pgxpool.Pool) *StudySessionRepo {
	return &StudySessionRepo{pool: pool}
}

// Start opens a session, guarded so a user can never hold two active
// sessions at once. The insert only fires when no open session exists;
// pgx.ErrNoRows from the Scan means another session is still running.
func (r *StudySessionRepo) Start(ctx context.Context, s *models.StudySession) error {
	query := `
		INSERT INTO study_sessions (id, user_id, task_id, start_time, note, session_type)
		SELECT $1, $2, $3, NOW(), $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM study_sessions
			WHERE user_id = $2 AND end_time IS NULL
		)
		RETURNING id, start_time, created_at`

	newID := uuid.New()
	return r.pool.QueryRow(ctx, query,
		newID, s.UserID, s.TaskID, s.Note, s.SessionType,
	).Scan(&s.ID, &s.StartTime, &s.CreatedAt)
}

func (r *StudySessionRepo) Active(ctx context.Context, userID uuid.UUID) (*models.StudySession, error) {
	s := &models.StudySession{}
	query := `SELECT id, user_id, task_id, start_time, end_time, duration_minutes, focus_score, note, session_type, created_at
		FROM study_sessions
		WHERE user_id = $1 AND end_time IS NULL`

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.TaskID, &s.StartTime, &s.EndTime,
		&s.DurationMinutes, &s.FocusScore, &s.Note, &s.SessionType, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Stop ends the session and freezes its duration in whole minutes.
// Already-stopped sessions are left untouched.
func (r *StudySessionRepo) Stop(ctx context.Context, sessionID, userID uuid.UUID, focusScore int, notes string) (*models.StudySession, error) {
	s := &models.StudySession{}
	query := `
		UPDATE study_sessions
		SET end_time = NOW(),
			duration_minutes = GREATEST(0, FLOOR(EXTRACT(EPOCH FROM (NOW() - start_time)) / 60))::INT,
			focus_score = $3,
			note = CASE WHEN $4 = '' THEN note ELSE TRIM(note || ' ' || $4) END
		WHERE id = $1 AND user_id = $2 AND end_time IS NULL
		RETURNING id, user_id, task_id, start_time, end_time, duration_minutes, focus_score, note, session_type, created_at`

	err := r.pool.QueryRow(ctx, query, sessionID, userID, focusScore, notes).Scan(
		&s.ID, &s.UserID, &s.TaskID, &s.StartTime, &s.EndTime,
		&s.DurationMinutes, &s.FocusScore, &s.Note, &s.SessionType, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListEnded returns every finished session, newest first.
func (r *StudySessionRepo) ListEnded(ctx context.Context, userID uuid.UUID) ([]models.StudySession, error) {
	query := `SELECT id, user_id, task_id, start_time, end_time, duration_minutes, focus_score, note, session_type, created_at
		FROM study_sessions
		WHERE user_id = $1 AND end_time IS NOT NULL
		ORDER BY start_time DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.StudySession, 0)
	for rows.Next() {
		var s models.StudySession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.TaskID, &s.StartTime, &s.EndTime,
			&s.DurationMinutes, &s.FocusScore, &s.Note, &s.SessionType, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *StudySessionRepo) ListEndedPage(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.StudySession, error) {
	query := `SELECT id, user_id, task_id, start_time, end_time, duration_minutes, focus_score, note, session_type, created_at
		FROM study_sessions
		WHERE user_id = $1 AND end_time IS NOT NULL
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.StudySession, 0, limit)
	for rows.Next() {
		var s models.StudySession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.TaskID, &s.StartTime, &s.EndTime,
			&s.DurationMinutes, &s.FocusScore, &s.Note, &s.SessionType, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *StudySessionRepo) CountEnded(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM study_sessions WHERE user_id = $1 AND end_time IS NOT NULL",
		userID,
	).Scan(&count)
	return count, err
}

func (r *StudySessionRepo) Delete(ctx context.Context, sessionID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM study_sessions WHERE id = $1 AND user_id = $2", sessionID, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
