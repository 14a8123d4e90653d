package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campuspulse-backend/internal/models"
)

type MoodRepo struct {
	pool *pgxpool.Pool
}

func NewMoodRepo(pool *pgxpool.Pool) *MoodRepo {
	return &MoodRepo{pool: pool}
}

// Upsert records the user's mood for today. A second log on the same
// calendar day overwrites the first.
func (r *MoodRepo) Upsert(ctx context.Context, log *models.MoodLog) error {
	query := `
		INSERT INTO mood_logs (id, user_id, score, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, (created_at::date)) DO UPDATE
		SET score = EXCLUDED.score, note = EXCLUDED.note
		RETURNING id, created_at`

	newID := uuid.New()
	return r.pool.QueryRow(ctx, query,
		newID, log.UserID, log.Score, log.Note,
	).Scan(&log.ID, &log.CreatedAt)
}

func (r *MoodRepo) Latest(ctx context.Context, userID uuid.UUID) (*models.MoodLog, error) {
	log := &models.MoodLog{}
	query := `SELECT id, user_id, score, note, created_at
		FROM mood_logs WHERE user_id = $1
		ORDER BY created_at DESC LIMIT 1`

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&log.ID, &log.UserID, &log.Score, &log.Note, &log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (r *MoodRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.MoodLog, error) {
	query := `SELECT id, user_id, score, note, created_at
		FROM mood_logs WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.MoodLog, 0)
	for rows.Next() {
		var l models.MoodLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Score, &l.Note, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
