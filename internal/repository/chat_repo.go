package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campuspulse-backend/internal/models"
)

type ChatRepo struct {
	pool *pgxpool.Pool
}

func NewChatRepo(pool *pgxpool.Pool) *ChatRepo {
	return &ChatRepo{pool: pool}
}

func (r *ChatRepo) Save(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, user_id, message, response)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	msg.ID = uuid.New()
	return r.pool.QueryRow(ctx, query,
		msg.ID, msg.UserID, msg.Message, msg.Response,
	).Scan(&msg.CreatedAt)
}

func (r *ChatRepo) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	query := `SELECT id, user_id, message, response, created_at
		FROM chat_messages WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
