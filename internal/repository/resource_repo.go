package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campuspulse-backend/internal/models"
)

type ResourceRepo struct {
	pool *pgxpool.Pool
}

func NewResourceRepo(pool *pgxpool.Pool) *ResourceRepo {
	return &ResourceRepo{pool: pool}
}

func (r *ResourceRepo) Create(ctx context.Context, res *models.LearningResource) error {
	query := `
		INSERT INTO learning_resources (id, title, description, url, category, keywords, views)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING created_at`

	res.ID = uuid.New()
	return r.pool.QueryRow(ctx, query,
		res.ID, res.Title, res.Description, res.URL, res.Category, res.Keywords,
	).Scan(&res.CreatedAt)
}

// UpsertByURL inserts the resource unless one with the same URL already
// exists. Returns true when a new row was written.
func (r *ResourceRepo) UpsertByURL(ctx context.Context, res *models.LearningResource) (bool, error) {
	query := `
		INSERT INTO learning_resources (id, title, description, url, category, keywords, views)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		ON CONFLICT (url) DO NOTHING`

	res.ID = uuid.New()
	tag, err := r.pool.Exec(ctx, query,
		res.ID, res.Title, res.Description, res.URL, res.Category, res.Keywords,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ResourceRepo) GetByURL(ctx context.Context, url string) (*models.LearningResource, error) {
	res := &models.LearningResource{}
	query := `SELECT id, title, description, url, category, keywords, views, created_at
		FROM learning_resources WHERE url = $1`

	err := r.pool.QueryRow(ctx, query, url).Scan(
		&res.ID, &res.Title, &res.Description, &res.URL, &res.Category,
		&res.Keywords, &res.Views, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ResourceRepo) ListRecent(ctx context.Context, limit int) ([]models.LearningResource, error) {
	query := `SELECT id, title, description, url, category, keywords, views, created_at
		FROM learning_resources
		ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResources(rows)
}

func (r *ResourceRepo) All(ctx context.Context) ([]models.LearningResource, error) {
	query := `SELECT id, title, description, url, category, keywords, views, created_at
		FROM learning_resources
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResources(rows)
}

func (r *ResourceRepo) MostViewed(ctx context.Context, limit int) ([]models.LearningResource, error) {
	query := `SELECT id, title, description, url, category, keywords, views, created_at
		FROM learning_resources
		ORDER BY views DESC, created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResources(rows)
}

// IncrementViews bumps the counter atomically and returns the new value.
func (r *ResourceRepo) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx,
		"UPDATE learning_resources SET views = views + 1 WHERE id = $1 RETURNING views", id,
	).Scan(&views)
	return views, err
}

func (r *ResourceRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM learning_resources").Scan(&count)
	return count, err
}

func (r *ResourceRepo) Stats(ctx context.Context) (*models.ResourceStats, error) {
	stats := &models.ResourceStats{Categories: make(map[string]int)}

	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at::date = CURRENT_DATE),
			COALESCE(SUM(views), 0)
		FROM learning_resources
	`).Scan(&stats.Total, &stats.Today, &stats.TotalViews)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		"SELECT category, COUNT(*) FROM learning_resources GROUP BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.Categories[category] = count
	}
	return stats, rows.Err()
}

func scanResources(rows pgx.Rows) ([]models.LearningResource, error) {
	resources := make([]models.LearningResource, 0)
	for rows.Next() {
		var res models.LearningResource
		if err := rows.Scan(
			&res.ID, &res.Title, &res.Description, &res.URL, &res.Category,
			&res.Keywords, &res.Views, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}
