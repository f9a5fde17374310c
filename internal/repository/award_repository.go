package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// AwardRepository handles persistence for awards.
type AwardRepository interface {
	Create(ctx context.Context, a *domain.Award) error
	Update(ctx context.Context, a *domain.Award) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Award, error)
	List(ctx context.Context, filter ContentFilter) ([]domain.Award, error)
}

type awardRepository struct {
	pool *pgxpool.Pool
}

// NewAwardRepository instantiates the repository.
func NewAwardRepository(pool *pgxpool.Pool) AwardRepository {
	return &awardRepository{pool: pool}
}

func (r *awardRepository) Create(ctx context.Context, a *domain.Award) error {
	const query = `
        INSERT INTO awards (title, issuer, year, image_url)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		a.Title,
		a.Issuer,
		a.Year,
		a.ImageURL,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *awardRepository) Update(ctx context.Context, a *domain.Award) error {
	const query = `
        UPDATE awards
        SET title=$1, issuer=$2, year=$3, image_url=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		a.Title,
		a.Issuer,
		a.Year,
		a.ImageURL,
		a.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *awardRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM awards WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *awardRepository) GetByID(ctx context.Context, id string) (*domain.Award, error) {
	const query = `
        SELECT id, title, issuer, year, image_url, created_at, updated_at
        FROM awards WHERE id=$1`

	var a domain.Award
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Issuer,
		&a.Year,
		&a.ImageURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *awardRepository) List(ctx context.Context, filter ContentFilter) ([]domain.Award, error) {
	query := `
        SELECT id, title, issuer, year, image_url, created_at, updated_at
        FROM awards
        ORDER BY year DESC, created_at DESC`
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", normalizeLimit(filter.Limit), normalizeOffset(filter.Offset))

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Award
	for rows.Next() {
		var a domain.Award
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Issuer,
			&a.Year,
			&a.ImageURL,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
