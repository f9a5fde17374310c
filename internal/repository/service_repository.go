package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// ServiceRepository handles persistence for marketing service offerings.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, filter ContentFilter) ([]domain.Service, error)
}

// ContentFilter defines shared query params for content listings.
type ContentFilter struct {
	Published *bool
	Limit     int
	Offset    int
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository instantiates the repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	const query = `
        INSERT INTO services (title, slug, summary, description, icon, features, display_order, published)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		svc.Title,
		svc.Slug,
		svc.Summary,
		svc.Description,
		svc.Icon,
		svc.Features,
		svc.DisplayOrder,
		svc.Published,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.Service) error {
	const query = `
        UPDATE services
        SET title=$1, slug=$2, summary=$3, description=$4, icon=$5, features=$6, display_order=$7, published=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		svc.Title,
		svc.Slug,
		svc.Summary,
		svc.Description,
		svc.Icon,
		svc.Features,
		svc.DisplayOrder,
		svc.Published,
		svc.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	const query = `
        SELECT id, title, slug, summary, description, icon, features, display_order, published, created_at, updated_at
        FROM services WHERE id=$1`

	var svc domain.Service
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&svc.ID,
		&svc.Title,
		&svc.Slug,
		&svc.Summary,
		&svc.Description,
		&svc.Icon,
		&svc.Features,
		&svc.DisplayOrder,
		&svc.Published,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) List(ctx context.Context, filter ContentFilter) ([]domain.Service, error) {
	query := `
        SELECT id, title, slug, summary, description, icon, features, display_order, published, created_at, updated_at
        FROM services`
	args := []any{}
	clauses := []string{}

	if filter.Published != nil {
		args = append(args, *filter.Published)
		clauses = append(clauses, fmt.Sprintf("published=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY display_order ASC, created_at DESC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", normalizeLimit(filter.Limit), normalizeOffset(filter.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Service
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(
			&svc.ID,
			&svc.Title,
			&svc.Slug,
			&svc.Summary,
			&svc.Description,
			&svc.Icon,
			&svc.Features,
			&svc.DisplayOrder,
			&svc.Published,
			&svc.CreatedAt,
			&svc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, svc)
	}
	return result, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
