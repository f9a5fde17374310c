package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// TestimonialRepository handles persistence for client testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	List(ctx context.Context, filter ContentFilter) ([]domain.Testimonial, error)
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository instantiates the repository.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (client_name, company, quote, rating, image_url, published)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		t.ClientName,
		t.Company,
		t.Quote,
		t.Rating,
		t.ImageURL,
		t.Published,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *testimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        UPDATE testimonials
        SET client_name=$1, company=$2, quote=$3, rating=$4, image_url=$5, published=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		t.ClientName,
		t.Company,
		t.Quote,
		t.Rating,
		t.ImageURL,
		t.Published,
		t.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	const query = `
        SELECT id, client_name, company, quote, rating, image_url, published, created_at, updated_at
        FROM testimonials WHERE id=$1`

	var t domain.Testimonial
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.ClientName,
		&t.Company,
		&t.Quote,
		&t.Rating,
		&t.ImageURL,
		&t.Published,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) List(ctx context.Context, filter ContentFilter) ([]domain.Testimonial, error) {
	query := `
        SELECT id, client_name, company, quote, rating, image_url, published, created_at, updated_at
        FROM testimonials`
	args := []any{}
	clauses := []string{}

	if filter.Published != nil {
		args = append(args, *filter.Published)
		clauses = append(clauses, fmt.Sprintf("published=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", normalizeLimit(filter.Limit), normalizeOffset(filter.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(
			&t.ID,
			&t.ClientName,
			&t.Company,
			&t.Quote,
			&t.Rating,
			&t.ImageURL,
			&t.Published,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
