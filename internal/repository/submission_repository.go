package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// SubmissionRepository handles persistence for contact form submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.FormSubmission) error
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.FormSubmission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]domain.FormSubmission, error)
}

// SubmissionFilter defines query params for submission listings.
type SubmissionFilter struct {
	Status *domain.SubmissionStatus
	Limit  int
	Offset int
}

type submissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository instantiates the repository.
func NewSubmissionRepository(pool *pgxpool.Pool) SubmissionRepository {
	return &submissionRepository{pool: pool}
}

func (r *submissionRepository) Create(ctx context.Context, s *domain.FormSubmission) error {
	const query = `
        INSERT INTO form_submissions (name, email, company, message, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		s.Name,
		s.Email,
		s.Company,
		s.Message,
		s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	const query = `UPDATE form_submissions SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM form_submissions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*domain.FormSubmission, error) {
	const query = `
        SELECT id, name, email, company, message, status, created_at, updated_at
        FROM form_submissions WHERE id=$1`

	var s domain.FormSubmission
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Company,
		&s.Message,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]domain.FormSubmission, error) {
	query := `
        SELECT id, name, email, company, message, status, created_at, updated_at
        FROM form_submissions`
	args := []any{}
	clauses := []string{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
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

	var result []domain.FormSubmission
	for rows.Next() {
		var s domain.FormSubmission
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Company,
			&s.Message,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
