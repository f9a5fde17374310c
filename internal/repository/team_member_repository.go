package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// TeamMemberRepository handles persistence for team members.
type TeamMemberRepository interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context, filter ContentFilter) ([]domain.TeamMember, error)
}

type teamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewTeamMemberRepository instantiates the repository.
func NewTeamMemberRepository(pool *pgxpool.Pool) TeamMemberRepository {
	return &teamMemberRepository{pool: pool}
}

func (r *teamMemberRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (name, position, bio, image_url, display_order)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		m.Name,
		m.Position,
		m.Bio,
		m.ImageURL,
		m.DisplayOrder,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *teamMemberRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	const query = `
        UPDATE team_members
        SET name=$1, position=$2, bio=$3, image_url=$4, display_order=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		m.Name,
		m.Position,
		m.Bio,
		m.ImageURL,
		m.DisplayOrder,
		m.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamMemberRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamMemberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	const query = `
        SELECT id, name, position, bio, image_url, display_order, created_at, updated_at
        FROM team_members WHERE id=$1`

	var m domain.TeamMember
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Position,
		&m.Bio,
		&m.ImageURL,
		&m.DisplayOrder,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *teamMemberRepository) List(ctx context.Context, filter ContentFilter) ([]domain.TeamMember, error) {
	query := `
        SELECT id, name, position, bio, image_url, display_order, created_at, updated_at
        FROM team_members
        ORDER BY display_order ASC, created_at DESC`
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", normalizeLimit(filter.Limit), normalizeOffset(filter.Offset))

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Position,
			&m.Bio,
			&m.ImageURL,
			&m.DisplayOrder,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
