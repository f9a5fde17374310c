package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// AdminRoleRepository handles the single-row authorization records.
type AdminRoleRepository interface {
	GetByUserID(ctx context.Context, userID string) (domain.Role, error)
	Upsert(ctx context.Context, userID string, role domain.Role) error
	Delete(ctx context.Context, userID string) error
}

type adminRoleRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRoleRepository instantiates the repository.
func NewAdminRoleRepository(pool *pgxpool.Pool) AdminRoleRepository {
	return &adminRoleRepository{pool: pool}
}

func (r *adminRoleRepository) GetByUserID(ctx context.Context, userID string) (domain.Role, error) {
	const query = `SELECT role FROM admin_roles WHERE user_id=$1`

	var raw string
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&raw); err != nil {
		return domain.RoleUnresolved, err
	}
	return domain.ParseRole(raw)
}

func (r *adminRoleRepository) Upsert(ctx context.Context, userID string, role domain.Role) error {
	const query = `
        INSERT INTO admin_roles (user_id, role)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET role=EXCLUDED.role, updated_at=NOW()`

	_, err := r.pool.Exec(ctx, query, userID, role)
	return err
}

func (r *adminRoleRepository) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM admin_roles WHERE user_id=$1`

	_, err := r.pool.Exec(ctx, query, userID)
	return err
}
