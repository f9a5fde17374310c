package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// BookingRepository handles persistence for strategy call bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.StrategyCallBooking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.StrategyCallBooking, error)
	List(ctx context.Context, filter BookingFilter) ([]domain.StrategyCallBooking, error)
}

// BookingFilter defines query params for booking listings.
type BookingFilter struct {
	Status *domain.BookingStatus
	Limit  int
	Offset int
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates the repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.StrategyCallBooking) error {
	const query = `
        INSERT INTO strategy_call_bookings (reference, name, email, company, phone, preferred_date, preferred_time, notes, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		b.Reference,
		b.Name,
		b.Email,
		b.Company,
		b.Phone,
		b.PreferredDate,
		b.PreferredTime,
		b.Notes,
		b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	const query = `UPDATE strategy_call_bookings SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM strategy_call_bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.StrategyCallBooking, error) {
	const query = `
        SELECT id, reference, name, email, company, phone, preferred_date, preferred_time, notes, status, created_at, updated_at
        FROM strategy_call_bookings WHERE id=$1`

	var b domain.StrategyCallBooking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Reference,
		&b.Name,
		&b.Email,
		&b.Company,
		&b.Phone,
		&b.PreferredDate,
		&b.PreferredTime,
		&b.Notes,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]domain.StrategyCallBooking, error) {
	query := `
        SELECT id, reference, name, email, company, phone, preferred_date, preferred_time, notes, status, created_at, updated_at
        FROM strategy_call_bookings`
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

	var result []domain.StrategyCallBooking
	for rows.Next() {
		var b domain.StrategyCallBooking
		if err := rows.Scan(
			&b.ID,
			&b.Reference,
			&b.Name,
			&b.Email,
			&b.Company,
			&b.Phone,
			&b.PreferredDate,
			&b.PreferredTime,
			&b.Notes,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}
