package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, status, start_date, expected_end_date, actual_end_date, overdue_date,
	tax_rate, discount_percent, total_amount_cents, invoice_id, has_operators, has_timesheet, notes,
	created_on, updated_on, deleted_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, status, start_date, expected_end_date, tax_rate, discount_percent,
	          total_amount_cents, has_operators, has_timesheet, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	ts := now()
	rt.CreatedOn = ts
	rt.UpdatedOn = ts
	return r.db.QueryRowContext(ctx, query,
		rt.CustomerID, rt.Status, rt.StartDate, rt.ExpectedEndDate, rt.TaxRate, rt.DiscountPercent,
		rt.TotalAmountCents, rt.HasOperators, rt.HasTimesheet, rt.Notes, ts, ts,
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CustomerID, &rt.Status, &rt.StartDate, &rt.ExpectedEndDate, &rt.ActualEndDate, &rt.OverdueDate,
		&rt.TaxRate, &rt.DiscountPercent, &rt.TotalAmountCents, &rt.InvoiceID, &rt.HasOperators, &rt.HasTimesheet, &rt.Notes,
		&rt.CreatedOn, &rt.UpdatedOn, &rt.DeletedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, expected_end_date=$2, actual_end_date=$3, overdue_date=$4,
	          total_amount_cents=$5, invoice_id=$6, notes=$7, updated_on=$8 WHERE id=$9 AND deleted_on IS NULL`
	rt.UpdatedOn = now()
	res, err := r.db.ExecContext(ctx, query,
		rt.Status, rt.ExpectedEndDate, rt.ActualEndDate, rt.OverdueDate,
		rt.TotalAmountCents, rt.InvoiceID, rt.Notes, rt.UpdatedOn, rt.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) SoftDelete(ctx context.Context, id int32) error {
	query := `UPDATE rentals SET deleted_on=$1, updated_on=$1 WHERE id=$2 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) ListByStatus(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM rentals WHERE status = $1 AND deleted_on IS NULL`
	if err := r.db.QueryRowContext(ctx, countQuery, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND deleted_on IS NULL
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rentals, err := scanRentals(rows)
	if err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func (r *rentalRepository) ListActivePastEndDate(ctx context.Context, asOf string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE status = $1 AND expected_end_date < $2 AND deleted_on IS NULL
	          ORDER BY expected_end_date ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusActive, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func (r *rentalRepository) ListWithFilters(ctx context.Context, filter repository.RentalFilter) ([]domain.RentalSummary, int32, error) {
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	base := `FROM rentals r
	         JOIN customers c ON r.customer_id = c.id
	         LEFT JOIN rental_items i ON i.rental_id = r.id
	         WHERE r.deleted_on IS NULL`
	args := []interface{}{}
	argIdx := 1
	if filter.CustomerID != 0 {
		base += fmt.Sprintf(" AND r.customer_id = $%d", argIdx)
		args = append(args, filter.CustomerID)
		argIdx++
	}
	if filter.Status != "" {
		base += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var count int32
	countQuery := `SELECT count(DISTINCT r.id) ` + base
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT r.id, r.customer_id, c.name, r.status, r.start_date, r.expected_end_date,
	          r.total_amount_cents, count(i.id) ` + base + `
	          GROUP BY r.id, r.customer_id, c.name, r.status, r.start_date, r.expected_end_date, r.total_amount_cents, r.created_on
	          ORDER BY r.created_on DESC` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var summaries []domain.RentalSummary
	for rows.Next() {
		var s domain.RentalSummary
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.CustomerName, &s.Status, &s.StartDate, &s.ExpectedEndDate, &s.TotalAmountCents, &s.ItemCount); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return summaries, count, nil
}

func scanRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.CustomerID, &rt.Status, &rt.StartDate, &rt.ExpectedEndDate, &rt.ActualEndDate, &rt.OverdueDate,
			&rt.TaxRate, &rt.DiscountPercent, &rt.TotalAmountCents, &rt.InvoiceID, &rt.HasOperators, &rt.HasTimesheet, &rt.Notes,
			&rt.CreatedOn, &rt.UpdatedOn, &rt.DeletedOn,
		); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rentals, nil
}
