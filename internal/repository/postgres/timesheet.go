package postgres

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type timesheetRepository struct {
	db DBTX
}

func NewTimesheetRepository(db DBTX) repository.TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) Create(ctx context.Context, ts *domain.Timesheet) error {
	query := `INSERT INTO timesheets (rental_id, rental_item_id, operator_id, start_date, end_date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	stamp := now()
	ts.CreatedOn = stamp
	ts.UpdatedOn = stamp
	return r.db.QueryRowContext(ctx, query,
		ts.RentalID, ts.RentalItemID, ts.OperatorID, ts.StartDate, ts.EndDate, ts.Status, stamp, stamp,
	).Scan(&ts.ID)
}

func (r *timesheetRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.Timesheet, error) {
	query := `SELECT id, rental_id, rental_item_id, operator_id, start_date, end_date, status, created_on, updated_on
	          FROM timesheets WHERE rental_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []domain.Timesheet
	for rows.Next() {
		var ts domain.Timesheet
		if err := rows.Scan(&ts.ID, &ts.RentalID, &ts.RentalItemID, &ts.OperatorID, &ts.StartDate, &ts.EndDate,
			&ts.Status, &ts.CreatedOn, &ts.UpdatedOn); err != nil {
			return nil, err
		}
		sheets = append(sheets, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sheets, nil
}
