package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type extensionRequestRepository struct {
	db DBTX
}

func NewExtensionRequestRepository(db DBTX) repository.ExtensionRequestRepository {
	return &extensionRequestRepository{db: db}
}

const extensionColumns = `id, rental_id, requested_by, current_end_date, requested_end_date, reason, status,
	decided_by, decided_on, created_on`

func (r *extensionRequestRepository) Create(ctx context.Context, req *domain.ExtensionRequest) error {
	query := `INSERT INTO extension_requests (rental_id, requested_by, current_end_date, requested_end_date, reason, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	req.CreatedOn = now()
	return r.db.QueryRowContext(ctx, query,
		req.RentalID, req.RequestedBy, req.CurrentEndDate, req.RequestedEndDate, req.Reason, req.Status, req.CreatedOn,
	).Scan(&req.ID)
}

func (r *extensionRequestRepository) GetByID(ctx context.Context, id int32) (*domain.ExtensionRequest, error) {
	req := &domain.ExtensionRequest{}
	query := `SELECT ` + extensionColumns + ` FROM extension_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.RentalID, &req.RequestedBy, &req.CurrentEndDate, &req.RequestedEndDate, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedOn, &req.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *extensionRequestRepository) Update(ctx context.Context, req *domain.ExtensionRequest) error {
	query := `UPDATE extension_requests SET status=$1, decided_by=$2, decided_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, req.Status, req.DecidedBy, req.DecidedOn, req.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *extensionRequestRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.ExtensionRequest, error) {
	query := `SELECT ` + extensionColumns + ` FROM extension_requests WHERE rental_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ExtensionRequest
	for rows.Next() {
		var req domain.ExtensionRequest
		if err := rows.Scan(&req.ID, &req.RentalID, &req.RequestedBy, &req.CurrentEndDate, &req.RequestedEndDate,
			&req.Reason, &req.Status, &req.DecidedBy, &req.DecidedOn, &req.CreatedOn); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reqs, nil
}
