package postgres

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type statusLogRepository struct {
	db DBTX
}

func NewStatusLogRepository(db DBTX) repository.StatusLogRepository {
	return &statusLogRepository{db: db}
}

// Create appends one audit row. There is intentionally no Update or
// Delete on this repository.
func (r *statusLogRepository) Create(ctx context.Context, log *domain.StatusLog) error {
	query := `INSERT INTO status_logs (rental_id, from_status, to_status, actor_id, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	log.CreatedOn = now()
	return r.db.QueryRowContext(ctx, query,
		log.RentalID, log.FromStatus, log.ToStatus, log.ActorID, log.Notes, log.CreatedOn,
	).Scan(&log.ID)
}

func (r *statusLogRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.StatusLog, error) {
	query := `SELECT id, rental_id, from_status, to_status, actor_id, notes, created_on
	          FROM status_logs WHERE rental_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.StatusLog
	for rows.Next() {
		var l domain.StatusLog
		if err := rows.Scan(&l.ID, &l.RentalID, &l.FromStatus, &l.ToStatus, &l.ActorID, &l.Notes, &l.CreatedOn); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}
