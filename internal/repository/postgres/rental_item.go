package postgres

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type rentalItemRepository struct {
	db DBTX
}

func NewRentalItemRepository(db DBTX) repository.RentalItemRepository {
	return &rentalItemRepository{db: db}
}

func (r *rentalItemRepository) Create(ctx context.Context, item *domain.RentalItem) error {
	query := `INSERT INTO rental_items (rental_id, equipment_id, operator_id, rate_cents, rate_type, quantity,
	          total_amount_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ts := now()
	item.CreatedOn = ts
	item.UpdatedOn = ts
	return r.db.QueryRowContext(ctx, query,
		item.RentalID, item.EquipmentID, item.OperatorID, item.RateCents, item.RateType, item.Quantity,
		item.TotalAmountCents, ts, ts,
	).Scan(&item.ID)
}

func (r *rentalItemRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	query := `SELECT id, rental_id, equipment_id, operator_id, rate_cents, rate_type, quantity, total_amount_cents,
	          created_on, updated_on FROM rental_items WHERE rental_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		var it domain.RentalItem
		if err := rows.Scan(&it.ID, &it.RentalID, &it.EquipmentID, &it.OperatorID, &it.RateCents, &it.RateType,
			&it.Quantity, &it.TotalAmountCents, &it.CreatedOn, &it.UpdatedOn); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
