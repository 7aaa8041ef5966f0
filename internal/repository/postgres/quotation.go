package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type quotationRepository struct {
	db DBTX
}

func NewQuotationRepository(db DBTX) repository.QuotationRepository {
	return &quotationRepository{db: db}
}

const quotationColumns = `id, rental_id, quotation_number, status, subtotal_cents, tax_rate, tax_amount_cents,
	discount_percent, discount_amount_cents, total_amount_cents, valid_until, approved_by, approved_on,
	created_on, updated_on`

func (r *quotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	query := `INSERT INTO quotations (rental_id, quotation_number, status, subtotal_cents, tax_rate, tax_amount_cents,
	          discount_percent, discount_amount_cents, total_amount_cents, valid_until, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	ts := now()
	q.CreatedOn = ts
	q.UpdatedOn = ts
	return r.db.QueryRowContext(ctx, query,
		q.RentalID, q.QuotationNumber, q.Status, q.SubtotalCents, q.TaxRate, q.TaxAmountCents,
		q.DiscountPercent, q.DiscountAmountCents, q.TotalAmountCents, q.ValidUntil, ts, ts,
	).Scan(&q.ID)
}

func (r *quotationRepository) GetByID(ctx context.Context, id int32) (*domain.Quotation, error) {
	return r.getOne(ctx, `SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id)
}

func (r *quotationRepository) GetByRentalID(ctx context.Context, rentalID int32) (*domain.Quotation, error) {
	return r.getOne(ctx, `SELECT `+quotationColumns+` FROM quotations WHERE rental_id = $1`, rentalID)
}

func (r *quotationRepository) getOne(ctx context.Context, query string, arg any) (*domain.Quotation, error) {
	q := &domain.Quotation{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&q.ID, &q.RentalID, &q.QuotationNumber, &q.Status, &q.SubtotalCents, &q.TaxRate, &q.TaxAmountCents,
		&q.DiscountPercent, &q.DiscountAmountCents, &q.TotalAmountCents, &q.ValidUntil, &q.ApprovedBy, &q.ApprovedOn,
		&q.CreatedOn, &q.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *quotationRepository) Update(ctx context.Context, q *domain.Quotation) error {
	query := `UPDATE quotations SET status=$1, approved_by=$2, approved_on=$3, updated_on=$4 WHERE id=$5`
	q.UpdatedOn = now()
	res, err := r.db.ExecContext(ctx, query, q.Status, q.ApprovedBy, q.ApprovedOn, q.UpdatedOn, q.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *quotationRepository) CreateItem(ctx context.Context, item *domain.QuotationItem) error {
	query := `INSERT INTO quotation_items (quotation_id, equipment_id, operator_id, rate_cents, rate_type, quantity, total_amount_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		item.QuotationID, item.EquipmentID, item.OperatorID, item.RateCents, item.RateType, item.Quantity, item.TotalAmountCents,
	).Scan(&item.ID)
}

func (r *quotationRepository) ListItems(ctx context.Context, quotationID int32) ([]domain.QuotationItem, error) {
	query := `SELECT id, quotation_id, equipment_id, operator_id, rate_cents, rate_type, quantity, total_amount_cents
	          FROM quotation_items WHERE quotation_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, quotationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.QuotationItem
	for rows.Next() {
		var it domain.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.EquipmentID, &it.OperatorID, &it.RateCents, &it.RateType,
			&it.Quantity, &it.TotalAmountCents); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *quotationRepository) AppendHistory(ctx context.Context, h *domain.QuotationHistory) error {
	query := `INSERT INTO quotation_history (quotation_id, from_status, to_status, actor_id, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	h.CreatedOn = now()
	return r.db.QueryRowContext(ctx, query,
		h.QuotationID, h.FromStatus, h.ToStatus, h.ActorID, h.Notes, h.CreatedOn,
	).Scan(&h.ID)
}

func (r *quotationRepository) ListHistory(ctx context.Context, quotationID int32) ([]domain.QuotationHistory, error) {
	query := `SELECT id, quotation_id, from_status, to_status, actor_id, notes, created_on
	          FROM quotation_history WHERE quotation_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, quotationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.QuotationHistory
	for rows.Next() {
		var h domain.QuotationHistory
		if err := rows.Scan(&h.ID, &h.QuotationID, &h.FromStatus, &h.ToStatus, &h.ActorID, &h.Notes, &h.CreatedOn); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *quotationRepository) ListExpiredPending(ctx context.Context, asOf string) ([]domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE status = $1 AND valid_until < $2 ORDER BY valid_until ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.QuotationStatusPending, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []domain.Quotation
	for rows.Next() {
		var q domain.Quotation
		if err := rows.Scan(
			&q.ID, &q.RentalID, &q.QuotationNumber, &q.Status, &q.SubtotalCents, &q.TaxRate, &q.TaxAmountCents,
			&q.DiscountPercent, &q.DiscountAmountCents, &q.TotalAmountCents, &q.ValidUntil, &q.ApprovedBy, &q.ApprovedOn,
			&q.CreatedOn, &q.UpdatedOn,
		); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return quotes, nil
}
