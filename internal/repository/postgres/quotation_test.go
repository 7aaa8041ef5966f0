package postgres

import (
	"context"
	"fmt"
	"testing"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var quotationRowColumns = []string{
	"id", "rental_id", "quotation_number", "status", "subtotal_cents", "tax_rate", "tax_amount_cents",
	"discount_percent", "discount_amount_cents", "total_amount_cents", "valid_until", "approved_by", "approved_on",
	"created_on", "updated_on",
}

func TestQuotationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewQuotationRepository(db)
	ctx := context.Background()

	q := &domain.Quotation{
		RentalID:            1,
		QuotationNumber:     "QT-20260301-abc12345",
		Status:              domain.QuotationStatusPending,
		SubtotalCents:       80000,
		TaxRate:             0.15,
		TaxAmountCents:      12000,
		DiscountPercent:     10,
		DiscountAmountCents: 8000,
		TotalAmountCents:    84000,
		ValidUntil:          "2026-03-31",
	}

	mock.ExpectQuery("INSERT INTO quotations").
		WithArgs(q.RentalID, q.QuotationNumber, q.Status, q.SubtotalCents, q.TaxRate, q.TaxAmountCents,
			q.DiscountPercent, q.DiscountAmountCents, q.TotalAmountCents, q.ValidUntil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(ctx, q)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), q.ID)
}

func TestQuotationRepository_GetByRentalID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewQuotationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(quotationRowColumns).
			AddRow(5, 1, "QT-20260301-abc12345", "PENDING", 80000, 0.15, 12000,
				10.0, 8000, 84000, "2026-03-31", nil, nil,
				"2026-03-01T00:00:00Z", "2026-03-01T00:00:00Z")

		mock.ExpectQuery("SELECT (.+) FROM quotations WHERE rental_id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		q, err := repo.GetByRentalID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, q)
		assert.Equal(t, int64(84000), q.TotalAmountCents)
		assert.Equal(t, domain.QuotationStatusPending, q.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM quotations WHERE rental_id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows(quotationRowColumns))

		q, err := repo.GetByRentalID(ctx, 2)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, q)
	})
}

func TestQuotationRepository_AppendHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewQuotationRepository(db)
	ctx := context.Background()

	actor := int32(3)
	h := &domain.QuotationHistory{
		QuotationID: 5,
		FromStatus:  domain.QuotationStatusPending,
		ToStatus:    domain.QuotationStatusApproved,
		ActorID:     &actor,
	}

	mock.ExpectQuery("INSERT INTO quotation_history").
		WithArgs(h.QuotationID, h.FromStatus, h.ToStatus, h.ActorID, h.Notes, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.AppendHistory(ctx, h)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), h.ID)
}

func TestQuotationRepository_ListExpiredPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewQuotationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(quotationRowColumns).
		AddRow(5, 1, "QT-1", "PENDING", 80000, 0.15, 12000, 10.0, 8000, 84000, "2026-01-01", nil, nil,
			"2025-12-01T00:00:00Z", "2025-12-01T00:00:00Z")

	mock.ExpectQuery("SELECT (.+) FROM quotations WHERE status = \\$1 AND valid_until < \\$2").
		WithArgs(domain.QuotationStatusPending, "2026-02-01").
		WillReturnRows(rows)

	quotes, err := repo.ListExpiredPending(ctx, "2026-02-01")
	assert.NoError(t, err)
	assert.Len(t, quotes, 1)
	assert.Equal(t, "QT-1", quotes[0].QuotationNumber)
}

func TestStore_ExecTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	store := NewStore(db)
	ctx := context.Background()

	t.Run("Commit on success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO status_logs").
			WithArgs(int32(1), domain.RentalStatusPending, domain.RentalStatusQuotation, nil, "", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := store.ExecTx(ctx, func(repos repository.Registry) error {
			return repos.StatusLogs.Create(ctx, &domain.StatusLog{
				RentalID:   1,
				FromStatus: domain.RentalStatusPending,
				ToStatus:   domain.RentalStatusQuotation,
			})
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		wantErr := fmt.Errorf("boom")
		err := store.ExecTx(ctx, func(repos repository.Registry) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
