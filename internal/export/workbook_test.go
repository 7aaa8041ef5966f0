package export

import (
	"bytes"
	"testing"

	"equiprent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteQuotationWorkbook(t *testing.T) {
	q := &domain.Quotation{
		ID:                  5,
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
	items := []domain.QuotationItem{
		{EquipmentID: 1, RateCents: 50000, RateType: domain.RateTypeDay, Quantity: 1, TotalAmountCents: 50000},
		{EquipmentID: 2, RateCents: 30000, RateType: domain.RateTypeDay, Quantity: 1, TotalAmountCents: 30000},
	}
	customer := &domain.Customer{ID: 7, Name: "Acme Construction"}

	var buf bytes.Buffer
	require.NoError(t, WriteQuotationWorkbook(&buf, q, items, customer))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	number, err := f.GetCellValue("Quotation", "B2")
	require.NoError(t, err)
	assert.Equal(t, "QT-20260301-abc12345", number)

	name, err := f.GetCellValue("Quotation", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Acme Construction", name)

	// Two item rows follow the header at row 7, footer starts after a
	// blank row: subtotal 11, tax 12, discount 13, total 14.
	total, err := f.GetCellValue("Quotation", "B14")
	require.NoError(t, err)
	assert.Equal(t, "840.00", total)
}

func TestWriteSettlementWorkbook(t *testing.T) {
	invoiceID := "SINV-0001"
	actualEnd := "2026-04-02"
	rental := &domain.Rental{
		ID:               1,
		CustomerID:       7,
		Status:           domain.RentalStatusCompleted,
		StartDate:        "2026-03-01",
		ExpectedEndDate:  "2026-03-31",
		ActualEndDate:    &actualEnd,
		TotalAmountCents: 84000,
		InvoiceID:        &invoiceID,
	}
	items := []domain.RentalItem{
		{EquipmentID: 1, RateCents: 50000, RateType: domain.RateTypeDay, Quantity: 1, TotalAmountCents: 50000},
	}
	payments := []domain.Payment{
		{RentalID: 1, AmountCents: 50000, Status: domain.PaymentStatusConfirmed},
		{RentalID: 1, AmountCents: 34000, Status: domain.PaymentStatusPending},
	}
	customer := &domain.Customer{ID: 7, Name: "Acme Construction"}

	var buf bytes.Buffer
	require.NoError(t, WriteSettlementWorkbook(&buf, rental, items, payments, customer))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	period, err := f.GetCellValue("Settlement", "B4")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01 to 2026-04-02", period)

	invoice, err := f.GetCellValue("Settlement", "B5")
	require.NoError(t, err)
	assert.Equal(t, "SINV-0001", invoice)

	// One item row at 8; total at 10, confirmed payments at 11,
	// balance at 12. Pending payments do not count as received.
	paid, err := f.GetCellValue("Settlement", "B11")
	require.NoError(t, err)
	assert.Equal(t, "500.00", paid)

	balance, err := f.GetCellValue("Settlement", "B12")
	require.NoError(t, err)
	assert.Equal(t, "340.00", balance)
}
