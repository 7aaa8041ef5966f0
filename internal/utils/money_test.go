package utils

import (
	"testing"

	"equiprent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2026-03-01")
	assert.NoError(t, err)

	_, err = ParseDate("01/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-02-30")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, 1))
	assert.Equal(t, 28, DaysInMonth(2026, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2))
	assert.Equal(t, 29, DaysInMonth(2000, 2))
	assert.Equal(t, 30, DaysInMonth(2026, 4))
}

func TestSpanBetween(t *testing.T) {
	t.Run("Same day", func(t *testing.T) {
		span, err := SpanBetween("2026-03-01", "2026-03-01")
		assert.NoError(t, err)
		assert.Equal(t, DateSpan{Months: 0, Days: 1}, span)
	})

	t.Run("Full month", func(t *testing.T) {
		span, err := SpanBetween("2026-03-01", "2026-03-31")
		assert.NoError(t, err)
		assert.Equal(t, DateSpan{Months: 1, Days: 0}, span)
	})

	t.Run("Month and residual days", func(t *testing.T) {
		span, err := SpanBetween("2026-03-01", "2026-04-10")
		assert.NoError(t, err)
		assert.Equal(t, DateSpan{Months: 1, Days: 10}, span)
	})

	t.Run("Borrow from previous month", func(t *testing.T) {
		span, err := SpanBetween("2026-01-20", "2026-03-10")
		assert.NoError(t, err)
		// Jan 20 to Feb 19 is one month, Feb 20 to Mar 10 is 19 days.
		assert.Equal(t, DateSpan{Months: 1, Days: 19}, span)
	})

	t.Run("Across years", func(t *testing.T) {
		span, err := SpanBetween("2025-11-01", "2026-01-31")
		assert.NoError(t, err)
		assert.Equal(t, DateSpan{Months: 3, Days: 0}, span)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := SpanBetween("2026-03-10", "2026-03-01")
		assert.Error(t, err)
	})
}

func TestInclusiveDays(t *testing.T) {
	days, err := InclusiveDays("2026-03-01", "2026-03-01")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), days)

	days, err = InclusiveDays("2026-03-01", "2026-03-07")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), days)

	_, err = InclusiveDays("2026-03-07", "2026-03-01")
	assert.Error(t, err)
}

func TestChargeUnits(t *testing.T) {
	t.Run("Day", func(t *testing.T) {
		units, err := ChargeUnits(domain.RateTypeDay, "2026-03-01", "2026-03-05")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), units)
	})

	t.Run("Week rounds up", func(t *testing.T) {
		units, err := ChargeUnits(domain.RateTypeWeek, "2026-03-01", "2026-03-07")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), units)

		units, err = ChargeUnits(domain.RateTypeWeek, "2026-03-01", "2026-03-08")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), units)
	})

	t.Run("Month rounds up with minimum one", func(t *testing.T) {
		units, err := ChargeUnits(domain.RateTypeMonth, "2026-03-01", "2026-03-10")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), units)

		units, err = ChargeUnits(domain.RateTypeMonth, "2026-03-01", "2026-04-15")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), units)

		units, err = ChargeUnits(domain.RateTypeMonth, "2026-03-01", "2026-03-31")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), units)
	})

	t.Run("Unknown rate type", func(t *testing.T) {
		_, err := ChargeUnits(domain.RateType("HOUR"), "2026-03-01", "2026-03-05")
		assert.Error(t, err)
	})
}

func TestItemTotalCents(t *testing.T) {
	total, err := ItemTotalCents(1000, domain.RateTypeDay, 2, "2026-03-01", "2026-03-05")
	assert.NoError(t, err)
	assert.Equal(t, int64(10000), total) // 1000 * 5 days * 2

	_, err = ItemTotalCents(1000, domain.RateTypeDay, 0, "2026-03-01", "2026-03-05")
	assert.Error(t, err)
}

func TestComputeQuoteTotals(t *testing.T) {
	t.Run("Standard breakdown", func(t *testing.T) {
		// 800.00 subtotal, 15% tax as a fraction, 10% discount as a
		// percentage: 800 + 120 - 80 = 840.
		totals := ComputeQuoteTotals(80000, 0.15, 10)
		assert.Equal(t, int64(80000), totals.SubtotalCents)
		assert.Equal(t, int64(12000), totals.TaxCents)
		assert.Equal(t, int64(8000), totals.DiscountCents)
		assert.Equal(t, int64(84000), totals.TotalCents)
	})

	t.Run("Zero rates", func(t *testing.T) {
		totals := ComputeQuoteTotals(50000, 0, 0)
		assert.Equal(t, int64(50000), totals.TotalCents)
		assert.Equal(t, int64(0), totals.TaxCents)
		assert.Equal(t, int64(0), totals.DiscountCents)
	})

	t.Run("Rounding half up", func(t *testing.T) {
		totals := ComputeQuoteTotals(333, 0.15, 0)
		// 333 * 0.15 = 49.95, rounds to 50.
		assert.Equal(t, int64(50), totals.TaxCents)
		assert.Equal(t, totals.SubtotalCents+totals.TaxCents-totals.DiscountCents, totals.TotalCents)
	})
}
