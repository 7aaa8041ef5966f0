package utils

import (
	"fmt"
	"math"
	"time"

	"equiprent-backend/internal/domain"
)

// DateSpan is the difference between two dates, inclusive of both ends,
// expressed as whole months plus residual days.
type DateSpan struct {
	Months int
	Days   int
}

// QuoteTotals is the financial breakdown of a quotation. All amounts are
// integer cents; derived amounts are rounded half-up independently, and
// TotalCents = SubtotalCents + TaxCents - DiscountCents by construction.
type QuoteTotals struct {
	SubtotalCents int64
	TaxCents      int64
	DiscountCents int64
	TotalCents    int64
}

const dateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return t, nil
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// SpanBetween computes the month/day span between two yyyy-mm-dd dates,
// counting both the start and the end date. Errors if end precedes start.
func SpanBetween(startDate, endDate string) (DateSpan, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return DateSpan{}, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return DateSpan{}, err
	}
	if end.Before(start) {
		return DateSpan{}, fmt.Errorf("end date %s precedes start date %s", endDate, startDate)
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day() + 1

	if days < 0 {
		months--
		prevYear, prevMonth := end.Year(), int(end.Month())-1
		if prevMonth < 1 {
			prevMonth = 12
			prevYear--
		}
		days += DaysInMonth(prevYear, prevMonth)
	}
	if months < 0 {
		years--
		months += 12
	}

	return DateSpan{Months: months + 12*years, Days: days}, nil
}

// InclusiveDays returns the total number of calendar days between two
// dates, counting both ends.
func InclusiveDays(startDate, endDate string) (int64, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	diff := int64(end.Sub(start).Hours() / 24)
	if diff < 0 {
		return 0, fmt.Errorf("end date %s precedes start date %s", endDate, startDate)
	}
	return diff + 1, nil
}

// ChargeUnits converts a rental period into billable units for a rate
// type: calendar days for DAY, weeks rounded up for WEEK, and months
// rounded up (minimum one) for MONTH.
func ChargeUnits(rateType domain.RateType, startDate, endDate string) (int64, error) {
	switch rateType {
	case domain.RateTypeDay:
		return InclusiveDays(startDate, endDate)
	case domain.RateTypeWeek:
		days, err := InclusiveDays(startDate, endDate)
		if err != nil {
			return 0, err
		}
		weeks := days / 7
		if days%7 > 0 {
			weeks++
		}
		return weeks, nil
	case domain.RateTypeMonth:
		span, err := SpanBetween(startDate, endDate)
		if err != nil {
			return 0, err
		}
		months := int64(span.Months)
		if span.Days > 0 {
			months++
		}
		if months < 1 {
			months = 1
		}
		return months, nil
	default:
		return 0, fmt.Errorf("unknown rate type %q", rateType)
	}
}

// ItemTotalCents prices one rental line item over the rental period.
func ItemTotalCents(rateCents int64, rateType domain.RateType, quantity int32, startDate, endDate string) (int64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	units, err := ChargeUnits(rateType, startDate, endDate)
	if err != nil {
		return 0, err
	}
	return rateCents * units * int64(quantity), nil
}

// ComputeQuoteTotals derives tax, discount and total from a subtotal.
// taxRate is a fraction (0.15 = 15%); discountPercent is a percentage
// (10 = 10%). The differing units mirror how the billing fields are
// stored on the rental.
func ComputeQuoteTotals(subtotalCents int64, taxRate, discountPercent float64) QuoteTotals {
	tax := roundCents(float64(subtotalCents) * taxRate)
	discount := roundCents(float64(subtotalCents) * discountPercent / 100)
	return QuoteTotals{
		SubtotalCents: subtotalCents,
		TaxCents:      tax,
		DiscountCents: discount,
		TotalCents:    subtotalCents + tax - discount,
	}
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
