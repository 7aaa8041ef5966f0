package export

import (
	"fmt"
	"io"

	"equiprent-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

// WriteQuotationWorkbook renders a quotation as a spreadsheet: header
// block, item table, financial footer. The caller owns the writer.
func WriteQuotationWorkbook(w io.Writer, q *domain.Quotation, items []domain.QuotationItem, customer *domain.Customer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Quotation"
	f.SetSheetName(f.GetSheetName(0), sheet)

	setCell(f, sheet, "A1", "Quotation")
	setCell(f, sheet, "A2", "Number")
	setCell(f, sheet, "B2", q.QuotationNumber)
	setCell(f, sheet, "A3", "Customer")
	setCell(f, sheet, "B3", customer.Name)
	setCell(f, sheet, "A4", "Valid until")
	setCell(f, sheet, "B4", q.ValidUntil)
	setCell(f, sheet, "A5", "Status")
	setCell(f, sheet, "B5", string(q.Status))

	headerRow := 7
	writeItemHeader(f, sheet, headerRow)
	row := headerRow + 1
	for _, it := range items {
		writeItemRow(f, sheet, row, it.EquipmentID, string(it.RateType), it.RateCents, it.Quantity, it.TotalAmountCents)
		row++
	}

	row++
	setCell(f, sheet, cell("A", row), "Subtotal")
	setCell(f, sheet, cell("B", row), money(q.SubtotalCents))
	row++
	setCell(f, sheet, cell("A", row), fmt.Sprintf("Tax (%.0f%%)", q.TaxRate*100))
	setCell(f, sheet, cell("B", row), money(q.TaxAmountCents))
	row++
	setCell(f, sheet, cell("A", row), fmt.Sprintf("Discount (%.0f%%)", q.DiscountPercent))
	setCell(f, sheet, cell("B", row), money(q.DiscountAmountCents))
	row++
	setCell(f, sheet, cell("A", row), "Total")
	setCell(f, sheet, cell("B", row), money(q.TotalAmountCents))

	return f.Write(w)
}

// WriteSettlementWorkbook renders the closeout statement for a rental:
// line items, payments received, and the outstanding balance.
func WriteSettlementWorkbook(w io.Writer, rt *domain.Rental, items []domain.RentalItem, payments []domain.Payment, customer *domain.Customer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Settlement"
	f.SetSheetName(f.GetSheetName(0), sheet)

	setCell(f, sheet, "A1", "Settlement Statement")
	setCell(f, sheet, "A2", "Rental")
	setCell(f, sheet, "B2", fmt.Sprintf("%d", rt.ID))
	setCell(f, sheet, "A3", "Customer")
	setCell(f, sheet, "B3", customer.Name)
	setCell(f, sheet, "A4", "Period")
	endDate := rt.ExpectedEndDate
	if rt.ActualEndDate != nil {
		endDate = *rt.ActualEndDate
	}
	setCell(f, sheet, "B4", fmt.Sprintf("%s to %s", rt.StartDate, endDate))
	if rt.InvoiceID != nil {
		setCell(f, sheet, "A5", "Invoice")
		setCell(f, sheet, "B5", *rt.InvoiceID)
	}

	headerRow := 7
	writeItemHeader(f, sheet, headerRow)
	row := headerRow + 1
	for _, it := range items {
		writeItemRow(f, sheet, row, it.EquipmentID, string(it.RateType), it.RateCents, it.Quantity, it.TotalAmountCents)
		row++
	}

	row++
	setCell(f, sheet, cell("A", row), "Total amount")
	setCell(f, sheet, cell("B", row), money(rt.TotalAmountCents))

	var paid int64
	for _, p := range payments {
		if p.Status == domain.PaymentStatusConfirmed {
			paid += p.AmountCents
		}
	}
	row++
	setCell(f, sheet, cell("A", row), "Payments received")
	setCell(f, sheet, cell("B", row), money(paid))
	row++
	setCell(f, sheet, cell("A", row), "Balance due")
	setCell(f, sheet, cell("B", row), money(rt.TotalAmountCents-paid))

	return f.Write(w)
}

func writeItemHeader(f *excelize.File, sheet string, row int) {
	setCell(f, sheet, cell("A", row), "Equipment")
	setCell(f, sheet, cell("B", row), "Rate type")
	setCell(f, sheet, cell("C", row), "Rate")
	setCell(f, sheet, cell("D", row), "Qty")
	setCell(f, sheet, cell("E", row), "Amount")
}

func writeItemRow(f *excelize.File, sheet string, row int, equipmentID int32, rateType string, rateCents int64, qty int32, totalCents int64) {
	setCell(f, sheet, cell("A", row), fmt.Sprintf("EQ-%d", equipmentID))
	setCell(f, sheet, cell("B", row), rateType)
	setCell(f, sheet, cell("C", row), money(rateCents))
	setCell(f, sheet, cell("D", row), fmt.Sprintf("%d", qty))
	setCell(f, sheet, cell("E", row), money(totalCents))
}

func setCell(f *excelize.File, sheet, ref string, value any) {
	// SetCellValue only fails on malformed references, which are all
	// generated here.
	_ = f.SetCellValue(sheet, ref, value)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func money(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
