package domain

type RentalStatus string

const (
	RentalStatusPending               RentalStatus = "PENDING"
	RentalStatusQuotation             RentalStatus = "QUOTATION"
	RentalStatusQuotationApproved     RentalStatus = "QUOTATION_APPROVED"
	RentalStatusMobilization          RentalStatus = "MOBILIZATION"
	RentalStatusMobilizationCompleted RentalStatus = "MOBILIZATION_COMPLETED"
	RentalStatusActive                RentalStatus = "ACTIVE"
	RentalStatusExtensionRequested    RentalStatus = "EXTENSION_REQUESTED"
	RentalStatusOverdue               RentalStatus = "OVERDUE"
	RentalStatusCompleted             RentalStatus = "COMPLETED"
	RentalStatusCancelled             RentalStatus = "CANCELLED"
)

type RateType string

const (
	RateTypeDay   RateType = "DAY"
	RateTypeWeek  RateType = "WEEK"
	RateTypeMonth RateType = "MONTH"
)

type Rental struct {
	ID              int32        `json:"id"`
	CustomerID      int32        `json:"customer_id"`
	Status          RentalStatus `json:"status"`
	StartDate       string       `json:"start_date"`
	ExpectedEndDate string       `json:"expected_end_date"`
	ActualEndDate   *string      `json:"actual_end_date,omitempty"`
	OverdueDate     *string      `json:"overdue_date,omitempty"`
	// Financial snapshot. TaxRate is a fraction (0.15 = 15%);
	// DiscountPercent is a percentage (10 = 10%). The asymmetry is
	// inherited from the billing rules and preserved on purpose.
	TaxRate          float64 `json:"tax_rate"`
	DiscountPercent  float64 `json:"discount_percent"`
	TotalAmountCents int64   `json:"total_amount_cents"`
	InvoiceID        *string `json:"invoice_id,omitempty"`
	HasOperators     bool    `json:"has_operators"`
	HasTimesheet     bool    `json:"has_timesheet"`
	Notes            string  `json:"notes"`
	CreatedOn        string  `json:"created_on"`
	UpdatedOn        string  `json:"updated_on"`
	// Soft delete marker. Rentals are never hard-deleted so the audit
	// trail in status_logs stays resolvable.
	DeletedOn *string `json:"deleted_on,omitempty"`
}

type RentalItem struct {
	ID               int32    `json:"id"`
	RentalID         int32    `json:"rental_id"`
	EquipmentID      int32    `json:"equipment_id"`
	OperatorID       *int32   `json:"operator_id,omitempty"`
	RateCents        int64    `json:"rate_cents"`
	RateType         RateType `json:"rate_type"`
	Quantity         int32    `json:"quantity"`
	TotalAmountCents int64    `json:"total_amount_cents"`
	CreatedOn        string   `json:"created_on"`
	UpdatedOn        string   `json:"updated_on"`
}

// RentalSummary is the flat row shape returned by filtered listings for
// the presentation layer: rental columns joined with the customer name
// and an item count.
type RentalSummary struct {
	ID               int32        `json:"id"`
	CustomerID       int32        `json:"customer_id"`
	CustomerName     string       `json:"customer_name"`
	Status           RentalStatus `json:"status"`
	StartDate        string       `json:"start_date"`
	ExpectedEndDate  string       `json:"expected_end_date"`
	TotalAmountCents int64        `json:"total_amount_cents"`
	ItemCount        int32        `json:"item_count"`
}
