package domain

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "PENDING"
	QuotationStatusApproved QuotationStatus = "APPROVED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
	QuotationStatusExpired  QuotationStatus = "EXPIRED"
)

// Quotation is the priced proposal generated from a rental's line items.
// A rental has at most one quotation; generation is idempotent.
type Quotation struct {
	ID                  int32           `json:"id"`
	RentalID            int32           `json:"rental_id"`
	QuotationNumber     string          `json:"quotation_number"`
	Status              QuotationStatus `json:"status"`
	SubtotalCents       int64           `json:"subtotal_cents"`
	TaxRate             float64         `json:"tax_rate"`
	TaxAmountCents      int64           `json:"tax_amount_cents"`
	DiscountPercent     float64         `json:"discount_percent"`
	DiscountAmountCents int64           `json:"discount_amount_cents"`
	TotalAmountCents    int64           `json:"total_amount_cents"`
	ValidUntil          string          `json:"valid_until"`
	ApprovedBy          *int32          `json:"approved_by,omitempty"`
	ApprovedOn          *string         `json:"approved_on,omitempty"`
	CreatedOn           string          `json:"created_on"`
	UpdatedOn           string          `json:"updated_on"`
}

// QuotationItem mirrors a rental item at quotation time so later edits to
// the rental do not rewrite an issued quotation.
type QuotationItem struct {
	ID               int32    `json:"id"`
	QuotationID      int32    `json:"quotation_id"`
	EquipmentID      int32    `json:"equipment_id"`
	OperatorID       *int32   `json:"operator_id,omitempty"`
	RateCents        int64    `json:"rate_cents"`
	RateType         RateType `json:"rate_type"`
	Quantity         int32    `json:"quantity"`
	TotalAmountCents int64    `json:"total_amount_cents"`
}

// QuotationHistory is an append-only audit row for quotation status
// changes. Rows are never updated or deleted.
type QuotationHistory struct {
	ID          int32           `json:"id"`
	QuotationID int32           `json:"quotation_id"`
	FromStatus  QuotationStatus `json:"from_status"`
	ToStatus    QuotationStatus `json:"to_status"`
	ActorID     *int32          `json:"actor_id,omitempty"`
	Notes       string          `json:"notes"`
	CreatedOn   string          `json:"created_on"`
}
