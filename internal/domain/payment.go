package domain

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type Payment struct {
	ID          int32         `json:"id"`
	RentalID    int32         `json:"rental_id"`
	InvoiceID   *string       `json:"invoice_id,omitempty"`
	AmountCents int64         `json:"amount_cents"`
	Method      string        `json:"method"`
	Reference   string        `json:"reference"`
	Status      PaymentStatus `json:"status"`
	PaidOn      *string       `json:"paid_on,omitempty"`
	CreatedOn   string        `json:"created_on"`
	UpdatedOn   string        `json:"updated_on"`
}
