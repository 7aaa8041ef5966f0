package service

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/erpnext"
	"equiprent-backend/internal/repository"
)

// CreateRentalItem is one requested line item on a new rental.
type CreateRentalItem struct {
	EquipmentID int32           `json:"equipment_id"`
	OperatorID  *int32          `json:"operator_id,omitempty"`
	RateCents   int64           `json:"rate_cents"`
	RateType    domain.RateType `json:"rate_type"`
	Quantity    int32           `json:"quantity"`
}

// CreateRentalRequest carries everything needed to open a rental in
// PENDING status.
type CreateRentalRequest struct {
	CustomerID      int32              `json:"customer_id"`
	StartDate       string             `json:"start_date"`
	ExpectedEndDate string             `json:"expected_end_date"`
	TaxRate         *float64           `json:"tax_rate,omitempty"`
	DiscountPercent *float64           `json:"discount_percent,omitempty"`
	HasOperators    bool               `json:"has_operators"`
	HasTimesheet    bool               `json:"has_timesheet"`
	Notes           string             `json:"notes"`
	Items           []CreateRentalItem `json:"items"`
}

// RentalService drives the rental lifecycle. Every status change goes
// through a single transition path that validates against the allowed
// transition graph and writes exactly one status log row.
type RentalService interface {
	CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, []domain.RentalItem, error)
	ListRentals(ctx context.Context, filter repository.RentalFilter) ([]domain.RentalSummary, int32, error)
	DeleteRental(ctx context.Context, id int32) error
	GetStatusLogs(ctx context.Context, rentalID int32) ([]domain.StatusLog, error)

	GenerateQuotation(ctx context.Context, rentalID int32, actorID *int32) (*domain.Quotation, error)
	GetQuotation(ctx context.Context, rentalID int32) (*domain.Quotation, []domain.QuotationItem, error)
	ApproveQuotation(ctx context.Context, rentalID int32, actorID *int32) error

	BeginMobilization(ctx context.Context, rentalID int32, actorID *int32) error
	CompleteMobilization(ctx context.Context, rentalID int32, actorID *int32) error
	StartRental(ctx context.Context, rentalID int32, actorID *int32) error
	CompleteRental(ctx context.Context, rentalID int32, actorID *int32) error
	CancelRental(ctx context.Context, rentalID int32, actorID *int32, reason string) error

	RequestExtension(ctx context.Context, rentalID int32, requestedBy int32, requestedEndDate, reason string) (*domain.ExtensionRequest, error)
	DecideExtension(ctx context.Context, requestID int32, approve bool, actorID *int32) error

	// CheckOverdue inspects a single rental and marks it OVERDUE when
	// its expected end date has passed. Safe to call repeatedly.
	CheckOverdue(ctx context.Context, rentalID int32) (bool, error)
	// MarkOverdue sweeps every ACTIVE rental past its end date and
	// returns the number marked.
	MarkOverdue(ctx context.Context) (int, error)
	// ExpireQuotations marks pending quotations past their validity
	// window EXPIRED and returns the number expired.
	ExpireQuotations(ctx context.Context) (int, error)

	CreateInvoice(ctx context.Context, rentalID int32, actorID *int32) (string, error)
}

// CustomerService manages customers and their ERP mirror documents.
type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
	// SyncToERP pushes the customer to ERPNext and records the remote
	// document name. Idempotent once the id is recorded.
	SyncToERP(ctx context.Context, customerID int32) (string, error)
}

// PaymentService records and confirms payments against rentals.
type PaymentService interface {
	RecordPayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ConfirmPayment(ctx context.Context, paymentID int32) error
	FailPayment(ctx context.Context, paymentID int32) error
	ListPayments(ctx context.Context, rentalID int32) ([]domain.Payment, error)
}

// EmailService sends lifecycle notifications. Delivery is asynchronous
// and best-effort; failures never roll back the triggering operation.
type EmailService interface {
	SendQuotationIssued(customer *domain.Customer, q *domain.Quotation) error
	SendQuotationApproved(customer *domain.Customer, q *domain.Quotation) error
	SendRentalStarted(customer *domain.Customer, rental *domain.Rental) error
	SendRentalCompleted(customer *domain.Customer, rental *domain.Rental) error
	SendExtensionRequested(customer *domain.Customer, rental *domain.Rental, req *domain.ExtensionRequest) error
	SendOverdueReminder(customer *domain.Customer, rental *domain.Rental) error
	SendInvoiceCreated(customer *domain.Customer, rental *domain.Rental, invoiceID string) error
}

// ERPClient abstracts the ERPNext integration so services can be tested
// without a live instance.
type ERPClient interface {
	SyncCustomer(ctx context.Context, customer *domain.Customer) (string, error)
	CreateSalesInvoice(ctx context.Context, invoice erpnext.SalesInvoice) (string, error)
}
