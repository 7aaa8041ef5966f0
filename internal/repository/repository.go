package repository

import (
	"context"
	"errors"

	"equiprent-backend/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// RentalFilter narrows and paginates rental listings.
type RentalFilter struct {
	CustomerID int32
	Status     domain.RentalStatus
	Page       int32
	PageSize   int32
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// SoftDelete stamps deleted_on; rentals are never removed.
	SoftDelete(ctx context.Context, id int32) error
	ListByStatus(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error)
	// ListActivePastEndDate returns ACTIVE rentals whose expected end
	// date is strictly before asOf (yyyy-mm-dd). Input for the overdue
	// sweep.
	ListActivePastEndDate(ctx context.Context, asOf string) ([]domain.Rental, error)
	ListWithFilters(ctx context.Context, filter RentalFilter) ([]domain.RentalSummary, int32, error)
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error)
}

type QuotationRepository interface {
	Create(ctx context.Context, q *domain.Quotation) error
	GetByID(ctx context.Context, id int32) (*domain.Quotation, error)
	GetByRentalID(ctx context.Context, rentalID int32) (*domain.Quotation, error)
	Update(ctx context.Context, q *domain.Quotation) error
	CreateItem(ctx context.Context, item *domain.QuotationItem) error
	ListItems(ctx context.Context, quotationID int32) ([]domain.QuotationItem, error)
	AppendHistory(ctx context.Context, h *domain.QuotationHistory) error
	ListHistory(ctx context.Context, quotationID int32) ([]domain.QuotationHistory, error)
	// ListExpiredPending returns PENDING quotations whose validity window
	// closed before asOf (yyyy-mm-dd).
	ListExpiredPending(ctx context.Context, asOf string) ([]domain.Quotation, error)
}

type StatusLogRepository interface {
	Create(ctx context.Context, log *domain.StatusLog) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.StatusLog, error)
}

type ExtensionRequestRepository interface {
	Create(ctx context.Context, req *domain.ExtensionRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ExtensionRequest, error)
	Update(ctx context.Context, req *domain.ExtensionRequest) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.ExtensionRequest, error)
}

type TimesheetRepository interface {
	Create(ctx context.Context, ts *domain.Timesheet) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Timesheet, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus, page, pageSize int32) ([]domain.Payment, int32, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
	SetERPNextID(ctx context.Context, id int32, erpnextID string) error
}

// Registry bundles the repositories that participate in one logical
// store. Inside ExecTx every repository in the registry shares the same
// database transaction.
type Registry struct {
	Rentals     RentalRepository
	RentalItems RentalItemRepository
	Quotations  QuotationRepository
	StatusLogs  StatusLogRepository
	Extensions  ExtensionRequestRepository
	Timesheets  TimesheetRepository
	Payments    PaymentRepository
	Customers   CustomerRepository
}

// Store is the persistence entry point held by services.
type Store interface {
	Repos() Registry
	// ExecTx runs fn inside a single database transaction; any error
	// rolls back every write fn performed.
	ExecTx(ctx context.Context, fn func(Registry) error) error
}
