package service

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/erpnext"
	"equiprent-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// fakeStore satisfies repository.Store over mocked repositories. ExecTx
// runs the callback against the same registry, so transactional code
// paths are exercised without a database.
type fakeStore struct {
	registry repository.Registry
}

func (s *fakeStore) Repos() repository.Registry {
	return s.registry
}

func (s *fakeStore) ExecTx(ctx context.Context, fn func(repository.Registry) error) error {
	return fn(s.registry)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepo) SoftDelete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByStatus(ctx context.Context, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) ListActivePastEndDate(ctx context.Context, asOf string) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListWithFilters(ctx context.Context, filter repository.RentalFilter) ([]domain.RentalSummary, int32, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.RentalSummary), args.Get(1).(int32), args.Error(2)
}

// MockRentalItemRepo
type MockRentalItemRepo struct {
	mock.Mock
}

func (m *MockRentalItemRepo) Create(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalItemRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}

// MockQuotationRepo
type MockQuotationRepo struct {
	mock.Mock
}

func (m *MockQuotationRepo) Create(ctx context.Context, q *domain.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *MockQuotationRepo) GetByID(ctx context.Context, id int32) (*domain.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationRepo) GetByRentalID(ctx context.Context, rentalID int32) (*domain.Quotation, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationRepo) Update(ctx context.Context, q *domain.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *MockQuotationRepo) CreateItem(ctx context.Context, item *domain.QuotationItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockQuotationRepo) ListItems(ctx context.Context, quotationID int32) ([]domain.QuotationItem, error) {
	args := m.Called(ctx, quotationID)
	return args.Get(0).([]domain.QuotationItem), args.Error(1)
}
func (m *MockQuotationRepo) AppendHistory(ctx context.Context, h *domain.QuotationHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockQuotationRepo) ListHistory(ctx context.Context, quotationID int32) ([]domain.QuotationHistory, error) {
	args := m.Called(ctx, quotationID)
	return args.Get(0).([]domain.QuotationHistory), args.Error(1)
}
func (m *MockQuotationRepo) ListExpiredPending(ctx context.Context, asOf string) ([]domain.Quotation, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Quotation), args.Error(1)
}

// MockStatusLogRepo
type MockStatusLogRepo struct {
	mock.Mock
}

func (m *MockStatusLogRepo) Create(ctx context.Context, log *domain.StatusLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
func (m *MockStatusLogRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.StatusLog, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.StatusLog), args.Error(1)
}

// MockExtensionRepo
type MockExtensionRepo struct {
	mock.Mock
}

func (m *MockExtensionRepo) Create(ctx context.Context, req *domain.ExtensionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockExtensionRepo) GetByID(ctx context.Context, id int32) (*domain.ExtensionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtensionRequest), args.Error(1)
}
func (m *MockExtensionRepo) Update(ctx context.Context, req *domain.ExtensionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockExtensionRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.ExtensionRequest, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.ExtensionRequest), args.Error(1)
}

// MockTimesheetRepo
type MockTimesheetRepo struct {
	mock.Mock
}

func (m *MockTimesheetRepo) Create(ctx context.Context, ts *domain.Timesheet) error {
	args := m.Called(ctx, ts)
	return args.Error(0)
}
func (m *MockTimesheetRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.Timesheet, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByStatus(ctx context.Context, status domain.PaymentStatus, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}
func (m *MockCustomerRepo) SetERPNextID(ctx context.Context, id int32, erpnextID string) error {
	args := m.Called(ctx, id, erpnextID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuotationIssued(customer *domain.Customer, q *domain.Quotation) error {
	args := m.Called(customer, q)
	return args.Error(0)
}
func (m *MockEmailService) SendQuotationApproved(customer *domain.Customer, q *domain.Quotation) error {
	args := m.Called(customer, q)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalStarted(customer *domain.Customer, rental *domain.Rental) error {
	args := m.Called(customer, rental)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCompleted(customer *domain.Customer, rental *domain.Rental) error {
	args := m.Called(customer, rental)
	return args.Error(0)
}
func (m *MockEmailService) SendExtensionRequested(customer *domain.Customer, rental *domain.Rental, req *domain.ExtensionRequest) error {
	args := m.Called(customer, rental, req)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminder(customer *domain.Customer, rental *domain.Rental) error {
	args := m.Called(customer, rental)
	return args.Error(0)
}
func (m *MockEmailService) SendInvoiceCreated(customer *domain.Customer, rental *domain.Rental, invoiceID string) error {
	args := m.Called(customer, rental, invoiceID)
	return args.Error(0)
}

// MockERPClient
type MockERPClient struct {
	mock.Mock
}

func (m *MockERPClient) SyncCustomer(ctx context.Context, customer *domain.Customer) (string, error) {
	args := m.Called(ctx, customer)
	return args.String(0), args.Error(1)
}
func (m *MockERPClient) CreateSalesInvoice(ctx context.Context, invoice erpnext.SalesInvoice) (string, error) {
	args := m.Called(ctx, invoice)
	return args.String(0), args.Error(1)
}

// testEnv bundles one mocked registry and the services under test.
type testEnv struct {
	rentals    *MockRentalRepo
	items      *MockRentalItemRepo
	quotations *MockQuotationRepo
	statusLogs *MockStatusLogRepo
	extensions *MockExtensionRepo
	timesheets *MockTimesheetRepo
	payments   *MockPaymentRepo
	customers  *MockCustomerRepo
	email      *MockEmailService
	erp        *MockERPClient
	store      *fakeStore
}

func newTestEnv() *testEnv {
	env := &testEnv{
		rentals:    new(MockRentalRepo),
		items:      new(MockRentalItemRepo),
		quotations: new(MockQuotationRepo),
		statusLogs: new(MockStatusLogRepo),
		extensions: new(MockExtensionRepo),
		timesheets: new(MockTimesheetRepo),
		payments:   new(MockPaymentRepo),
		customers:  new(MockCustomerRepo),
		email:      new(MockEmailService),
		erp:        new(MockERPClient),
	}
	env.store = &fakeStore{registry: repository.Registry{
		Rentals:     env.rentals,
		RentalItems: env.items,
		Quotations:  env.quotations,
		StatusLogs:  env.statusLogs,
		Extensions:  env.extensions,
		Timesheets:  env.timesheets,
		Payments:    env.payments,
		Customers:   env.customers,
	}}
	return env
}
