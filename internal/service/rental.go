package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"equiprent-backend/internal/config"
	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/erpnext"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/utils"

	"github.com/google/uuid"
)

type rentalService struct {
	store   repository.Store
	email   EmailService
	erp     ERPClient
	billing config.BillingConfig
	log     interface {
		Info(msg string, args ...any)
		Warn(msg string, args ...any)
	}
}

// NewRentalService creates the rental lifecycle service. email and erp
// may not be nil; pass no-op implementations in tests.
func NewRentalService(store repository.Store, email EmailService, erp ERPClient, billing config.BillingConfig) RentalService {
	return &rentalService{
		store:   store,
		email:   email,
		erp:     erp,
		billing: billing,
		log:     logger.WithService("rental"),
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func todayDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

// transition is the single entry point for rental status changes. It
// validates the move against the transition table, persists the new
// status, and appends exactly one status log row.
func (s *rentalService) transition(ctx context.Context, repos repository.Registry, rt *domain.Rental, to domain.RentalStatus, actorID *int32, notes string) error {
	if !domain.CanTransition(rt.Status, to) {
		return fmt.Errorf("cannot transition rental %d from %s to %s", rt.ID, rt.Status, to)
	}

	from := rt.Status
	rt.Status = to
	if err := repos.Rentals.Update(ctx, rt); err != nil {
		return fmt.Errorf("failed to update rental %d: %w", rt.ID, err)
	}

	if err := repos.StatusLogs.Create(ctx, &domain.StatusLog{
		RentalID:   rt.ID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actorID,
		Notes:      notes,
	}); err != nil {
		return fmt.Errorf("failed to log status change for rental %d: %w", rt.ID, err)
	}

	s.log.Info("Rental status changed", "rental_id", rt.ID, "from", from, "to", to)
	return nil
}

func (s *rentalService) CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("rental requires at least one item")
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(req.ExpectedEndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("expected end date %s precedes start date %s", req.ExpectedEndDate, req.StartDate)
	}

	taxRate := s.billing.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	discountPercent := s.billing.DefaultDiscountPercent
	if req.DiscountPercent != nil {
		discountPercent = *req.DiscountPercent
	}

	// Price every line up front so an invalid item rejects the whole
	// request before anything is written.
	var subtotal int64
	itemTotals := make([]int64, len(req.Items))
	for i, it := range req.Items {
		total, err := utils.ItemTotalCents(it.RateCents, it.RateType, it.Quantity, req.StartDate, req.ExpectedEndDate)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		itemTotals[i] = total
		subtotal += total
	}
	totals := utils.ComputeQuoteTotals(subtotal, taxRate, discountPercent)

	rental := &domain.Rental{
		CustomerID:       req.CustomerID,
		Status:           domain.RentalStatusPending,
		StartDate:        req.StartDate,
		ExpectedEndDate:  req.ExpectedEndDate,
		TaxRate:          taxRate,
		DiscountPercent:  discountPercent,
		TotalAmountCents: totals.TotalCents,
		HasOperators:     req.HasOperators,
		HasTimesheet:     req.HasTimesheet,
		Notes:            req.Notes,
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		if _, err := repos.Customers.GetByID(ctx, req.CustomerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("customer %d not found", req.CustomerID)
			}
			return err
		}
		if err := repos.Rentals.Create(ctx, rental); err != nil {
			return fmt.Errorf("failed to create rental: %w", err)
		}
		for i, it := range req.Items {
			item := &domain.RentalItem{
				RentalID:         rental.ID,
				EquipmentID:      it.EquipmentID,
				OperatorID:       it.OperatorID,
				RateCents:        it.RateCents,
				RateType:         it.RateType,
				Quantity:         it.Quantity,
				TotalAmountCents: itemTotals[i],
			}
			if err := repos.RentalItems.Create(ctx, item); err != nil {
				return fmt.Errorf("failed to create rental item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Rental created", "rental_id", rental.ID, "customer_id", rental.CustomerID, "total_cents", rental.TotalAmountCents)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, []domain.RentalItem, error) {
	repos := s.store.Repos()
	rental, err := repos.Rentals.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := repos.RentalItems.ListByRental(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rental, items, nil
}

func (s *rentalService) ListRentals(ctx context.Context, filter repository.RentalFilter) ([]domain.RentalSummary, int32, error) {
	return s.store.Repos().Rentals.ListWithFilters(ctx, filter)
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	rental, err := s.store.Repos().Rentals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !rental.Status.IsTerminal() {
		return fmt.Errorf("cannot delete rental %d in status %s", id, rental.Status)
	}
	return s.store.Repos().Rentals.SoftDelete(ctx, id)
}

func (s *rentalService) GetStatusLogs(ctx context.Context, rentalID int32) ([]domain.StatusLog, error) {
	if _, err := s.store.Repos().Rentals.GetByID(ctx, rentalID); err != nil {
		return nil, err
	}
	return s.store.Repos().StatusLogs.ListByRental(ctx, rentalID)
}

// GenerateQuotation prices the rental's items and issues a quotation.
// Calling it again for the same rental returns the existing quotation
// unchanged.
func (s *rentalService) GenerateQuotation(ctx context.Context, rentalID int32, actorID *int32) (*domain.Quotation, error) {
	repos := s.store.Repos()
	rental, err := repos.Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	existing, err := repos.Quotations.GetByRentalID(ctx, rentalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	items, err := repos.RentalItems.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("rental %d has no items to quote", rentalID)
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.TotalAmountCents
	}
	totals := utils.ComputeQuoteTotals(subtotal, rental.TaxRate, rental.DiscountPercent)

	validUntil := time.Now().UTC().AddDate(0, 0, s.billing.QuotationValidityDays).Format("2006-01-02")
	quotation := &domain.Quotation{
		RentalID:            rentalID,
		QuotationNumber:     fmt.Sprintf("QT-%s-%s", time.Now().UTC().Format("20060102"), uuid.NewString()[:8]),
		Status:              domain.QuotationStatusPending,
		SubtotalCents:       totals.SubtotalCents,
		TaxRate:             rental.TaxRate,
		TaxAmountCents:      totals.TaxCents,
		DiscountPercent:     rental.DiscountPercent,
		DiscountAmountCents: totals.DiscountCents,
		TotalAmountCents:    totals.TotalCents,
		ValidUntil:          validUntil,
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		if err := repos.Quotations.Create(ctx, quotation); err != nil {
			return fmt.Errorf("failed to create quotation: %w", err)
		}
		for _, it := range items {
			qi := &domain.QuotationItem{
				QuotationID:      quotation.ID,
				EquipmentID:      it.EquipmentID,
				OperatorID:       it.OperatorID,
				RateCents:        it.RateCents,
				RateType:         it.RateType,
				Quantity:         it.Quantity,
				TotalAmountCents: it.TotalAmountCents,
			}
			if err := repos.Quotations.CreateItem(ctx, qi); err != nil {
				return fmt.Errorf("failed to create quotation item: %w", err)
			}
		}
		rental.TotalAmountCents = totals.TotalCents
		return s.transition(ctx, repos, rental, domain.RentalStatusQuotation, actorID, "quotation "+quotation.QuotationNumber+" issued")
	})
	if err != nil {
		return nil, err
	}

	if customer, cErr := s.store.Repos().Customers.GetByID(ctx, rental.CustomerID); cErr == nil {
		if mailErr := s.email.SendQuotationIssued(customer, quotation); mailErr != nil {
			s.log.Warn("Failed to queue quotation email", "rental_id", rentalID, "error", mailErr)
		}
	}

	return quotation, nil
}

func (s *rentalService) GetQuotation(ctx context.Context, rentalID int32) (*domain.Quotation, []domain.QuotationItem, error) {
	repos := s.store.Repos()
	quotation, err := repos.Quotations.GetByRentalID(ctx, rentalID)
	if err != nil {
		return nil, nil, err
	}
	items, err := repos.Quotations.ListItems(ctx, quotation.ID)
	if err != nil {
		return nil, nil, err
	}
	return quotation, items, nil
}

func (s *rentalService) ApproveQuotation(ctx context.Context, rentalID int32, actorID *int32) error {
	repos := s.store.Repos()
	rental, err := repos.Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	quotation, err := repos.Quotations.GetByRentalID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("rental %d has no quotation to approve", rentalID)
		}
		return err
	}
	if quotation.Status != domain.QuotationStatusPending {
		return fmt.Errorf("quotation %s is %s, only pending quotations can be approved", quotation.QuotationNumber, quotation.Status)
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		stamp := nowStamp()
		quotation.Status = domain.QuotationStatusApproved
		quotation.ApprovedBy = actorID
		quotation.ApprovedOn = &stamp
		if err := repos.Quotations.Update(ctx, quotation); err != nil {
			return fmt.Errorf("failed to update quotation: %w", err)
		}
		if err := repos.Quotations.AppendHistory(ctx, &domain.QuotationHistory{
			QuotationID: quotation.ID,
			FromStatus:  domain.QuotationStatusPending,
			ToStatus:    domain.QuotationStatusApproved,
			ActorID:     actorID,
		}); err != nil {
			return fmt.Errorf("failed to record quotation history: %w", err)
		}
		return s.transition(ctx, repos, rental, domain.RentalStatusQuotationApproved, actorID, "quotation "+quotation.QuotationNumber+" approved")
	})
	if err != nil {
		return err
	}

	if customer, cErr := s.store.Repos().Customers.GetByID(ctx, rental.CustomerID); cErr == nil {
		if mailErr := s.email.SendQuotationApproved(customer, quotation); mailErr != nil {
			s.log.Warn("Failed to queue approval email", "rental_id", rentalID, "error", mailErr)
		}
	}
	return nil
}

func (s *rentalService) BeginMobilization(ctx context.Context, rentalID int32, actorID *int32) error {
	return s.simpleTransition(ctx, rentalID, domain.RentalStatusMobilization, actorID, "mobilization started")
}

func (s *rentalService) CompleteMobilization(ctx context.Context, rentalID int32, actorID *int32) error {
	return s.simpleTransition(ctx, rentalID, domain.RentalStatusMobilizationCompleted, actorID, "mobilization completed")
}

// simpleTransition wraps a status change with no side effects in a
// transaction of its own.
func (s *rentalService) simpleTransition(ctx context.Context, rentalID int32, to domain.RentalStatus, actorID *int32, notes string) error {
	rental, err := s.store.Repos().Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	return s.store.ExecTx(ctx, func(repos repository.Registry) error {
		return s.transition(ctx, repos, rental, to, actorID, notes)
	})
}

// StartRental activates the rental. When the rental tracks timesheets,
// one open timesheet per line item is created in the same transaction.
func (s *rentalService) StartRental(ctx context.Context, rentalID int32, actorID *int32) error {
	rental, err := s.store.Repos().Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		if err := s.transition(ctx, repos, rental, domain.RentalStatusActive, actorID, "rental started"); err != nil {
			return err
		}
		if !rental.HasTimesheet {
			return nil
		}
		items, err := repos.RentalItems.ListByRental(ctx, rentalID)
		if err != nil {
			return err
		}
		for _, it := range items {
			ts := &domain.Timesheet{
				RentalID:     rentalID,
				RentalItemID: it.ID,
				OperatorID:   it.OperatorID,
				StartDate:    rental.StartDate,
				EndDate:      rental.ExpectedEndDate,
				Status:       domain.TimesheetStatusOpen,
			}
			if err := repos.Timesheets.Create(ctx, ts); err != nil {
				return fmt.Errorf("failed to create timesheet for item %d: %w", it.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if customer, cErr := s.store.Repos().Customers.GetByID(ctx, rental.CustomerID); cErr == nil {
		if mailErr := s.email.SendRentalStarted(customer, rental); mailErr != nil {
			s.log.Warn("Failed to queue start email", "rental_id", rentalID, "error", mailErr)
		}
	}
	return nil
}

func (s *rentalService) CompleteRental(ctx context.Context, rentalID int32, actorID *int32) error {
	rental, err := s.store.Repos().Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		endDate := todayDate()
		rental.ActualEndDate = &endDate
		return s.transition(ctx, repos, rental, domain.RentalStatusCompleted, actorID, "rental completed")
	})
	if err != nil {
		return err
	}

	if customer, cErr := s.store.Repos().Customers.GetByID(ctx, rental.CustomerID); cErr == nil {
		if mailErr := s.email.SendRentalCompleted(customer, rental); mailErr != nil {
			s.log.Warn("Failed to queue completion email", "rental_id", rentalID, "error", mailErr)
		}
	}
	return nil
}

func (s *rentalService) CancelRental(ctx context.Context, rentalID int32, actorID *int32, reason string) error {
	notes := "rental cancelled"
	if reason != "" {
		notes = "rental cancelled: " + reason
	}
	return s.simpleTransition(ctx, rentalID, domain.RentalStatusCancelled, actorID, notes)
}

func (s *rentalService) RequestExtension(ctx context.Context, rentalID int32, requestedBy int32, requestedEndDate, reason string) (*domain.ExtensionRequest, error) {
	rental, err := s.store.Repos().Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	requested, err := utils.ParseDate(requestedEndDate)
	if err != nil {
		return nil, err
	}
	current, err := utils.ParseDate(rental.ExpectedEndDate)
	if err != nil {
		return nil, err
	}
	if !requested.After(current) {
		return nil, fmt.Errorf("requested end date %s must be after current end date %s", requestedEndDate, rental.ExpectedEndDate)
	}

	request := &domain.ExtensionRequest{
		RentalID:         rentalID,
		RequestedBy:      requestedBy,
		CurrentEndDate:   rental.ExpectedEndDate,
		RequestedEndDate: requestedEndDate,
		Reason:           reason,
		Status:           domain.ExtensionStatusPending,
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		if err := repos.Extensions.Create(ctx, request); err != nil {
			return fmt.Errorf("failed to create extension request: %w", err)
		}
		return s.transition(ctx, repos, rental, domain.RentalStatusExtensionRequested, &requestedBy, "extension requested until "+requestedEndDate)
	})
	if err != nil {
		return nil, err
	}

	if customer, cErr := s.store.Repos().Customers.GetByID(ctx, rental.CustomerID); cErr == nil {
		if mailErr := s.email.SendExtensionRequested(customer, rental, request); mailErr != nil {
			s.log.Warn("Failed to queue extension email", "rental_id", rentalID, "error", mailErr)
		}
	}
	return request, nil
}

// DecideExtension approves or rejects a pending extension request. An
// approval moves the expected end date forward and clears any overdue
// marker; a rejection returns the rental to ACTIVE unchanged.
func (s *rentalService) DecideExtension(ctx context.Context, requestID int32, approve bool, actorID *int32) error {
	repos := s.store.Repos()
	request, err := repos.Extensions.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.ExtensionStatusPending {
		return fmt.Errorf("extension request %d is already %s", requestID, request.Status)
	}
	rental, err := repos.Rentals.GetByID(ctx, request.RentalID)
	if err != nil {
		return err
	}

	return s.store.ExecTx(ctx, func(repos repository.Registry) error {
		stamp := nowStamp()
		request.DecidedBy = actorID
		request.DecidedOn = &stamp

		if approve {
			request.Status = domain.ExtensionStatusApproved
			if err := repos.Extensions.Update(ctx, request); err != nil {
				return fmt.Errorf("failed to update extension request: %w", err)
			}
			rental.ExpectedEndDate = request.RequestedEndDate
			rental.OverdueDate = nil
			return s.transition(ctx, repos, rental, domain.RentalStatusActive, actorID, "extension approved until "+request.RequestedEndDate)
		}

		request.Status = domain.ExtensionStatusRejected
		if err := repos.Extensions.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update extension request: %w", err)
		}
		return s.transition(ctx, repos, rental, domain.RentalStatusActive, actorID, "extension rejected")
	})
}

func (s *rentalService) CheckOverdue(ctx context.Context, rentalID int32) (bool, error) {
	rental, err := s.store.Repos().Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return false, err
	}
	return s.markOverdue(ctx, rental)
}

// markOverdue flips a single ACTIVE rental past its end date to
// OVERDUE. Rentals in any other status, including ones already marked,
// are left alone, so repeated runs are no-ops.
func (s *rentalService) markOverdue(ctx context.Context, rental *domain.Rental) (bool, error) {
	if rental.Status != domain.RentalStatusActive {
		return false, nil
	}
	end, err := utils.ParseDate(rental.ExpectedEndDate)
	if err != nil {
		return false, err
	}
	today, err := utils.ParseDate(todayDate())
	if err != nil {
		return false, err
	}
	if !end.Before(today) {
		return false, nil
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		date := todayDate()
		rental.OverdueDate = &date
		return s.transition(ctx, repos, rental, domain.RentalStatusOverdue, nil, "past expected end date "+rental.ExpectedEndDate)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *rentalService) MarkOverdue(ctx context.Context) (int, error) {
	rentals, err := s.store.Repos().Rentals.ListActivePastEndDate(ctx, todayDate())
	if err != nil {
		return 0, err
	}

	marked := 0
	for i := range rentals {
		ok, err := s.markOverdue(ctx, &rentals[i])
		if err != nil {
			s.log.Warn("Failed to mark rental overdue", "rental_id", rentals[i].ID, "error", err)
			continue
		}
		if ok {
			marked++
		}
	}
	return marked, nil
}

func (s *rentalService) ExpireQuotations(ctx context.Context) (int, error) {
	quotations, err := s.store.Repos().Quotations.ListExpiredPending(ctx, todayDate())
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range quotations {
		q := &quotations[i]
		err := s.store.ExecTx(ctx, func(repos repository.Registry) error {
			q.Status = domain.QuotationStatusExpired
			if err := repos.Quotations.Update(ctx, q); err != nil {
				return err
			}
			return repos.Quotations.AppendHistory(ctx, &domain.QuotationHistory{
				QuotationID: q.ID,
				FromStatus:  domain.QuotationStatusPending,
				ToStatus:    domain.QuotationStatusExpired,
				Notes:       "validity window closed on " + q.ValidUntil,
			})
		})
		if err != nil {
			s.log.Warn("Failed to expire quotation", "quotation_id", q.ID, "error", err)
			continue
		}
		expired++
	}
	return expired, nil
}

// CreateInvoice pushes a sales invoice for a completed rental to the
// ERP and records the returned document name. The external call happens
// outside the transaction; a crash between the two leaves the rental
// without an invoice id, and the next call creates a fresh document.
func (s *rentalService) CreateInvoice(ctx context.Context, rentalID int32, actorID *int32) (string, error) {
	repos := s.store.Repos()
	rental, err := repos.Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return "", err
	}
	if rental.Status != domain.RentalStatusCompleted {
		return "", fmt.Errorf("cannot invoice rental %d in status %s", rentalID, rental.Status)
	}
	if rental.InvoiceID != nil {
		return *rental.InvoiceID, nil
	}

	customer, err := repos.Customers.GetByID(ctx, rental.CustomerID)
	if err != nil {
		return "", err
	}
	if customer.ERPNextID == nil {
		name, err := s.erp.SyncCustomer(ctx, customer)
		if err != nil {
			return "", fmt.Errorf("failed to sync customer %d to ERP: %w", customer.ID, err)
		}
		if err := repos.Customers.SetERPNextID(ctx, customer.ID, name); err != nil {
			return "", err
		}
		customer.ERPNextID = &name
	}

	items, err := repos.RentalItems.ListByRental(ctx, rentalID)
	if err != nil {
		return "", err
	}

	var subtotal int64
	invoiceItems := make([]erpnext.SalesInvoiceItem, 0, len(items))
	for _, it := range items {
		subtotal += it.TotalAmountCents
		invoiceItems = append(invoiceItems, erpnext.SalesInvoiceItem{
			ItemName:    fmt.Sprintf("Equipment %d (%s)", it.EquipmentID, it.RateType),
			Description: fmt.Sprintf("Rental %d, %s to %s", rentalID, rental.StartDate, rental.ExpectedEndDate),
			Qty:         it.Quantity,
			Rate:        float64(it.TotalAmountCents) / float64(it.Quantity) / 100,
		})
	}
	totals := utils.ComputeQuoteTotals(subtotal, rental.TaxRate, rental.DiscountPercent)

	invoice := erpnext.SalesInvoice{
		Customer:    *customer.ERPNextID,
		PostingDate: todayDate(),
		Items:       invoiceItems,
		Taxes: []erpnext.SalesTaxCharge{{
			ChargeType:  "On Net Total",
			AccountHead: "VAT - EQ",
			Rate:        rental.TaxRate * 100,
			Description: "Sales tax",
		}},
		DiscountAmount: float64(totals.DiscountCents) / 100,
		Remarks:        fmt.Sprintf("Rental %d", rentalID),
	}

	invoiceID, err := s.erp.CreateSalesInvoice(ctx, invoice)
	if err != nil {
		return "", fmt.Errorf("failed to create sales invoice for rental %d: %w", rentalID, err)
	}

	err = s.store.ExecTx(ctx, func(repos repository.Registry) error {
		rental.InvoiceID = &invoiceID
		if err := repos.Rentals.Update(ctx, rental); err != nil {
			return err
		}
		return repos.Payments.Create(ctx, &domain.Payment{
			RentalID:    rentalID,
			InvoiceID:   &invoiceID,
			AmountCents: rental.TotalAmountCents,
			Status:      domain.PaymentStatusPending,
		})
	})
	if err != nil {
		return "", err
	}

	s.log.Info("Invoice created", "rental_id", rentalID, "invoice_id", invoiceID)
	if mailErr := s.email.SendInvoiceCreated(customer, rental, invoiceID); mailErr != nil {
		s.log.Warn("Failed to queue invoice email", "rental_id", rentalID, "error", mailErr)
	}
	return invoiceID, nil
}
