package service

import (
	"context"
	"fmt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

type customerService struct {
	store repository.Store
	erp   ERPClient
	log   interface {
		Info(msg string, args ...any)
		Warn(msg string, args ...any)
	}
}

func NewCustomerService(store repository.Store, erp ERPClient) CustomerService {
	return &customerService{
		store: store,
		erp:   erp,
		log:   logger.WithService("customer"),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if c.Email == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	if err := s.store.Repos().Customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	// ERP sync is best effort at creation time; CreateInvoice retries
	// it for any customer still missing a remote id.
	if name, err := s.erp.SyncCustomer(ctx, c); err != nil {
		s.log.Warn("ERP sync failed for new customer", "customer_id", c.ID, "error", err)
	} else if err := s.store.Repos().Customers.SetERPNextID(ctx, c.ID, name); err != nil {
		s.log.Warn("Failed to record ERP id", "customer_id", c.ID, "error", err)
	} else {
		c.ERPNextID = &name
	}

	s.log.Info("Customer created", "customer_id", c.ID)
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.store.Repos().Customers.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if c.Name == "" {
		return fmt.Errorf("customer name is required")
	}
	return s.store.Repos().Customers.Update(ctx, c)
}

func (s *customerService) ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.store.Repos().Customers.List(ctx, page, pageSize)
}

func (s *customerService) SyncToERP(ctx context.Context, customerID int32) (string, error) {
	customer, err := s.store.Repos().Customers.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}
	if customer.ERPNextID != nil {
		return *customer.ERPNextID, nil
	}

	name, err := s.erp.SyncCustomer(ctx, customer)
	if err != nil {
		return "", fmt.Errorf("failed to sync customer %d to ERP: %w", customerID, err)
	}
	if err := s.store.Repos().Customers.SetERPNextID(ctx, customerID, name); err != nil {
		return "", err
	}
	return name, nil
}
