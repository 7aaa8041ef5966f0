package service

import (
	"context"
	"fmt"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

type paymentService struct {
	store repository.Store
	log   interface {
		Info(msg string, args ...any)
	}
}

func NewPaymentService(store repository.Store) PaymentService {
	return &paymentService{
		store: store,
		log:   logger.WithService("payment"),
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	if p.AmountCents <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %d", p.AmountCents)
	}
	rental, err := s.store.Repos().Rentals.GetByID(ctx, p.RentalID)
	if err != nil {
		return nil, err
	}

	p.Status = domain.PaymentStatusPending
	if p.InvoiceID == nil {
		p.InvoiceID = rental.InvoiceID
	}
	if err := s.store.Repos().Payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.log.Info("Payment recorded", "payment_id", p.ID, "rental_id", p.RentalID, "amount_cents", p.AmountCents)
	return p, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, paymentID int32) error {
	return s.setStatus(ctx, paymentID, domain.PaymentStatusConfirmed)
}

func (s *paymentService) FailPayment(ctx context.Context, paymentID int32) error {
	return s.setStatus(ctx, paymentID, domain.PaymentStatusFailed)
}

func (s *paymentService) setStatus(ctx context.Context, paymentID int32, status domain.PaymentStatus) error {
	payment, err := s.store.Repos().Payments.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.Status != domain.PaymentStatusPending {
		return fmt.Errorf("payment %d is already %s", paymentID, payment.Status)
	}

	payment.Status = status
	if status == domain.PaymentStatusConfirmed {
		paidOn := time.Now().UTC().Format("2006-01-02")
		payment.PaidOn = &paidOn
	}
	if err := s.store.Repos().Payments.Update(ctx, payment); err != nil {
		return fmt.Errorf("failed to update payment %d: %w", paymentID, err)
	}

	s.log.Info("Payment status changed", "payment_id", paymentID, "status", status)
	return nil
}

func (s *paymentService) ListPayments(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	return s.store.Repos().Payments.ListByRental(ctx, rentalID)
}
