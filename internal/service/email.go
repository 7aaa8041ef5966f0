package service

import (
	"fmt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/notify"
)

type emailService struct {
	queue *notify.Queue
}

// NewEmailService creates an email service backed by the async
// notification queue. Enqueue failures surface to the caller; delivery
// failures are handled by the queue's retry policy.
func NewEmailService(queue *notify.Queue) EmailService {
	return &emailService{queue: queue}
}

func (s *emailService) enqueue(customer *domain.Customer, subject, body string) error {
	return s.queue.Enqueue(notify.Message{
		To:      customer.Email,
		ToName:  customer.Name,
		Subject: subject,
		Body:    body,
	})
}

func (s *emailService) SendQuotationIssued(customer *domain.Customer, q *domain.Quotation) error {
	return s.enqueue(customer,
		fmt.Sprintf("Quotation %s", q.QuotationNumber),
		fmt.Sprintf("Dear %s,\n\nYour quotation %s has been issued for a total of %.2f. It is valid until %s.\n\nThank you.",
			customer.Name, q.QuotationNumber, float64(q.TotalAmountCents)/100, q.ValidUntil))
}

func (s *emailService) SendQuotationApproved(customer *domain.Customer, q *domain.Quotation) error {
	return s.enqueue(customer,
		fmt.Sprintf("Quotation %s approved", q.QuotationNumber),
		fmt.Sprintf("Dear %s,\n\nQuotation %s has been approved for a total of %.2f.\n\nThank you.",
			customer.Name, q.QuotationNumber, float64(q.TotalAmountCents)/100))
}

func (s *emailService) SendRentalStarted(customer *domain.Customer, rental *domain.Rental) error {
	return s.enqueue(customer,
		fmt.Sprintf("Rental %d started", rental.ID),
		fmt.Sprintf("Dear %s,\n\nYour rental %d is now active. The rental period runs from %s to %s.\n\nThank you.",
			customer.Name, rental.ID, rental.StartDate, rental.ExpectedEndDate))
}

func (s *emailService) SendRentalCompleted(customer *domain.Customer, rental *domain.Rental) error {
	return s.enqueue(customer,
		fmt.Sprintf("Rental %d completed", rental.ID),
		fmt.Sprintf("Dear %s,\n\nYour rental %d has been completed. Total amount: %.2f.\n\nThank you.",
			customer.Name, rental.ID, float64(rental.TotalAmountCents)/100))
}

func (s *emailService) SendExtensionRequested(customer *domain.Customer, rental *domain.Rental, req *domain.ExtensionRequest) error {
	return s.enqueue(customer,
		fmt.Sprintf("Extension requested for rental %d", rental.ID),
		fmt.Sprintf("Dear %s,\n\nAn extension of rental %d until %s has been requested and is awaiting review.\n\nThank you.",
			customer.Name, rental.ID, req.RequestedEndDate))
}

func (s *emailService) SendOverdueReminder(customer *domain.Customer, rental *domain.Rental) error {
	return s.enqueue(customer,
		fmt.Sprintf("Rental %d is overdue", rental.ID),
		fmt.Sprintf("Dear %s,\n\nRental %d passed its expected end date %s and has not been returned. Please contact us to arrange a return or an extension.\n\nThank you.",
			customer.Name, rental.ID, rental.ExpectedEndDate))
}

func (s *emailService) SendInvoiceCreated(customer *domain.Customer, rental *domain.Rental, invoiceID string) error {
	return s.enqueue(customer,
		fmt.Sprintf("Invoice %s for rental %d", invoiceID, rental.ID),
		fmt.Sprintf("Dear %s,\n\nInvoice %s has been issued for rental %d, amount %.2f.\n\nThank you.",
			customer.Name, invoiceID, rental.ID, float64(rental.TotalAmountCents)/100))
}
