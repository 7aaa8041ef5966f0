package jobs

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
)

// MarkOverdueRentals moves ACTIVE rentals past their expected end date
// to OVERDUE through the rental service so every rental gets a status
// log row.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		marked, err := jr.services.Rental.MarkOverdue(ctx)
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue", "count", marked)
	})
}

// ExpireQuotations marks pending quotations past their validity window
// as EXPIRED.
func (jr *JobRunner) ExpireQuotations() {
	jr.runWithRecovery("ExpireQuotations", func() {
		ctx := context.Background()

		expired, err := jr.services.Rental.ExpireQuotations(ctx)
		if err != nil {
			logger.Error("Failed to expire quotations", "error", err)
			return
		}

		logger.Info("Expired quotations", "count", expired)
	})
}

// SendOverdueReminders emails the customer of every OVERDUE rental.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		// Join straight to customers so one query yields everything the
		// reminder needs.
		query := `
			SELECT r.id, r.customer_id, r.status, r.start_date, r.expected_end_date,
			       r.total_amount_cents,
			       c.id, c.name, c.email, c.phone
			FROM rentals r
			JOIN customers c ON c.id = r.customer_id
			WHERE r.status = 'OVERDUE'
			  AND r.deleted_on IS NULL
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var rental domain.Rental
			var customer domain.Customer
			if err := rows.Scan(
				&rental.ID, &rental.CustomerID, &rental.Status,
				&rental.StartDate, &rental.ExpectedEndDate, &rental.TotalAmountCents,
				&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
			); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}

			if err := jr.services.Email.SendOverdueReminder(&customer, &rental); err != nil {
				logger.Error("Failed to queue overdue reminder",
					"rental_id", rental.ID,
					"customer_id", customer.ID,
					"error", err)
				continue
			}
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Queued overdue reminders", "count", count)
	})
}
