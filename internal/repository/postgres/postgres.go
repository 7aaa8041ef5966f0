package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"equiprent-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// the same repository code serves both direct and transactional access.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db    *sql.DB
	repos repository.Registry
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:    db,
		repos: newRegistry(db),
	}
}

func newRegistry(db DBTX) repository.Registry {
	return repository.Registry{
		Rentals:     NewRentalRepository(db),
		RentalItems: NewRentalItemRepository(db),
		Quotations:  NewQuotationRepository(db),
		StatusLogs:  NewStatusLogRepository(db),
		Extensions:  NewExtensionRequestRepository(db),
		Timesheets:  NewTimesheetRepository(db),
		Payments:    NewPaymentRepository(db),
		Customers:   NewCustomerRepository(db),
	}
}

func (s *Store) Repos() repository.Registry {
	return s.repos
}

// ExecTx runs fn against a registry bound to one database transaction.
// A rollback failure is attached to the original error.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Registry) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(newRegistry(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// DB exposes the raw handle for job queries that bypass repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// now returns the timestamp format written to created_on/updated_on.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// today returns the current date in the yyyy-mm-dd column format.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
