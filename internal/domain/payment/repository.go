package payment

import (
	"context"
	"time"
)

// PaymentRepository defines data access methods for payment records.
type PaymentRepository interface {
	// CreateBatch inserts the given records. IDs are assigned by the
	// caller so a retried batch stays idempotent against the
	// (employee_id, date) unique index.
	CreateBatch(ctx context.Context, payments []Payment) error

	// RecordBatch runs one transaction that first deletes, per record,
	// any leave entry the new payment supersedes (when cancelLeave is
	// set) and then inserts the batch. Nothing commits on failure.
	RecordBatch(ctx context.Context, payments []Payment, cancelLeave bool) error

	// GetByID retrieves a payment by ID with employee name and position joined
	GetByID(ctx context.Context, id string) (Payment, error)

	// ListByDateRange retrieves all payments with date in [from, to]
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Payment, error)

	// ListByEmployeeAndDateRange retrieves one employee's payments with
	// date in [from, to]
	ListByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]Payment, error)

	// List retrieves payments matching the history filter, newest first,
	// with employee name and position joined
	List(ctx context.Context, filter HistoryFilter) ([]Payment, error)

	// Update sets the leave flag and amount of an existing record
	Update(ctx context.Context, id string, isLeave bool, amount int64) error

	// Delete removes a payment by ID
	Delete(ctx context.Context, id string) error

	// DeleteLeave removes the leave record for (employeeID, date) if one
	// exists. A real payment always supersedes a previously marked leave
	// day; deleting a missing record is not an error.
	DeleteLeave(ctx context.Context, employeeID string, date time.Time) error
}
