package payment

import "time"

// Payment is the record of one calendar day's outcome for one employee.
// Invariant: IsLeave implies Amount == 0, and a pay-ineligible position
// always carries Amount == 0. At most one record exists per employee per
// date; the payments table enforces this with a unique index.
type Payment struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Amount     int64
	Status     Status
	IsLeave    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName     *string
	EmployeePosition *string
}

type Status string

const (
	StatusPaid Status = "paid"
	// StatusUnpaid exists in the schema but is never produced; every
	// persisted record is a realized outcome.
	StatusUnpaid Status = "unpaid"
)
