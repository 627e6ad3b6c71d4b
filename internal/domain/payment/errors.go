package payment

import "errors"

// Payment domain errors
var (
	ErrPaymentNotFound = errors.New("payment record not found")

	// Recorder validation errors
	ErrSelfSupervision     = errors.New("supervisor cannot record payments for themselves")
	ErrPositionNotEligible = errors.New("this position is not eligible for daily payments")

	// ErrDuplicateRecord surfaces the (employee_id, date) unique index.
	ErrDuplicateRecord = errors.New("a payment record already exists for this employee and date")
)
