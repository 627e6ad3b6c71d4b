package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSupervisorNotFound = errors.New("supervisor not found")

	// ErrEmployeeHasPayments blocks deletion while payment records still
	// reference the employee. Checked in the service before any store call.
	ErrEmployeeHasPayments = errors.New("cannot delete employee with existing payment records")
)
