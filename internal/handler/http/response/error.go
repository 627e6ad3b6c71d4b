package response

import (
	"errors"
	"net/http"

	"github.com/transkotakita/payroll-backend-go/internal/domain/auth"
	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
	"github.com/transkotakita/payroll-backend-go/internal/domain/gate"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// Gate domain errors
	case errors.Is(err, gate.ErrInvalidPassphrase):
		Unauthorized(w, "Invalid passphrase")
	case errors.Is(err, gate.ErrLocked):
		Forbidden(w, "Employee access is locked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSupervisorNotFound):
		NotFound(w, "Supervisor not found")
	case errors.Is(err, employee.ErrEmployeeHasPayments):
		Conflict(w, "Employee has payment records and cannot be deleted")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment record not found")
	case errors.Is(err, payment.ErrSelfSupervision):
		BadRequest(w, "Supervisor cannot record their own payment", nil)
	case errors.Is(err, payment.ErrPositionNotEligible):
		BadRequest(w, "Position is not eligible for daily payment", nil)
	case errors.Is(err, payment.ErrDuplicateRecord):
		Conflict(w, "A record already exists for this employee and date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
