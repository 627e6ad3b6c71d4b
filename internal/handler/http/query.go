package http

import (
	"net/http"
	"time"

	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/validator"
)

// monthFromQuery reads the ?month=YYYY-MM parameter. When absent the
// current month is used; a malformed value is a validation error.
func monthFromQuery(r *http.Request) (payment.Month, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return payment.MonthOf(time.Now()), nil
	}

	t, ok := validator.IsValidMonth(raw)
	if !ok {
		return payment.Month{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	return payment.MonthOf(t), nil
}
