package payment

import (
	"time"

	"github.com/transkotakita/payroll-backend-go/internal/pkg/validator"
)

// ========================================
// PAYMENT DTOs
// ========================================

// RecordPaymentRequest covers both a single-day and a bulk recording: when
// EndDate is empty only Date is recorded, otherwise every day of the
// inclusive [Date, EndDate] range.
type RecordPaymentRequest struct {
	SupervisorID string `json:"supervisor_id"`
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`               // "YYYY-MM-DD"
	EndDate      string `json:"end_date,omitempty"` // "YYYY-MM-DD", inclusive
	IsLeave      bool   `json:"is_leave"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SupervisorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_id",
			Message: "supervisor_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsEmpty(r.SupervisorID) && r.SupervisorID == r.EmployeeID {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_id",
			Message: "supervisor cannot record payments for themselves",
		})
	}

	from, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != "" {
		to, ok := validator.IsValidDate(r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if !from.IsZero() && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the expanded recording dates in ascending order.
// Validate must have passed.
func (r *RecordPaymentRequest) Dates() []time.Time {
	from, _ := validator.IsValidDate(r.Date)
	if r.EndDate == "" {
		return []time.Time{from}
	}
	to, _ := validator.IsValidDate(r.EndDate)
	return DatesBetween(from, to)
}

// UpdatePaymentRequest flips the leave flag on an existing record; the
// amount is recomputed from the employee's current position.
type UpdatePaymentRequest struct {
	ID      string `json:"-"`
	IsLeave bool   `json:"is_leave"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HistoryFilter scopes the payment history listing to one month, and
// optionally to one employee.
type HistoryFilter struct {
	Month      Month
	EmployeeID *string
}

type PaymentResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	EmployeePosition string `json:"employee_position,omitempty"`
	Date             string `json:"date"`
	Amount           int64  `json:"amount"`
	Status           string `json:"status"`
	IsLeave          bool   `json:"is_leave"`
}

// RecordPaymentResponse reports a committed recording. NotificationSent is
// false when the webhook delivery failed; the records are committed either
// way and NotificationError carries the soft warning.
type RecordPaymentResponse struct {
	Payments          []PaymentResponse `json:"payments"`
	DaysCount         int               `json:"days_count"`
	TotalAmount       int64             `json:"total_amount"`
	NotificationSent  bool              `json:"notification_sent"`
	NotificationError string            `json:"notification_error,omitempty"`
}

type MonthlyAttendanceResponse struct {
	EmployeeID   string `json:"employee_id"`
	Month        string `json:"month"`
	DaysInMonth  int    `json:"days_in_month"`
	PaidDays     int    `json:"paid_days"`
	LeaveDays    int    `json:"leave_days"`
	UnpaidDays   int    `json:"unpaid_days"`
	PaidAmount   int64  `json:"paid_amount"`
	UnpaidAmount int64  `json:"unpaid_amount"`
}
