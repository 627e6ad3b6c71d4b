package report

import (
	"github.com/transkotakita/payroll-backend-go/internal/pkg/validator"
)

// MonthlySummaryRequest selects the reporting month, "YYYY-MM".
type MonthlySummaryRequest struct {
	Month string `json:"month"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlySummary holds the dashboard-level totals for one month.
// TotalAmount is the possible payout (every employee's daily rate times
// days in month); UnpaidAmount is the remainder after paid records.
type MonthlySummary struct {
	Month        string `json:"month"`
	DaysInMonth  int    `json:"days_in_month"`
	TotalAmount  int64  `json:"total_amount"`
	PaidAmount   int64  `json:"paid_amount"`
	UnpaidAmount int64  `json:"unpaid_amount"`
}

// EmployeeSummary is one export row: per-employee day counts and the
// month's total pay (paid days times daily rate).
type EmployeeSummary struct {
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`
	DailyRate    int64  `json:"daily_rate"`
	PaidDays     int    `json:"paid_days"`
	LeaveDays    int    `json:"leave_days"`
	UnpaidDays   int    `json:"unpaid_days"`
	TotalAmount  int64  `json:"total_amount"`
}

// CSVExport is the serialized export with its download filename,
// "payment-summary-YYYY-MM.csv".
type CSVExport struct {
	Filename string
	Content  []byte
}
