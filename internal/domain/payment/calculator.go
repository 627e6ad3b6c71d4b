package payment

import (
	"fmt"

	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
)

// MonthlyAttendance is the derived per-employee, per-month breakdown.
// A calendar day with no record at all counts as unpaid, which is
// distinct from a recorded leave day.
type MonthlyAttendance struct {
	PaidDays     int
	LeaveDays    int
	UnpaidDays   int
	PaidAmount   int64
	UnpaidAmount int64
}

// CalculateMonthlyAttendance derives day counts and monetary totals from
// the raw payment records of one employee within one month. Records
// outside the month are ignored. Two records on the same date violate the
// one-record-per-day invariant and are surfaced as an error rather than
// silently summed.
func CalculateMonthlyAttendance(position employee.Position, month Month, payments []Payment) (MonthlyAttendance, error) {
	var result MonthlyAttendance

	seen := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		if !month.Contains(p.Date) {
			continue
		}

		key := p.Date.Format("2006-01-02")
		if _, dup := seen[key]; dup {
			return MonthlyAttendance{}, fmt.Errorf("duplicate payment record on %s: %w", key, ErrDuplicateRecord)
		}
		seen[key] = struct{}{}

		if p.IsLeave {
			result.LeaveDays++
			continue
		}
		result.PaidDays++
		result.PaidAmount += p.Amount
	}

	result.UnpaidDays = month.Days() - result.PaidDays - result.LeaveDays
	result.UnpaidAmount = int64(result.UnpaidDays) * position.DailyRate()

	return result, nil
}
