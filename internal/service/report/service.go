package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
	"github.com/transkotakita/payroll-backend-go/internal/domain/report"
)

// csvHeader is the export format contract; other tooling depends on this
// exact column order.
var csvHeader = []string{
	"Employee Name",
	"Position",
	"Daily Rate",
	"Total Paid Days",
	"Leave Days",
	"Unpaid Days",
	"Total Working Days",
	"Total Amount",
}

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	paymentRepo  payment.PaymentRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	paymentRepo payment.PaymentRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		paymentRepo:  paymentRepo,
	}
}

// MonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, month payment.Month) (report.MonthlySummary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("failed to get employees: %w", err)
	}

	payments, err := s.paymentRepo.ListByDateRange(ctx, month.Start(), month.End())
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("failed to get payments: %w", err)
	}

	return buildMonthlySummary(month, employees, payments), nil
}

// EmployeeSummaries implements report.ReportService.
func (s *ReportServiceImpl) EmployeeSummaries(ctx context.Context, month payment.Month) ([]report.EmployeeSummary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	payments, err := s.paymentRepo.ListByDateRange(ctx, month.Start(), month.End())
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return buildEmployeeSummaries(month, employees, payments)
}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, month payment.Month) (report.CSVExport, error) {
	summaries, err := s.EmployeeSummaries(ctx, month)
	if err != nil {
		return report.CSVExport{}, err
	}

	return report.CSVExport{
		Filename: fmt.Sprintf("payment-summary-%04d-%02d.csv", month.Year, int(month.Month)),
		Content:  buildCSV(month.Days(), summaries),
	}, nil
}

// ========== AGGREGATION ==========

// buildMonthlySummary rolls a month's payment set up into the dashboard
// totals. Total possible payout counts every employee at their daily rate
// for every calendar day of the month.
func buildMonthlySummary(month payment.Month, employees []employee.Employee, payments []payment.Payment) report.MonthlySummary {
	days := month.Days()

	var totalAmount int64
	for _, emp := range employees {
		totalAmount += emp.Position.DailyRate() * int64(days)
	}

	var paidAmount int64
	for _, p := range payments {
		if p.Status == payment.StatusPaid {
			paidAmount += p.Amount
		}
	}

	return report.MonthlySummary{
		Month:        month.String(),
		DaysInMonth:  days,
		TotalAmount:  totalAmount,
		PaidAmount:   paidAmount,
		UnpaidAmount: totalAmount - paidAmount,
	}
}

// buildEmployeeSummaries produces one export row per employee. An employee
// with no records in the month is fully unpaid for every day of it.
func buildEmployeeSummaries(month payment.Month, employees []employee.Employee, payments []payment.Payment) ([]report.EmployeeSummary, error) {
	byEmployee := make(map[string][]payment.Payment, len(employees))
	for _, p := range payments {
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], p)
	}

	summaries := make([]report.EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		attendance, err := payment.CalculateMonthlyAttendance(emp.Position, month, byEmployee[emp.ID])
		if err != nil {
			return nil, fmt.Errorf("summary for employee %s: %w", emp.ID, err)
		}

		summaries = append(summaries, report.EmployeeSummary{
			EmployeeName: emp.Name,
			Position:     string(emp.Position),
			DailyRate:    emp.Position.DailyRate(),
			PaidDays:     attendance.PaidDays,
			LeaveDays:    attendance.LeaveDays,
			UnpaidDays:   attendance.UnpaidDays,
			TotalAmount:  int64(attendance.PaidDays) * emp.Position.DailyRate(),
		})
	}

	return summaries, nil
}

// ========== CSV ==========

// buildCSV serializes the rows with plain comma joins. The format contract
// has no quoting, so fields are sanitized instead of escaped.
func buildCSV(daysInMonth int, summaries []report.EmployeeSummary) []byte {
	var b strings.Builder

	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')

	for _, s := range summaries {
		row := []string{
			sanitizeField(s.EmployeeName),
			sanitizeField(s.Position),
			strconv.FormatInt(s.DailyRate, 10),
			strconv.Itoa(s.PaidDays),
			strconv.Itoa(s.LeaveDays),
			strconv.Itoa(s.UnpaidDays),
			strconv.Itoa(daysInMonth),
			strconv.FormatInt(s.TotalAmount, 10),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

// sanitizeField strips the characters the unquoted format cannot carry.
func sanitizeField(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
