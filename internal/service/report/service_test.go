package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
)

// ========== FAKES ==========

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}

type stubPaymentRepo struct {
	payment.PaymentRepository
	payments []payment.Payment
}

func (s *stubPaymentRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range s.payments {
		if !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

// June 2025: 30 days.
var june = payment.Month{Year: 2025, Month: time.June}

func juneDay(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func paidDays(employeeID string, amount int64, days ...int) []payment.Payment {
	var out []payment.Payment
	for _, d := range days {
		out = append(out, payment.Payment{
			EmployeeID: employeeID,
			Date:       juneDay(d),
			Amount:     amount,
			Status:     payment.StatusPaid,
		})
	}
	return out
}

func leaveDays(employeeID string, days ...int) []payment.Payment {
	var out []payment.Payment
	for _, d := range days {
		out = append(out, payment.Payment{
			EmployeeID: employeeID,
			Date:       juneDay(d),
			Status:     payment.StatusPaid,
			IsLeave:    true,
		})
	}
	return out
}

// ========== TESTS ==========

func TestMonthlySummary(t *testing.T) {
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Name: "Badu", Position: employee.PositionKaryawan},
		{ID: "emp-2", Name: "Sari", Position: employee.PositionEksekutif},
	}}
	payRepo := &stubPaymentRepo{payments: paidDays("emp-1", 50000, 1, 2, 3)}

	svc := NewReportService(empRepo, payRepo)
	summary, err := svc.MonthlySummary(context.Background(), june)
	require.NoError(t, err)

	assert.Equal(t, "2025-06", summary.Month)
	assert.Equal(t, 30, summary.DaysInMonth)
	// 30 days * (50000 + 25000)
	assert.Equal(t, int64(2250000), summary.TotalAmount)
	assert.Equal(t, int64(150000), summary.PaidAmount)
	assert.Equal(t, int64(2100000), summary.UnpaidAmount)
}

func TestEmployeeSummariesZeroRecordsFullyUnpaid(t *testing.T) {
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Name: "Badu", Position: employee.PositionKaryawan},
	}}
	payRepo := &stubPaymentRepo{}

	svc := NewReportService(empRepo, payRepo)
	summaries, err := svc.EmployeeSummaries(context.Background(), june)
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, 0, s.PaidDays)
	assert.Equal(t, 0, s.LeaveDays)
	assert.Equal(t, 30, s.UnpaidDays)
	assert.Equal(t, int64(0), s.TotalAmount)
}

func TestExportCSV(t *testing.T) {
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Name: "Badu", Position: employee.PositionKaryawan},
	}}

	var records []payment.Payment
	records = append(records, paidDays("emp-1", 50000, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)...)
	records = append(records, leaveDays("emp-1", 11, 12)...)
	payRepo := &stubPaymentRepo{payments: records}

	svc := NewReportService(empRepo, payRepo)
	export, err := svc.ExportCSV(context.Background(), june)
	require.NoError(t, err)

	assert.Equal(t, "payment-summary-2025-06.csv", export.Filename)

	lines := strings.Split(strings.TrimRight(string(export.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"Employee Name,Position,Daily Rate,Total Paid Days,Leave Days,Unpaid Days,Total Working Days,Total Amount",
		lines[0])
	// 10 paid + 2 leave in a 30-day month: 18 unpaid, total 10 * 50000
	assert.Equal(t, "Badu,karyawan,50000,10,2,18,30,500000", lines[1])
}

func TestExportCSVSanitizesNames(t *testing.T) {
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Name: "Badu, Jr.\nSenior", Position: employee.PositionKaryawan},
	}}
	payRepo := &stubPaymentRepo{}

	svc := NewReportService(empRepo, payRepo)
	export, err := svc.ExportCSV(context.Background(), june)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(export.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 8, "commas in names must not add columns")
	assert.Equal(t, "Badu  Jr. Senior", fields[0])
}

func TestExportCSVEmptyRegistry(t *testing.T) {
	svc := NewReportService(&stubEmployeeRepo{}, &stubPaymentRepo{})
	export, err := svc.ExportCSV(context.Background(), june)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(export.Content), "\n"), "\n")
	require.Len(t, lines, 1, "header only")
}
