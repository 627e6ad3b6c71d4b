package report

import (
	"context"

	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
)

// ReportService defines the monthly roll-ups for the dashboard and export
type ReportService interface {
	// MonthlySummary computes the dashboard totals for a month
	MonthlySummary(ctx context.Context, month payment.Month) (MonthlySummary, error)

	// EmployeeSummaries computes the per-employee breakdown for a month,
	// one row per employee, including employees with zero records
	EmployeeSummaries(ctx context.Context, month payment.Month) ([]EmployeeSummary, error)

	// ExportCSV serializes the per-employee breakdown for download
	ExportCSV(ctx context.Context, month payment.Month) (CSVExport, error)
}
