package http

import (
	"log/slog"
	"net/http"

	"github.com/transkotakita/payroll-backend-go/internal/domain/report"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	PaymentSummaryCSV(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// PaymentSummaryCSV implements ReportHandler. It streams the monthly
// per-employee breakdown as a CSV attachment.
func (h *ReportHandlerImpl) PaymentSummaryCSV(w http.ResponseWriter, r *http.Request) {
	month, err := monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportCSV(r.Context(), month)
	if err != nil {
		slog.Error("Export CSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Download(w, export.Filename, "text/csv", export.Content)
}
