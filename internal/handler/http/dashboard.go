package http

import (
	"log/slog"
	"net/http"

	"github.com/transkotakita/payroll-backend-go/internal/domain/report"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	reportService report.ReportService
}

func NewDashboardHandler(reportService report.ReportService) DashboardHandler {
	return &DashboardHandlerImpl{
		reportService: reportService,
	}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month, err := monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.reportService.MonthlySummary(r.Context(), month)
	if err != nil {
		slog.Error("Dashboard summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
