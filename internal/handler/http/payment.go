package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{
		paymentService: paymentService,
	}
}

// Record implements PaymentHandler.
func (h *PaymentHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq payment.RecordPaymentRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	recorded, err := h.paymentService.Record(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded", recorded)
}

// List implements PaymentHandler. The history is scoped to one month and
// optionally one employee via ?month=YYYY-MM&employee_id=....
func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, err := monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := payment.HistoryFilter{Month: month}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	payments, err := h.paymentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// Update implements PaymentHandler.
func (h *PaymentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq payment.UpdatePaymentRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Call service
	updated, err := h.paymentService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment updated", updated)
}

// Delete implements PaymentHandler.
func (h *PaymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.paymentService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted", nil)
}
