package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListSupervisors(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	paymentService  payment.PaymentService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, paymentService payment.PaymentService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		paymentService:  paymentService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// ListSupervisors implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListSupervisors(w http.ResponseWriter, r *http.Request) {
	supervisors, err := h.employeeService.ListSupervisors(r.Context())
	if err != nil {
		slog.Error("ListSupervisors service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, supervisors)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Call service
	updated, err := h.employeeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// Attendance implements EmployeeHandler. It serves the per-employee monthly
// attendance breakdown behind GET /employees/{id}/attendance?month=YYYY-MM.
func (h *EmployeeHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	month, err := monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	attendance, err := h.paymentService.MonthlyAttendance(r.Context(), id, month)
	if err != nil {
		slog.Error("Attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance)
}
