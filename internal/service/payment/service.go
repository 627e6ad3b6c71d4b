package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
)

type PaymentServiceImpl struct {
	paymentRepo  payment.PaymentRepository
	employeeRepo employee.EmployeeRepository
	notifier     payment.Notifier
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	employeeRepo employee.EmployeeRepository,
	notifier payment.Notifier,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
	}
}

// Record implements payment.PaymentService.
//
// The leave-cancellation deletes and the inserts run in one transaction:
// a real payment must supersede a previously marked leave day before its
// insert, and a failure anywhere leaves no partial batch behind.
func (s *PaymentServiceImpl) Record(ctx context.Context, req payment.RecordPaymentRequest) (payment.RecordPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.RecordPaymentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payment.RecordPaymentResponse{}, err
	}

	supervisor, err := s.employeeRepo.GetByID(ctx, req.SupervisorID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return payment.RecordPaymentResponse{}, employee.ErrSupervisorNotFound
		}
		return payment.RecordPaymentResponse{}, err
	}

	if supervisor.ID == emp.ID {
		return payment.RecordPaymentResponse{}, payment.ErrSelfSupervision
	}

	// Pay-ineligible positions may still be marked on leave; the amount
	// is zero either way.
	if !req.IsLeave && !emp.Position.PayEligible() {
		return payment.RecordPaymentResponse{}, payment.ErrPositionNotEligible
	}

	var amount int64
	if !req.IsLeave {
		amount = emp.Position.DailyRate()
	}

	dates := req.Dates()
	records := make([]payment.Payment, 0, len(dates))
	for _, date := range dates {
		records = append(records, payment.Payment{
			ID:         uuid.Must(uuid.NewV7()).String(),
			EmployeeID: emp.ID,
			Date:       date,
			Amount:     amount,
			Status:     payment.StatusPaid,
			IsLeave:    req.IsLeave,
		})
	}

	if err := s.paymentRepo.RecordBatch(ctx, records, !req.IsLeave); err != nil {
		return payment.RecordPaymentResponse{}, err
	}

	resp := payment.RecordPaymentResponse{
		Payments:         mapToResponses(records),
		DaysCount:        len(dates),
		TotalAmount:      amount * int64(len(dates)),
		NotificationSent: true,
	}

	// The records are committed; a webhook failure is a soft warning only.
	notification := payment.Notification{
		SupervisorName:     supervisor.Name,
		SupervisorPosition: string(supervisor.Position),
		EmployeeName:       emp.Name,
		EmployeePosition:   string(emp.Position),
		Amount:             resp.TotalAmount,
		Date:               req.Date,
		EndDate:            req.EndDate,
		DaysCount:          len(dates),
		IsLeave:            req.IsLeave,
	}
	if err := s.notifier.PaymentRecorded(ctx, notification); err != nil {
		slog.Warn("payment notification failed", "error", err, "employee_id", emp.ID)
		resp.NotificationSent = false
		resp.NotificationError = err.Error()
	}

	return resp, nil
}

// List implements payment.PaymentService.
func (s *PaymentServiceImpl) List(ctx context.Context, filter payment.HistoryFilter) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapToResponses(payments), nil
}

// Update implements payment.PaymentService. The amount is recomputed from
// the employee's current position, exactly as on initial recording.
func (s *PaymentServiceImpl) Update(ctx context.Context, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	p, err := s.paymentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	var amount int64
	if !req.IsLeave {
		amount = emp.Position.DailyRate()
	}

	if err := s.paymentRepo.Update(ctx, p.ID, req.IsLeave, amount); err != nil {
		return payment.PaymentResponse{}, err
	}

	p.IsLeave = req.IsLeave
	p.Amount = amount

	return mapToResponse(p), nil
}

// Delete implements payment.PaymentService.
func (s *PaymentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.paymentRepo.Delete(ctx, id)
}

// MonthlyAttendance implements payment.PaymentService.
func (s *PaymentServiceImpl) MonthlyAttendance(ctx context.Context, employeeID string, month payment.Month) (payment.MonthlyAttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payment.MonthlyAttendanceResponse{}, err
	}

	payments, err := s.paymentRepo.ListByEmployeeAndDateRange(ctx, employeeID, month.Start(), month.End())
	if err != nil {
		return payment.MonthlyAttendanceResponse{}, err
	}

	attendance, err := payment.CalculateMonthlyAttendance(emp.Position, month, payments)
	if err != nil {
		return payment.MonthlyAttendanceResponse{}, err
	}

	return payment.MonthlyAttendanceResponse{
		EmployeeID:   emp.ID,
		Month:        month.String(),
		DaysInMonth:  month.Days(),
		PaidDays:     attendance.PaidDays,
		LeaveDays:    attendance.LeaveDays,
		UnpaidDays:   attendance.UnpaidDays,
		PaidAmount:   attendance.PaidAmount,
		UnpaidAmount: attendance.UnpaidAmount,
	}, nil
}

// ========== HELPERS ==========

func mapToResponse(p payment.Payment) payment.PaymentResponse {
	resp := payment.PaymentResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.Date.Format("2006-01-02"),
		Amount:     p.Amount,
		Status:     string(p.Status),
		IsLeave:    p.IsLeave,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeePosition != nil {
		resp.EmployeePosition = *p.EmployeePosition
	}
	return resp
}

func mapToResponses(payments []payment.Payment) []payment.PaymentResponse {
	result := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapToResponse(p))
	}
	return result
}
