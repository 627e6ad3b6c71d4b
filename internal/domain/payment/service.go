package payment

import "context"

// PaymentService defines business logic for payment recording and history
type PaymentService interface {
	// Record validates and commits a recording request: single day or
	// inclusive range, payment or leave. Leave-supersede cleanup and the
	// inserts run in one transaction; webhook notification failure is
	// reported in the response, never rolled back.
	Record(ctx context.Context, req RecordPaymentRequest) (RecordPaymentResponse, error)

	// List retrieves the payment history for a month
	List(ctx context.Context, filter HistoryFilter) ([]PaymentResponse, error)

	// Update flips a record's leave flag and recomputes its amount
	Update(ctx context.Context, req UpdatePaymentRequest) (PaymentResponse, error)

	// Delete removes a single record from the history view
	Delete(ctx context.Context, id string) error

	// MonthlyAttendance computes one employee's day counts and totals
	// for a month
	MonthlyAttendance(ctx context.Context, employeeID string, month Month) (MonthlyAttendanceResponse, error)
}

// Notifier delivers the payment-recorded event to the external webhook.
// Delivery is fire-and-forget from the recorder's perspective.
type Notifier interface {
	PaymentRecorded(ctx context.Context, n Notification) error
}

// Notification is the webhook payload for a committed recording.
type Notification struct {
	SupervisorName     string
	SupervisorPosition string
	EmployeeName       string
	EmployeePosition   string
	Amount             int64 // total over all recorded days
	Date               string
	EndDate            string // empty for a single-day recording
	DaysCount          int
	IsLeave            bool
}
