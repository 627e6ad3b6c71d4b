package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/database"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations,
// raised by the (employee_id, date) index on payments.
const pgUniqueViolation = "23505"

type paymentRepository struct {
	db *database.DB
}

// CreateBatch implements payment.PaymentRepository.
func (r *paymentRepository) CreateBatch(ctx context.Context, payments []payment.Payment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (id, employee_id, date, amount, status, is_leave)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, p := range payments {
		if _, err := q.Exec(ctx, query, p.ID, p.EmployeeID, p.Date, p.Amount, p.Status, p.IsLeave); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return fmt.Errorf("payment for %s on %s: %w",
					p.EmployeeID, p.Date.Format("2006-01-02"), payment.ErrDuplicateRecord)
			}
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	return nil
}

// RecordBatch implements payment.PaymentRepository. The supersede deletes
// and the inserts commit together or not at all; the recorder's per-date
// ordering requirement (delete before insert) holds inside the
// transaction.
func (r *paymentRepository) RecordBatch(ctx context.Context, payments []payment.Payment, cancelLeave bool) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if cancelLeave {
			for _, p := range payments {
				if err := r.DeleteLeave(txCtx, p.EmployeeID, p.Date); err != nil {
					return err
				}
			}
		}

		return r.CreateBatch(txCtx, payments)
	})
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepository) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.date, p.amount, p.status, p.is_leave,
			   p.created_at, p.updated_at,
			   e.name AS employee_name,
			   e.position AS employee_position
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payment.Payment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.Amount, &p.Status, &p.IsLeave,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeePosition,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment by ID: %w", err)
	}

	return p, nil
}

// ListByDateRange implements payment.PaymentRepository.
func (r *paymentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, amount, status, is_leave, created_at, updated_at
		FROM payments
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by date range: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByEmployeeAndDateRange implements payment.PaymentRepository.
func (r *paymentRepository) ListByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, amount, status, is_leave, created_at, updated_at
		FROM payments
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for employee: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

// List implements payment.PaymentRepository.
func (r *paymentRepository) List(ctx context.Context, filter payment.HistoryFilter) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "p.date >= $1 AND p.date <= $2"
	args := []interface{}{filter.Month.Start(), filter.Month.End()}
	argIdx := 3

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.date, p.amount, p.status, p.is_leave,
			   p.created_at, p.updated_at,
			   e.name AS employee_name,
			   e.position AS employee_position
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.date DESC, e.name ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment history: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date, &p.Amount, &p.Status, &p.IsLeave,
			&p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeePosition,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// Update implements payment.PaymentRepository.
func (r *paymentRepository) Update(ctx context.Context, id string, isLeave bool, amount int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments
		SET is_leave = $1, amount = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, isLeave, amount, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payments WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}

// DeleteLeave implements payment.PaymentRepository. Zero rows affected is
// fine: there was no leave record to supersede.
func (r *paymentRepository) DeleteLeave(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payments
		WHERE employee_id = $1 AND date = $2 AND is_leave = TRUE
	`

	if _, err := q.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}

	return nil
}

func scanPayments(rows pgx.Rows) ([]payment.Payment, error) {
	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date, &p.Amount, &p.Status, &p.IsLeave,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}
