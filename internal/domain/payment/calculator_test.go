package payment

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
)

// June 2025 is a 30-day month.
var testMonth = Month{2025, time.June}

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateMonthlyAttendanceNoRecords(t *testing.T) {
	result, err := CalculateMonthlyAttendance(employee.PositionKaryawan, testMonth, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.PaidDays)
	assert.Equal(t, 0, result.LeaveDays)
	assert.Equal(t, 30, result.UnpaidDays)
	assert.Equal(t, int64(0), result.PaidAmount)
	assert.Equal(t, int64(30*50000), result.UnpaidAmount)
}

func TestCalculateMonthlyAttendanceSinglePaidDay(t *testing.T) {
	payments := []Payment{
		{EmployeeID: "badu", Date: day(15), Amount: 50000, Status: StatusPaid},
	}

	result, err := CalculateMonthlyAttendance(employee.PositionKaryawan, testMonth, payments)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PaidDays)
	assert.Equal(t, 0, result.LeaveDays)
	assert.Equal(t, 29, result.UnpaidDays)
	assert.Equal(t, int64(50000), result.PaidAmount)
}

func TestCalculateMonthlyAttendanceDayFlippedToLeave(t *testing.T) {
	payments := []Payment{
		{EmployeeID: "badu", Date: day(15), Amount: 0, Status: StatusPaid, IsLeave: true},
	}

	result, err := CalculateMonthlyAttendance(employee.PositionKaryawan, testMonth, payments)
	require.NoError(t, err)

	assert.Equal(t, 0, result.PaidDays)
	assert.Equal(t, 1, result.LeaveDays)
	assert.Equal(t, 29, result.UnpaidDays)
	assert.Equal(t, int64(0), result.PaidAmount)
}

func TestCalculateMonthlyAttendanceMixed(t *testing.T) {
	payments := []Payment{
		{Date: day(1), Amount: 50000},
		{Date: day(2), Amount: 50000},
		{Date: day(3), IsLeave: true},
	}

	result, err := CalculateMonthlyAttendance(employee.PositionKaryawan, testMonth, payments)
	require.NoError(t, err)

	assert.Equal(t, 2, result.PaidDays)
	assert.Equal(t, 1, result.LeaveDays)
	assert.Equal(t, 27, result.UnpaidDays)
	assert.Equal(t, int64(100000), result.PaidAmount)
	assert.Equal(t, int64(27*50000), result.UnpaidAmount)
}

func TestCalculateMonthlyAttendanceIgnoresOtherMonths(t *testing.T) {
	payments := []Payment{
		{Date: day(10), Amount: 50000},
		{Date: time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), Amount: 50000},
		{Date: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), Amount: 50000},
	}

	result, err := CalculateMonthlyAttendance(employee.PositionKaryawan, testMonth, payments)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PaidDays)
	assert.Equal(t, int64(50000), result.PaidAmount)
}

func TestCalculateMonthlyAttendanceDuplicateDate(t *testing.T) {
	payments := []Payment{
		{Date: day(10), Amount: 50000},
		{Date: day(10), Amount: 50000},
	}

	_, err := CalculateMonthlyAttendance(employee.PositionKaryawan, testMonth, payments)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateRecord))
}
