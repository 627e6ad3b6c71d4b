package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]Employee, error)

	// ListByPositions retrieves employees holding any of the given
	// positions, ordered by name. Used for the supervisor picker.
	ListByPositions(ctx context.Context, positions []Position) ([]Employee, error)

	// Update updates name and position
	Update(ctx context.Context, employee Employee) error

	// Delete removes an employee by ID
	Delete(ctx context.Context, id string) error

	// HasPayments reports whether any payment record references the employee
	HasPayments(ctx context.Context, id string) (bool, error)
}
