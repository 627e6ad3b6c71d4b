package employee

import "context"

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// Create registers a new employee
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]EmployeeResponse, error)

	// ListSupervisors retrieves employees eligible to attest payments
	ListSupervisors(ctx context.Context) ([]EmployeeResponse, error)

	// Update changes an employee's name and position
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee; refused while payment records exist
	Delete(ctx context.Context, id string) error
}
