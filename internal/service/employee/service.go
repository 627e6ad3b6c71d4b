package employee

import (
	"context"
	"time"

	"github.com/transkotakita/payroll-backend-go/internal/domain/employee"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate := time.Now()
	if req.JoinDate != "" {
		parsed, _ := validator.IsValidDate(req.JoinDate)
		joinDate = parsed
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:     req.Name,
		Position: employee.Position(req.Position),
		JoinDate: joinDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return mapToResponses(employees), nil
}

// ListSupervisors implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListSupervisors(ctx context.Context) ([]employee.EmployeeResponse, error) {
	supervisors, err := s.employeeRepo.ListByPositions(ctx, employee.SupervisorPositions)
	if err != nil {
		return nil, err
	}

	return mapToResponses(supervisors), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Name = req.Name
	emp.Position = employee.Position(req.Position)

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

// Delete implements employee.EmployeeService. Deletion is refused while
// any payment record references the employee; the check runs here so the
// refusal does not depend on a store-side constraint alone.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasPayments, err := s.employeeRepo.HasPayments(ctx, id)
	if err != nil {
		return err
	}
	if hasPayments {
		return employee.ErrEmployeeHasPayments
	}

	return s.employeeRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Position:  string(emp.Position),
		DailyRate: emp.Position.DailyRate(),
		JoinDate:  emp.JoinDate.Format("2006-01-02"),
	}
}

func mapToResponses(employees []employee.Employee) []employee.EmployeeResponse {
	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}
	return result
}
