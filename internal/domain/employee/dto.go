package employee

import (
	"github.com/transkotakita/payroll-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	JoinDate string `json:"join_date,omitempty"` // "YYYY-MM-DD", defaults to today
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !Position(r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of the known positions",
		})
	}

	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !Position(r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of the known positions",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	DailyRate int64  `json:"daily_rate"`
	JoinDate  string `json:"join_date"`
}
