package service

import (
	"context"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"github.com/shoplite/shopmanager-api/pkg/search"
)

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	Name     string
	WhatsApp string
	Email    *string
	Role     enum.EmployeeRole
	Age      int
}

// CreateEmployee creates a new employee
func (s *DataService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.WhatsApp == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "whatsapp", Message: "whatsapp is required"})
	}
	if !input.Role.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "role", Message: "role must be admin, manager or seller"})
	}
	if input.Age < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "age", Message: "age must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	employee, err := s.employees.Create(ctx, entity.Employee{
		Name:     input.Name,
		WhatsApp: input.WhatsApp,
		Email:    input.Email,
		Role:     input.Role,
		Age:      input.Age,
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	Name     *string
	WhatsApp *string
	Email    *string
	Role     *enum.EmployeeRole
	Age      *int
}

// UpdateEmployee merges the set fields of input into the employee with the
// given identity.
func (s *DataService) UpdateEmployee(ctx context.Context, id string, input *UpdateEmployeeInput) (*entity.Employee, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "role", Message: "role must be admin, manager or seller"},
		})
	}

	employee, err := s.employees.Update(ctx, id, func(e *entity.Employee) {
		if input.Name != nil {
			e.Name = *input.Name
		}
		if input.WhatsApp != nil {
			e.WhatsApp = *input.WhatsApp
		}
		if input.Email != nil {
			e.Email = input.Email
		}
		if input.Role != nil {
			e.Role = *input.Role
		}
		if input.Age != nil {
			e.Age = *input.Age
		}
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// DeleteEmployee soft-deletes an employee
func (s *DataService) DeleteEmployee(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

// GetEmployeeByID returns the employee with the given identity. The lookup
// is synchronous and side-effect free.
func (s *DataService) GetEmployeeByID(id string) (*entity.Employee, error) {
	employee, ok := s.employees.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFoundError("employee")
	}
	return &employee, nil
}

// SearchEmployees returns the employees matching query by name, contact or
// email. A blank query returns every active employee.
func (s *DataService) SearchEmployees(query string) []entity.Employee {
	return search.Filter(s.employees.Snapshot(), query, func(e entity.Employee) []string {
		fields := []string{e.Name, e.WhatsApp}
		if e.Email != nil {
			fields = append(fields, *e.Email)
		}
		return fields
	})
}
