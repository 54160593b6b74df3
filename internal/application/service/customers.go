package service

import (
	"context"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"github.com/shoplite/shopmanager-api/pkg/search"
)

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
}

// CreateCustomer creates a new customer. When the backend is unreachable the
// customer is kept locally and the call still succeeds.
func (s *DataService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Phone == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "phone is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customer, err := s.customers.Create(ctx, entity.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// UpdateCustomer merges the set fields of input into the customer with the
// given identity.
func (s *DataService) UpdateCustomer(ctx context.Context, id string, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customers.Update(ctx, id, func(c *entity.Customer) {
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.Phone != nil {
			c.Phone = *input.Phone
		}
		if input.Email != nil {
			c.Email = input.Email
		}
		if input.Address != nil {
			c.Address = input.Address
		}
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer soft-deletes a customer
func (s *DataService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

// GetCustomerByID returns the customer with the given identity. The lookup
// is synchronous and side-effect free.
func (s *DataService) GetCustomerByID(id string) (*entity.Customer, error) {
	customer, ok := s.customers.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFoundError("customer")
	}
	return &customer, nil
}

// SearchCustomers returns the customers matching query by name, email or
// phone. A blank query returns every active customer.
func (s *DataService) SearchCustomers(query string) []entity.Customer {
	return search.Filter(s.customers.Snapshot(), query, func(c entity.Customer) []string {
		fields := []string{c.Name, c.Phone}
		if c.Email != nil {
			fields = append(fields, *c.Email)
		}
		return fields
	})
}
