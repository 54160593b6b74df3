package service

import (
	"context"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"github.com/shoplite/shopmanager-api/pkg/search"
)

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string
	Price       float64
	Stock       *int
	Description *string
}

// CreateProduct creates a new product
func (s *DataService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "price must not be negative"})
	}
	if input.Stock != nil && *input.Stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "stock must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product, err := s.products.Create(ctx, entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name        *string
	Price       *float64
	Stock       *int
	Description *string
}

// UpdateProduct merges the set fields of input into the product with the
// given identity.
func (s *DataService) UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "price must not be negative"},
		})
	}

	product, err := s.products.Update(ctx, id, func(p *entity.Product) {
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Price != nil {
			p.Price = *input.Price
		}
		if input.Stock != nil {
			p.Stock = input.Stock
		}
		if input.Description != nil {
			p.Description = input.Description
		}
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct soft-deletes a product
func (s *DataService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// GetProductByID returns the product with the given identity. The lookup is
// synchronous and side-effect free.
func (s *DataService) GetProductByID(id string) (*entity.Product, error) {
	product, ok := s.products.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFoundError("product")
	}
	return &product, nil
}

// SearchProducts returns the products matching query by name or description.
// A blank query returns every active product.
func (s *DataService) SearchProducts(query string) []entity.Product {
	return search.Filter(s.products.Snapshot(), query, func(p entity.Product) []string {
		fields := []string{p.Name}
		if p.Description != nil {
			fields = append(fields, *p.Description)
		}
		return fields
	})
}
