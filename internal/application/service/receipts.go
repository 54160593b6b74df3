package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"github.com/shoplite/shopmanager-api/pkg/search"
)

// LineItemInput is one product/quantity/price tuple of a new receipt
type LineItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// CreateReceiptInput represents the create receipt input. Date is optional;
// zero means the current time. TotalAmount, when set, takes precedence over
// the sum of line values and is fixed for the lifetime of the receipt.
type CreateReceiptInput struct {
	CustomerID     string
	EmployeeID     string
	Items          []LineItemInput
	PaymentMethod  enum.PaymentMethod
	Installments   int
	WarrantyMonths int
	Notes          *string
	TotalAmount    *float64
	Date           time.Time
}

// CreateReceipt creates a new receipt. Receipts are immutable after this
// point except for deletion.
func (s *DataService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if err := s.validateReceipt(input); err != nil {
		return nil, err
	}

	if input.Installments == 0 {
		input.Installments = 1
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	receipt := entity.Receipt{
		CustomerID:     input.CustomerID,
		EmployeeID:     input.EmployeeID,
		Items:          items,
		PaymentMethod:  input.PaymentMethod,
		Installments:   input.Installments,
		WarrantyMonths: input.WarrantyMonths,
		Notes:          input.Notes,
		CreatedAt:      input.Date,
	}
	if input.TotalAmount != nil {
		receipt.TotalAmount = *input.TotalAmount
	} else {
		receipt.TotalAmount = receipt.ComputedTotal()
	}

	created, err := s.receipts.Create(ctx, receipt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DataService) validateReceipt(input *CreateReceiptInput) error {
	var fieldErrors []apperror.FieldError

	if input.CustomerID == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_id", Message: "customer_id is required"})
	} else if _, ok := s.customers.GetByID(input.CustomerID); !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_id", Message: "customer does not exist"})
	}

	if input.EmployeeID == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "employee_id", Message: "employee_id is required"})
	} else if _, ok := s.employees.GetByID(input.EmployeeID); !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "employee_id", Message: "employee does not exist"})
	}

	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range input.Items {
		field := fmt.Sprintf("items[%d]", i)
		if _, ok := s.products.GetByID(item.ProductID); !ok {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".product_id", Message: "product does not exist"})
		}
		if item.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".quantity", Message: "quantity must be at least 1"})
		}
		if item.UnitPrice < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".unit_price", Message: "unit_price must not be negative"})
		}
	}

	if !input.PaymentMethod.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_method", Message: "payment_method must be cash, credit_card, debit_card or pix"})
	}
	if input.Installments < 0 || (input.Installments > 1 && input.PaymentMethod != enum.PaymentMethodCreditCard) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "installments", Message: "installments require credit_card payment"})
	}
	if input.WarrantyMonths < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "warranty_months", Message: "warranty_months must not be negative"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// DeleteReceipt soft-deletes a receipt
func (s *DataService) DeleteReceipt(ctx context.Context, id string) error {
	return s.receipts.Delete(ctx, id)
}

// GetReceiptByID returns the receipt with the given identity
func (s *DataService) GetReceiptByID(id string) (*entity.Receipt, error) {
	receipt, ok := s.receipts.GetByID(id)
	if !ok {
		return nil, apperror.NewNotFoundError("receipt")
	}
	return &receipt, nil
}

// SearchReceipts returns the receipts matching query by identity or by the
// resolved customer name. A blank query returns every active receipt.
func (s *DataService) SearchReceipts(query string) []entity.Receipt {
	return search.Filter(s.receipts.Snapshot(), query, func(r entity.Receipt) []string {
		fields := []string{r.ID}
		if customer, ok := s.customers.GetByID(r.CustomerID); ok {
			fields = append(fields, customer.Name)
		}
		return fields
	})
}
