package store

import (
	"time"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SeedCustomers returns the sample customers the customer store falls back
// to when the backend is unreachable.
func SeedCustomers(now time.Time) []entity.Customer {
	return []entity.Customer{
		{ID: "seed-customer-2", Name: "Maria Oliveira", Phone: "11988776655", Email: strPtr("maria@example.com"), CreatedAt: now, UpdatedAt: now},
		{ID: "seed-customer-1", Name: "João Silva", Phone: "11999887766", Email: strPtr("joao@example.com"), CreatedAt: now, UpdatedAt: now},
	}
}

// SeedProducts returns the sample products for the product store.
func SeedProducts(now time.Time) []entity.Product {
	return []entity.Product{
		{ID: "seed-product-2", Name: "iPhone 11 Battery", Price: 180, Stock: intPtr(8), CreatedAt: now, UpdatedAt: now},
		{ID: "seed-product-1", Name: "iPhone XR Screen", Price: 300, Stock: intPtr(5), CreatedAt: now, UpdatedAt: now},
	}
}

// SeedEmployees returns the sample employees for the employee store.
func SeedEmployees(now time.Time) []entity.Employee {
	return []entity.Employee{
		{ID: "seed-employee-2", Name: "Ana Lima", WhatsApp: "11977665544", Role: enum.EmployeeRoleSeller, Age: 27, CreatedAt: now, UpdatedAt: now},
		{ID: "seed-employee-1", Name: "Carlos Souza", WhatsApp: "11966554433", Role: enum.EmployeeRoleManager, Age: 34, CreatedAt: now, UpdatedAt: now},
	}
}

// SeedReceipts returns the sample receipts for the receipt store. They
// reference the seed customers, employees and products above.
func SeedReceipts(now time.Time) []entity.Receipt {
	return []entity.Receipt{
		{
			ID:         "seed-receipt-2",
			CustomerID: "seed-customer-2",
			EmployeeID: "seed-employee-2",
			Items: []entity.LineItem{
				{ProductID: "seed-product-2", Quantity: 1, UnitPrice: 180},
			},
			TotalAmount:    180,
			PaymentMethod:  enum.PaymentMethodCash,
			Installments:   1,
			WarrantyMonths: 1,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:         "seed-receipt-1",
			CustomerID: "seed-customer-1",
			EmployeeID: "seed-employee-1",
			Items: []entity.LineItem{
				{ProductID: "seed-product-1", Quantity: 1, UnitPrice: 300},
			},
			TotalAmount:    300,
			PaymentMethod:  enum.PaymentMethodCreditCard,
			Installments:   1,
			WarrantyMonths: 3,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}
