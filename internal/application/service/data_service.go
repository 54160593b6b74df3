package service

import (
	"context"
	"time"

	"github.com/shoplite/shopmanager-api/internal/application/report"
	"github.com/shoplite/shopmanager-api/internal/application/store"
	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/internal/domain/gateway"
)

// Store aliases keep the generic instantiations in one place.
type (
	CustomerStore = store.Store[entity.Customer, *entity.Customer]
	ProductStore  = store.Store[entity.Product, *entity.Product]
	EmployeeStore = store.Store[entity.Employee, *entity.Employee]
	ReceiptStore  = store.Store[entity.Receipt, *entity.Receipt]
)

// DataService composes the four entity stores into the single surface the
// presentation layer consumes. It exclusively owns the stores and their
// fallback sets; nothing else mutates them.
type DataService struct {
	customers *CustomerStore
	products  *ProductStore
	employees *EmployeeStore
	receipts  *ReceiptStore
}

// NewDataService wires one store per entity type over the given gateways.
// Each store gets its own freshly seeded fallback set.
func NewDataService(
	customersGW gateway.Gateway[entity.Customer],
	productsGW gateway.Gateway[entity.Product],
	employeesGW gateway.Gateway[entity.Employee],
	receiptsGW gateway.Gateway[entity.Receipt],
) *DataService {
	now := time.Now()
	return &DataService{
		customers: store.New("customer", customersGW, store.NewFallbackSet[entity.Customer](store.SeedCustomers(now)...)),
		products:  store.New("product", productsGW, store.NewFallbackSet[entity.Product](store.SeedProducts(now)...)),
		employees: store.New("employee", employeesGW, store.NewFallbackSet[entity.Employee](store.SeedEmployees(now)...)),
		receipts:  store.New("receipt", receiptsGW, store.NewFallbackSet[entity.Receipt](store.SeedReceipts(now)...)),
	}
}

// Load refreshes every store from its gateway. Gateway failures are absorbed
// into the stores' fallback data and error slots; Load itself never fails.
func (s *DataService) Load(ctx context.Context) {
	s.customers.Load(ctx)
	s.products.Load(ctx)
	s.employees.Load(ctx)
	s.receipts.Load(ctx)
}

// GenerateReport aggregates the receipts created inside [start, end] into a
// sales report, resolving names against the current snapshots.
func (s *DataService) GenerateReport(start, end time.Time) *report.Report {
	lookups := report.Lookups{
		CustomerName: func(id string) (string, bool) {
			customer, ok := s.customers.GetByID(id)
			return customer.Name, ok
		},
		ProductName: func(id string) (string, bool) {
			product, ok := s.products.GetByID(id)
			return product.Name, ok
		},
		EmployeeName: func(id string) (string, bool) {
			employee, ok := s.employees.GetByID(id)
			return employee.Name, ok
		},
	}
	return report.Generate(s.receipts.Snapshot(), lookups, start, end)
}

// StoreStatus is the health of one entity store.
type StoreStatus struct {
	Degraded  bool   `json:"degraded"`
	LastError string `json:"last_error,omitempty"`
}

// Status reports per-store degraded mode and unrecovered errors, keyed by
// entity name.
func (s *DataService) Status() map[string]StoreStatus {
	return map[string]StoreStatus{
		"customers": storeStatus(s.customers.Degraded(), s.customers.LastError()),
		"products":  storeStatus(s.products.Degraded(), s.products.LastError()),
		"employees": storeStatus(s.employees.Degraded(), s.employees.LastError()),
		"receipts":  storeStatus(s.receipts.Degraded(), s.receipts.LastError()),
	}
}

// ClearErrors empties every store's error slot.
func (s *DataService) ClearErrors() {
	s.customers.ClearError()
	s.products.ClearError()
	s.employees.ClearError()
	s.receipts.ClearError()
}

func storeStatus(degraded bool, err error) StoreStatus {
	status := StoreStatus{Degraded: degraded}
	if err != nil {
		status.LastError = err.Error()
	}
	return status
}
