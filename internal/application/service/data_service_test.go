package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
	"github.com/shoplite/shopmanager-api/internal/domain/gateway"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"github.com/shoplite/shopmanager-api/pkg/localid"
)

// memGateway is an in-memory backend. With fail set every call reports a
// transport failure, which drives the stores into fallback mode.
type memGateway[T any, PT gateway.Record[T]] struct {
	fail  bool
	items []T
	seq   int
}

func (g *memGateway[T, PT]) transportErr() error {
	return apperror.NewTransportError("test", errors.New("connection refused"))
}

func (g *memGateway[T, PT]) List(ctx context.Context) ([]T, error) {
	if g.fail {
		return nil, g.transportErr()
	}
	return append([]T(nil), g.items...), nil
}

func (g *memGateway[T, PT]) Create(ctx context.Context, item T) (T, error) {
	if g.fail {
		return item, g.transportErr()
	}
	g.seq++
	PT(&item).Stamp(fmt.Sprintf("srv-%d", g.seq), time.Now())
	g.items = append([]T{item}, g.items...)
	return item, nil
}

func (g *memGateway[T, PT]) Update(ctx context.Context, item T) (T, error) {
	if g.fail {
		return item, g.transportErr()
	}
	return item, nil
}

func (g *memGateway[T, PT]) Delete(ctx context.Context, id string) error {
	if g.fail {
		return g.transportErr()
	}
	return nil
}

// newOfflineService builds a service whose backend is unreachable, so every
// store serves its seeded fallback data.
func newOfflineService(t *testing.T) *DataService {
	t.Helper()
	svc := NewDataService(
		&memGateway[entity.Customer, *entity.Customer]{fail: true},
		&memGateway[entity.Product, *entity.Product]{fail: true},
		&memGateway[entity.Employee, *entity.Employee]{fail: true},
		&memGateway[entity.Receipt, *entity.Receipt]{fail: true},
	)
	svc.Load(context.Background())
	return svc
}

func newOnlineService(t *testing.T) *DataService {
	t.Helper()
	svc := NewDataService(
		&memGateway[entity.Customer, *entity.Customer]{},
		&memGateway[entity.Product, *entity.Product]{},
		&memGateway[entity.Employee, *entity.Employee]{},
		&memGateway[entity.Receipt, *entity.Receipt]{},
	)
	svc.Load(context.Background())
	return svc
}

func TestLoadFailureSeedsFallbackData(t *testing.T) {
	svc := newOfflineService(t)

	customers := svc.SearchCustomers("")
	require.Len(t, customers, 2)
	assert.Equal(t, "Maria Oliveira", customers[0].Name)
	assert.Equal(t, "João Silva", customers[1].Name)

	status := svc.Status()
	for name, st := range status {
		assert.True(t, st.Degraded, name)
		assert.NotEmpty(t, st.LastError, name)
	}
}

func TestCreateCustomerOfflineStillSucceeds(t *testing.T) {
	svc := newOfflineService(t)

	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:  "Pedro Santos",
		Phone: "11955443322",
	})

	require.NoError(t, err)
	assert.True(t, localid.IsLocal(customer.ID))

	customers := svc.SearchCustomers("")
	require.Len(t, customers, 3)
	assert.Equal(t, "Pedro Santos", customers[0].Name)
}

func TestCreateCustomerValidatesRequiredFields(t *testing.T) {
	svc := newOfflineService(t)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 2)
}

func TestUpdateCustomerMergesSetFieldsOnly(t *testing.T) {
	svc := newOfflineService(t)
	name := "João S. Silva"

	updated, err := svc.UpdateCustomer(context.Background(), "seed-customer-1", &UpdateCustomerInput{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "João S. Silva", updated.Name)
	assert.Equal(t, "11999887766", updated.Phone)
}

func TestDeleteCustomerExcludesFromSearchAndLookup(t *testing.T) {
	svc := newOfflineService(t)

	require.NoError(t, svc.DeleteCustomer(context.Background(), "seed-customer-1"))

	_, err := svc.GetCustomerByID("seed-customer-1")
	assert.True(t, apperror.IsNotFound(err))
	assert.Len(t, svc.SearchCustomers(""), 1)
}

func TestDeleteUnknownCustomer(t *testing.T) {
	svc := newOfflineService(t)

	err := svc.DeleteCustomer(context.Background(), "nope")

	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateReceiptComputesTotalFromLines(t *testing.T) {
	svc := newOfflineService(t)

	receipt, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		CustomerID: "seed-customer-1",
		EmployeeID: "seed-employee-1",
		Items: []LineItemInput{
			{ProductID: "seed-product-1", Quantity: 2, UnitPrice: 300},
			{ProductID: "seed-product-2", Quantity: 1, UnitPrice: 180},
		},
		PaymentMethod: enum.PaymentMethodCash,
	})

	require.NoError(t, err)
	assert.InDelta(t, 780, receipt.TotalAmount, 0.001)
	assert.Equal(t, 1, receipt.Installments)
}

func TestCreateReceiptExplicitTotalTakesPrecedence(t *testing.T) {
	svc := newOfflineService(t)
	total := 500.0

	receipt, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		CustomerID: "seed-customer-1",
		EmployeeID: "seed-employee-1",
		Items: []LineItemInput{
			{ProductID: "seed-product-1", Quantity: 1, UnitPrice: 300},
		},
		PaymentMethod: enum.PaymentMethodPix,
		TotalAmount:   &total,
	})

	require.NoError(t, err)
	assert.InDelta(t, 500, receipt.TotalAmount, 0.001)
}

func TestCreateReceiptRejectsUnknownReferences(t *testing.T) {
	svc := newOfflineService(t)

	_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		CustomerID: "ghost-customer",
		EmployeeID: "seed-employee-1",
		Items: []LineItemInput{
			{ProductID: "ghost-product", Quantity: 1, UnitPrice: 10},
		},
		PaymentMethod: enum.PaymentMethodCash,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	fields := map[string]bool{}
	for _, fe := range apperror.GetAppError(err).Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["customer_id"])
	assert.True(t, fields["items[0].product_id"])
}

func TestCreateReceiptInstallmentsRequireCreditCard(t *testing.T) {
	svc := newOfflineService(t)

	_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		CustomerID: "seed-customer-1",
		EmployeeID: "seed-employee-1",
		Items: []LineItemInput{
			{ProductID: "seed-product-1", Quantity: 1, UnitPrice: 300},
		},
		PaymentMethod: enum.PaymentMethodCash,
		Installments:  3,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateReceiptRejectsBadPaymentMethodAndQuantity(t *testing.T) {
	svc := newOfflineService(t)

	_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		CustomerID: "seed-customer-1",
		EmployeeID: "seed-employee-1",
		Items: []LineItemInput{
			{ProductID: "seed-product-1", Quantity: 0, UnitPrice: 300},
		},
		PaymentMethod: "check",
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	fields := map[string]bool{}
	for _, fe := range apperror.GetAppError(err).Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["payment_method"])
	assert.True(t, fields["items[0].quantity"])
}

func TestSearchProductsByNameCaseInsensitive(t *testing.T) {
	svc := newOfflineService(t)

	products := svc.SearchProducts("BATTERY")

	require.Len(t, products, 1)
	assert.Equal(t, "iPhone 11 Battery", products[0].Name)
}

func TestSearchEmployeesByContact(t *testing.T) {
	svc := newOfflineService(t)

	employees := svc.SearchEmployees("11977")

	require.Len(t, employees, 1)
	assert.Equal(t, "Ana Lima", employees[0].Name)
}

func TestSearchReceiptsByCustomerName(t *testing.T) {
	svc := newOfflineService(t)

	receipts := svc.SearchReceipts("maria")

	require.Len(t, receipts, 1)
	assert.Equal(t, "seed-receipt-2", receipts[0].ID)
}

func TestGenerateReportFromSeedData(t *testing.T) {
	svc := newOfflineService(t)
	now := time.Now()

	rep := svc.GenerateReport(now.AddDate(0, 0, -1), now)

	assert.Equal(t, 2, rep.TotalReceipts)
	assert.InDelta(t, 480, rep.TotalAmount, 0.001)
	assert.InDelta(t, 300, rep.PaymentMethodTotals["credit_card"], 0.001)
	assert.InDelta(t, 180, rep.PaymentMethodTotals["cash"], 0.001)

	require.Len(t, rep.TopCustomers, 2)
	assert.Equal(t, "João Silva", rep.TopCustomers[0].CustomerName)
	require.Len(t, rep.TopEmployees, 2)
	assert.Equal(t, "Carlos Souza", rep.TopEmployees[0].EmployeeName)
}

func TestGenerateReportResolvesDeletedCustomerAsUnknown(t *testing.T) {
	svc := newOfflineService(t)
	now := time.Now()

	require.NoError(t, svc.DeleteCustomer(context.Background(), "seed-customer-1"))

	rep := svc.GenerateReport(now.AddDate(0, 0, -1), now)

	names := map[string]bool{}
	for _, rank := range rep.TopCustomers {
		names[rank.CustomerName] = true
	}
	assert.True(t, names["unknown customer"])
	assert.False(t, names["João Silva"])
}

func TestGenerateReportExcludesDeletedReceipts(t *testing.T) {
	svc := newOfflineService(t)
	now := time.Now()

	require.NoError(t, svc.DeleteReceipt(context.Background(), "seed-receipt-1"))

	rep := svc.GenerateReport(now.AddDate(0, 0, -1), now)

	assert.Equal(t, 1, rep.TotalReceipts)
	assert.InDelta(t, 180, rep.TotalAmount, 0.001)
}

func TestOnlineServiceIsNotDegraded(t *testing.T) {
	svc := newOnlineService(t)

	for name, st := range svc.Status() {
		assert.False(t, st.Degraded, name)
		assert.Empty(t, st.LastError, name)
	}
	// An empty backend means empty stores, not seed data.
	assert.Empty(t, svc.SearchCustomers(""))
}

func TestClearErrors(t *testing.T) {
	svc := newOfflineService(t)

	svc.ClearErrors()

	for name, st := range svc.Status() {
		assert.Empty(t, st.LastError, name)
		// Degraded mode persists until a reload succeeds.
		assert.True(t, st.Degraded, name)
	}
}
