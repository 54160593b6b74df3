package report

import (
	"sort"
	"time"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
)

// Lookups resolves entity identities to display names. A false return means
// the identity is unknown; products then drop out of the per-product
// breakdown while customers and employees get a placeholder name, since
// every receipt must reference one of each.
type Lookups struct {
	CustomerName func(id string) (string, bool)
	ProductName  func(id string) (string, bool)
	EmployeeName func(id string) (string, bool)
}

// Placeholder names for references that no longer resolve.
const (
	UnknownCustomer = "unknown customer"
	UnknownEmployee = "unknown employee"
)

// ProductSales is the accumulated sales of one product inside the window.
type ProductSales struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalValue  float64 `json:"total_value"`
}

// MethodBreakdown is the receipt count and value for one payment method.
type MethodBreakdown struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// CustomerRank is one entry of the top-customers list.
type CustomerRank struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Purchases    int     `json:"purchases"`
	TotalValue   float64 `json:"total_value"`
}

// EmployeeRank is one entry of the top-employees list.
type EmployeeRank struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Sales        int     `json:"sales"`
	TotalValue   float64 `json:"total_value"`
}

// Sales groups the sales-side aggregates of a report.
type Sales struct {
	TotalSales      int                        `json:"total_sales"`
	TotalValue      float64                    `json:"total_value"`
	ByProduct       []ProductSales             `json:"by_product"`
	ByPaymentMethod map[string]MethodBreakdown `json:"by_payment_method"`
}

// Report is the aggregated sales report for one date window.
type Report struct {
	Period                string             `json:"period"`
	TotalReceipts         int                `json:"total_receipts"`
	TotalAmount           float64            `json:"total_amount"`
	AverageWarrantyMonths float64            `json:"average_warranty_months"`
	PaymentMethodTotals   map[string]float64 `json:"payment_method_totals"`
	Sales                 Sales              `json:"sales"`
	TopCustomers          []CustomerRank     `json:"top_customers"`
	TopEmployees          []EmployeeRank     `json:"top_employees"`
}

// Generate aggregates the receipts whose creation timestamp falls inside
// [start, end-of-day(end)], soft-deleted receipts excluded. The function is
// pure: identical inputs produce an identical, order-stable result, and the
// inputs are never mutated.
func Generate(receipts []entity.Receipt, lookups Lookups, start, end time.Time) *Report {
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())

	var window []entity.Receipt
	for _, r := range receipts {
		if r.Deleted {
			continue
		}
		if r.CreatedAt.Before(start) || r.CreatedAt.After(endOfDay) {
			continue
		}
		window = append(window, r)
	}

	rep := &Report{
		Period:              start.Format("2006-01-02") + " - " + end.Format("2006-01-02"),
		TotalReceipts:       len(window),
		PaymentMethodTotals: map[string]float64{},
		Sales: Sales{
			TotalSales:      len(window),
			ByProduct:       []ProductSales{},
			ByPaymentMethod: map[string]MethodBreakdown{},
		},
		TopCustomers: []CustomerRank{},
		TopEmployees: []EmployeeRank{},
	}

	var totalWarrantyMonths int
	for _, r := range window {
		rep.TotalAmount += receiptAmount(r)
		totalWarrantyMonths += r.WarrantyMonths
	}
	rep.Sales.TotalValue = rep.TotalAmount
	if len(window) > 0 {
		rep.AverageWarrantyMonths = float64(totalWarrantyMonths) / float64(len(window))
	}

	rep.Sales.ByProduct = productBreakdown(window, lookups.ProductName)

	for _, r := range window {
		method := r.PaymentMethod.String()
		acc := rep.Sales.ByPaymentMethod[method]
		acc.Count++
		acc.Value += receiptAmount(r)
		rep.Sales.ByPaymentMethod[method] = acc
	}
	for method, acc := range rep.Sales.ByPaymentMethod {
		rep.PaymentMethodTotals[method] = acc.Value
	}

	rep.TopCustomers = topCustomers(window, lookups.CustomerName)
	rep.TopEmployees = topEmployees(window, lookups.EmployeeName)

	return rep
}

// receiptAmount returns the value a receipt contributes to the report: the
// explicit total fixed at creation, or the sum of line values when no
// explicit total was recorded.
func receiptAmount(r entity.Receipt) float64 {
	if r.TotalAmount != 0 {
		return r.TotalAmount
	}
	return r.ComputedTotal()
}

func productBreakdown(window []entity.Receipt, resolve func(id string) (string, bool)) []ProductSales {
	type acc struct {
		quantity int
		value    float64
	}
	totals := map[string]*acc{}
	var order []string

	for _, r := range window {
		for _, item := range r.Items {
			a, ok := totals[item.ProductID]
			if !ok {
				a = &acc{}
				totals[item.ProductID] = a
				order = append(order, item.ProductID)
			}
			a.quantity += item.Quantity
			a.value += item.LineTotal()
		}
	}

	breakdown := make([]ProductSales, 0, len(order))
	for _, productID := range order {
		// Unresolved products are excluded rather than reported as unknown.
		name, ok := resolve(productID)
		if !ok {
			continue
		}
		breakdown = append(breakdown, ProductSales{
			ProductID:   productID,
			ProductName: name,
			Quantity:    totals[productID].quantity,
			TotalValue:  totals[productID].value,
		})
	}

	// Descending by value; ties keep first-encountered order.
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalValue > breakdown[j].TotalValue
	})
	return breakdown
}

func topCustomers(window []entity.Receipt, resolve func(id string) (string, bool)) []CustomerRank {
	totals := map[string]*CustomerRank{}
	var order []string

	for _, r := range window {
		rank, ok := totals[r.CustomerID]
		if !ok {
			name, resolved := resolve(r.CustomerID)
			if !resolved {
				name = UnknownCustomer
			}
			rank = &CustomerRank{CustomerID: r.CustomerID, CustomerName: name}
			totals[r.CustomerID] = rank
			order = append(order, r.CustomerID)
		}
		rank.Purchases++
		rank.TotalValue += receiptAmount(r)
	}

	ranks := make([]CustomerRank, 0, len(order))
	for _, id := range order {
		ranks = append(ranks, *totals[id])
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalValue > ranks[j].TotalValue
	})
	return ranks
}

func topEmployees(window []entity.Receipt, resolve func(id string) (string, bool)) []EmployeeRank {
	totals := map[string]*EmployeeRank{}
	var order []string

	for _, r := range window {
		rank, ok := totals[r.EmployeeID]
		if !ok {
			name, resolved := resolve(r.EmployeeID)
			if !resolved {
				name = UnknownEmployee
			}
			rank = &EmployeeRank{EmployeeID: r.EmployeeID, EmployeeName: name}
			totals[r.EmployeeID] = rank
			order = append(order, r.EmployeeID)
		}
		rank.Sales++
		rank.TotalValue += receiptAmount(r)
	}

	ranks := make([]EmployeeRank, 0, len(order))
	for _, id := range order {
		ranks = append(ranks, *totals[id])
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalValue > ranks[j].TotalValue
	})
	return ranks
}
