package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/application/service"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/dto/response"
	"github.com/shoplite/shopmanager-api/pkg/pagination"
)

// minReceiptDate is the earliest creation date the API accepts for a
// receipt. The store itself takes any timestamp; the cutoff is a policy of
// this surface.
var minReceiptDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ReceiptHandler handles receipt-related HTTP requests. Receipts have no
// update route: they are immutable once created.
type ReceiptHandler struct {
	data *service.DataService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(data *service.DataService) *ReceiptHandler {
	return &ReceiptHandler{data: data}
}

// List handles listing receipts with optional substring search
func (h *ReceiptHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	receipts := h.data.SearchReceipts(c.Query("search"))
	result := pagination.Paginate(receipts, &pagination.PaginationParams{Page: page, PerPage: perPage})

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Create handles creating a receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID string `json:"customer_id" binding:"required"`
		EmployeeID string `json:"employee_id" binding:"required"`
		Items      []struct {
			ProductID string  `json:"product_id" binding:"required"`
			Quantity  int     `json:"quantity" binding:"required"`
			UnitPrice float64 `json:"unit_price"`
		} `json:"items" binding:"required"`
		PaymentMethod  string   `json:"payment_method" binding:"required"`
		Installments   int      `json:"installments"`
		WarrantyMonths int      `json:"warranty_months"`
		Notes          *string  `json:"notes"`
		TotalAmount    *float64 `json:"total_amount"`
		Date           string   `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		if parsed.Before(minReceiptDate) {
			response.BadRequest(c, "Receipt date must be on or after 2024-01-01")
			return
		}
		date = parsed
	}

	items := make([]service.LineItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.LineItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	receipt, err := h.data.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		CustomerID:     req.CustomerID,
		EmployeeID:     req.EmployeeID,
		Items:          items,
		PaymentMethod:  enum.PaymentMethod(req.PaymentMethod),
		Installments:   req.Installments,
		WarrantyMonths: req.WarrantyMonths,
		Notes:          req.Notes,
		TotalAmount:    req.TotalAmount,
		Date:           date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles getting a single receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	receipt, err := h.data.GetReceiptByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Delete handles deleting a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	if err := h.data.DeleteReceipt(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
