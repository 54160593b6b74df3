package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/application/service"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/dto/response"
	"github.com/shoplite/shopmanager-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	data *service.DataService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(data *service.DataService) *CustomerHandler {
	return &CustomerHandler{data: data}
}

// List handles listing customers with optional substring search
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	customers := h.data.SearchCustomers(c.Query("search"))
	result := pagination.Paginate(customers, &pagination.PaginationParams{Page: page, PerPage: perPage})

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Phone   string  `json:"phone" binding:"required"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.data.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.data.GetCustomerByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	var req struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.data.UpdateCustomer(c.Request.Context(), c.Param("id"), &service.UpdateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.data.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
