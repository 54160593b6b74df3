package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/application/service"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/dto/response"
	"github.com/shoplite/shopmanager-api/pkg/pagination"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	data *service.DataService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(data *service.DataService) *EmployeeHandler {
	return &EmployeeHandler{data: data}
}

// List handles listing employees with optional substring search
func (h *EmployeeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	employees := h.data.SearchEmployees(c.Query("search"))
	result := pagination.Paginate(employees, &pagination.PaginationParams{Page: page, PerPage: perPage})

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// Create handles creating an employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		WhatsApp string  `json:"whatsapp" binding:"required"`
		Email    *string `json:"email"`
		Role     string  `json:"role" binding:"required"`
		Age      int     `json:"age"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.data.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		Name:     req.Name,
		WhatsApp: req.WhatsApp,
		Email:    req.Email,
		Role:     enum.EmployeeRole(req.Role),
		Age:      req.Age,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// Get handles getting a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.data.GetEmployeeByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// Update handles updating an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		WhatsApp *string `json:"whatsapp"`
		Email    *string `json:"email"`
		Role     *string `json:"role"`
		Age      *int    `json:"age"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateEmployeeInput{
		Name:     req.Name,
		WhatsApp: req.WhatsApp,
		Email:    req.Email,
		Age:      req.Age,
	}
	if req.Role != nil {
		role := enum.EmployeeRole(*req.Role)
		input.Role = &role
	}

	employee, err := h.data.UpdateEmployee(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles deleting an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.data.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
