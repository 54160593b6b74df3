package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/application/service"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/dto/response"
	"github.com/shoplite/shopmanager-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	data *service.DataService
}

// NewProductHandler creates a new product handler
func NewProductHandler(data *service.DataService) *ProductHandler {
	return &ProductHandler{data: data}
}

// List handles listing products with optional substring search
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	products := h.data.SearchProducts(c.Query("search"))
	result := pagination.Paginate(products, &pagination.PaginationParams{Page: page, PerPage: perPage})

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Price       float64 `json:"price"`
		Stock       *int    `json:"stock"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.data.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.data.GetProductByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	var req struct {
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.data.UpdateProduct(c.Request.Context(), c.Param("id"), &service.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.data.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
