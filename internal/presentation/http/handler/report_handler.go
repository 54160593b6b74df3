package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/application/service"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	data *service.DataService
}

// NewReportHandler creates a new report handler
func NewReportHandler(data *service.DataService) *ReportHandler {
	return &ReportHandler{data: data}
}

// Generate handles generating a sales report for a date window
func (h *ReportHandler) Generate(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		response.BadRequest(c, "end_date must not be before start_date")
		return
	}

	report := h.data.GenerateReport(start, end)
	response.OK(c, "Report generated successfully", report)
}
