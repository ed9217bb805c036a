package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salonsage/internal/services"
	"salonsage/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	reportService    services.ReportServiceInterface
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	reportService services.ReportServiceInterface,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		reportService:    reportService,
	}
}

// GetDashboard godoc
// @Summary Dashboard statistics and service analytics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	report, err := dc.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard fetched successfully")
}

// ExportBookingsReport godoc
// @Summary Export bookings in a date range as an XLSX workbook
// @Tags Dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param end query string true "Range end (YYYY-MM-DD, exclusive)"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Router /dashboard/report [get]
func (dc *DashboardController) ExportBookingsReport(c *gin.Context) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start date (expected YYYY-MM-DD)")
		return
	}

	end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid end date (expected YYYY-MM-DD)")
		return
	}

	if !end.After(start) {
		utils.RespondError(c, http.StatusBadRequest, "End date must be after start date")
		return
	}

	data, filename, err := dc.reportService.BookingsReport(c.Request.Context(), start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data)
}
