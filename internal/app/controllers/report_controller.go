package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/app/services"
)

// ReportController serves the dashboard and report views
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetDashboard returns counts, averages and the most recent activity
// @Summary Dashboard
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=reports.Dashboard}
// @Router /dashboard [get]
func (c *ReportController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.reportService.Dashboard()))
}

// GetReport returns status, grade and department breakdowns
// @Summary Report
// @Description Omitting semester or passing "All" reports over every semester
// @Tags reports
// @Produce json
// @Param semester query string false "Semester label, e.g. Fall 2023"
// @Success 200 {object} dto.APIResponse{data=reports.Report}
// @Router /reports [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.reportService.Report(ctx.Query("semester"))))
}

// GetSemesters lists the semester filter values
// @Summary Report semesters
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /reports/semesters [get]
func (c *ReportController) GetSemesters(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.reportService.Semesters()))
}
