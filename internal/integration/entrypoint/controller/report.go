// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blessing-poultries/backend/internal/application/usecase/report"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/dto"
)

// ReportExporter renders a built report into a downloadable document.
type ReportExporter interface {
	Filename(data *report.ReportData) string
	ContentType() string
	Render(data *report.ReportData) ([]byte, error)
}

// AdviceResponse represents the advisor output.
type AdviceResponse struct {
	Recommendations []string `json:"recommendations"`
}

// ReportController handles report export endpoints.
type ReportController struct {
	buildUseCase  *report.BuildReportUseCase
	adviceUseCase *report.GetAdviceUseCase
	excel         ReportExporter
	pdf           ReportExporter
}

// NewReportController creates a new report controller instance.
func NewReportController(
	buildUseCase *report.BuildReportUseCase,
	adviceUseCase *report.GetAdviceUseCase,
	excel ReportExporter,
	pdf ReportExporter,
) *ReportController {
	return &ReportController{
		buildUseCase:  buildUseCase,
		adviceUseCase: adviceUseCase,
		excel:         excel,
		pdf:           pdf,
	}
}

// ExportExcel handles GET /reports/excel requests.
func (c *ReportController) ExportExcel(ctx *gin.Context) {
	c.export(ctx, c.excel)
}

// ExportPDF handles GET /reports/pdf requests.
func (c *ReportController) ExportPDF(ctx *gin.Context) {
	c.export(ctx, c.pdf)
}

// GetAdvice handles GET /reports/advice requests.
func (c *ReportController) GetAdvice(ctx *gin.Context) {
	input := report.BuildReportInput{
		Period: ctx.Query("period"),
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
	}

	advice, err := c.adviceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, AdviceResponse{Recommendations: advice})
}

// export builds the report and streams the rendered document. The document is
// rendered fully before any header is written, so a failure never leaves a
// partial body behind.
func (c *ReportController) export(ctx *gin.Context, exporter ReportExporter) {
	input := report.BuildReportInput{
		Period: ctx.Query("period"),
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
	}

	data, err := c.buildUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	payload, err := exporter.Render(data)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.Filename(data)))
	ctx.Data(http.StatusOK, exporter.ContentType(), payload)
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
