// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blessing-poultries/backend/internal/application/usecase/finance"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/dto"
)

// FinanceController handles financial summary endpoints.
type FinanceController struct {
	summaryUseCase *finance.GetFinancialSummaryUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(summaryUseCase *finance.GetFinancialSummaryUseCase) *FinanceController {
	return &FinanceController{
		summaryUseCase: summaryUseCase,
	}
}

// GetSummary handles GET /finance/summary requests.
// Query parameters: period (week|month|year), search, status.
func (c *FinanceController) GetSummary(ctx *gin.Context) {
	input := finance.GetFinancialSummaryInput{
		Period: ctx.Query("period"),
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
	}

	summary, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var recordErr *domainerror.RecordError
		if errors.As(err, &recordErr) {
			ctx.JSON(getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
				Error: recordErr.Message,
				Code:  string(recordErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
