// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/usecase/budget"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/dto"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles monthly budget endpoints.
type BudgetController struct {
	statusUseCase  *budget.GetBudgetStatusUseCase
	currentUseCase *budget.GetCurrentBudgetUseCase
	createUseCase  *budget.CreateBudgetUseCase
	updateUseCase  *budget.UpdateBudgetUseCase
	deleteUseCase  *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	statusUseCase *budget.GetBudgetStatusUseCase,
	currentUseCase *budget.GetCurrentBudgetUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		statusUseCase:  statusUseCase,
		currentUseCase: currentUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// GetStatus handles GET /budgets/status requests. Missing budgets are not an
// error: the tracker reports no_budget so the dashboard can prompt setup.
func (c *BudgetController) GetStatus(ctx *gin.Context) {
	status, err := c.statusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(status))
}

// GetCurrent handles GET /budgets/current requests.
func (c *BudgetController) GetCurrent(ctx *gin.Context) {
	output, err := c.currentUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetDetailResponse{
		Budget:     dto.ToBudgetResponse(output.Budget),
		Categories: dto.ToBudgetCategoryResponses(output.Categories),
	})
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBudgetAmount),
		})
		return
	}

	input := budget.CreateBudgetInput{
		Month:        req.Month,
		Year:         req.Year,
		BudgetAmount: decimal.NewFromFloat(req.BudgetAmount),
		Notes:        req.Notes,
	}
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		input.CreatedBy = userID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BudgetDetailResponse{
		Budget:     dto.ToBudgetResponse(output.Budget),
		Categories: dto.ToBudgetCategoryResponses(output.Categories),
	})
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBudgetAmount),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:     id,
		BudgetAmount: decimal.NewFromFloat(req.BudgetAmount),
		Notes:        req.Notes,
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(updated))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetPeriod:
		return http.StatusBadRequest
	case domainerror.ErrCodeBudgetSchemaMissing:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
