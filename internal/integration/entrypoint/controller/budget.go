// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/usecase/budget"
	domainerror "github.com/finledger/backend/internal/domain/error"
	"github.com/finledger/backend/internal/integration/entrypoint/dto"
	"github.com/finledger/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase *budget.CreateBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
	findUseCase   *budget.FindBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	findUseCase *budget.FindBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		findUseCase:   findUseCase,
	}
}

// Create handles POST /api/budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.BudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     req.Amount,
		Month:      req.Month,
		Year:       req.Year,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /api/budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponses(output.Budgets))
}

// Find handles GET /api/budgets/find requests, resolving the budget for an
// exact category and month.
func (c *BudgetController) Find(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Query("category_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must be an integer",
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be an integer",
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.findUseCase.Execute(ctx.Request.Context(), budget.FindBudgetInput{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Year:       year,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(statusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Budget creation validates the category, so category errors surface here.
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(statusCodeForCategoryError(categoryErr.Code), dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForBudgetError maps budget error codes to HTTP status codes.
func statusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudgetMonth,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
