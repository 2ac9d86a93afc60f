// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/usecase/transaction"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
	"github.com/finledger/backend/internal/integration/entrypoint/dto"
	"github.com/finledger/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /api/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input, ok := c.bindTransactionRequest(ctx)
	if !ok {
		return
	}

	input.UserID = userID

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /api/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponses(output.Transactions))
}

// ListByPeriod handles GET /api/transactions/period requests. Both start_date
// and end_date query parameters are required, in YYYY-MM-DD format.
func (c *TransactionController) ListByPeriod(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, err := time.Parse(time.DateOnly, ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date must be a valid YYYY-MM-DD date",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}
	endDate, err := time.Parse(time.DateOnly, ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date must be a valid YYYY-MM-DD date",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID:    userID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponses(output.Transactions))
}

// ListByType handles GET /api/transactions/type/:type requests.
func (c *TransactionController) ListByType(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionType := entity.TransactionType(ctx.Param("type"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
		Type:   &transactionType,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponses(output.Transactions))
}

// Get handles GET /api/transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /api/transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input, ok := c.bindTransactionRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		CategoryID:    input.CategoryID,
		Type:          input.Type,
		Amount:        input.Amount,
		Description:   input.Description,
		Date:          input.Date,
		Attachment:    input.Attachment,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /api/transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindTransactionRequest parses and validates the body shared by create and
// update. The user and transaction IDs are filled in by the caller.
func (c *TransactionController) bindTransactionRequest(ctx *gin.Context) (transaction.CreateTransactionInput, bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return transaction.CreateTransactionInput{}, false
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return transaction.CreateTransactionInput{}, false
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be a valid YYYY-MM-DD date",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return transaction.CreateTransactionInput{}, false
	}

	return transaction.CreateTransactionInput{
		CategoryID:  categoryID,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Attachment:  req.Attachment,
	}, true
}


// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(statusCodeForTransactionError(transactionErr.Code), dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTransactionError maps transaction error codes to HTTP status codes.
func statusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound, domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction, domainerror.ErrCodeTxnCategoryNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
