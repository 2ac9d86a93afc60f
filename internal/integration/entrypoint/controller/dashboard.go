// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finledger/backend/internal/application/usecase/stats"
	domainerror "github.com/finledger/backend/internal/domain/error"
	"github.com/finledger/backend/internal/integration/entrypoint/dto"
	"github.com/finledger/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard statistics endpoints.
type DashboardController struct {
	getStatsUseCase         *stats.GetStatsUseCase
	getStatsByPeriodUseCase *stats.GetStatsByPeriodUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getStatsUseCase *stats.GetStatsUseCase,
	getStatsByPeriodUseCase *stats.GetStatsByPeriodUseCase,
) *DashboardController {
	return &DashboardController{
		getStatsUseCase:         getStatsUseCase,
		getStatsByPeriodUseCase: getStatsByPeriodUseCase,
	}
}

// GetStats handles GET /api/dashboard/stats requests.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getStatsUseCase.Execute(ctx.Request.Context(), stats.GetStatsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output.Report))
}

// GetStatsByPeriod handles GET /api/dashboard/stats/period requests.
func (c *DashboardController) GetStatsByPeriod(ctx *gin.Context) {
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

	output, err := c.getStatsByPeriodUseCase.Execute(ctx.Request.Context(), stats.GetStatsByPeriodInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output.Report))
}
