package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/application/usecase/dashboard"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	statsUseCase    *dashboard.GetStatsUseCase
	spendingUseCase *dashboard.GetCategorySpendingUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	statsUseCase *dashboard.GetStatsUseCase,
	spendingUseCase *dashboard.GetCategorySpendingUseCase,
) *DashboardController {
	return &DashboardController{
		statsUseCase:    statsUseCase,
		spendingUseCase: spendingUseCase,
	}
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, err := c.parseRange(ctx)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), dashboard.GetStatsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}

// CategorySpending handles GET /dashboard/category-spending requests.
func (c *DashboardController) CategorySpending(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, err := c.parseRange(ctx)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	output, err := c.spendingUseCase.Execute(ctx.Request.Context(), dashboard.GetCategorySpendingInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySpendingListResponse(output.Categories))
}

// parseRange parses the startDate/endDate query parameters. Missing
// parameters come back as zero times so the use cases emit their coded
// errors; malformed values fail here.
func (c *DashboardController) parseRange(ctx *gin.Context) (time.Time, time.Time, error) {
	var startDate, endDate time.Time

	if raw := ctx.Query("startDate"); raw != "" {
		parsed, err := parseFlexibleDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, domainerror.NewDashboardError(
				domainerror.ErrCodeMissingStartDate,
				"startDate is not a valid date",
				err,
			)
		}
		startDate = parsed
	}
	if raw := ctx.Query("endDate"); raw != "" {
		parsed, err := parseFlexibleDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, domainerror.NewDashboardError(
				domainerror.ErrCodeMissingEndDate,
				"endDate is not a valid date",
				err,
			)
		}
		endDate = parsed
	}

	return startDate, endDate, nil
}

// parseFlexibleDate accepts RFC3339 timestamps and bare dates.
func parseFlexibleDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
