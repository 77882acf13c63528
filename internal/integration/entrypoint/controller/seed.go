package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/application/usecase/seed"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
)

// SeedController handles the sample-data seeding endpoint.
type SeedController struct {
	seedUseCase *seed.SeedUserDataUseCase
}

// NewSeedController creates a new seed controller instance.
func NewSeedController(seedUseCase *seed.SeedUserDataUseCase) *SeedController {
	return &SeedController{
		seedUseCase: seedUseCase,
	}
}

// Seed handles POST /seed requests. A user that already has categories gets
// a no-op response; an empty account receives the starter catalog.
func (c *SeedController) Seed(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.seedUseCase.Execute(ctx.Request.Context(), seed.SeedUserDataInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to seed sample data",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeedResponse(output))
}
