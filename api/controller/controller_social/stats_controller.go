package controller_social

import (
	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/controller"
	"github.com/soundhaven/soundhaven/usecase/usecase_social"
)

type StatsController struct {
	usecase *usecase_social.PlayUsecase
}

func NewStatsController(uc *usecase_social.PlayUsecase) *StatsController {
	return &StatsController{usecase: uc}
}

func (c *StatsController) GetUserStats(ctx *gin.Context) {
	userID, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	stats, err := c.usecase.StatsFor(ctx, userID)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "stats", stats)
}
