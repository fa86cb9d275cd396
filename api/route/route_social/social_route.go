package route_social

import (
	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/controller/controller_social"
	"github.com/soundhaven/soundhaven/usecase/usecase_social"
)

func NewSocialRouter(
	graph *usecase_social.SocialGraphUsecase,
	plays *usecase_social.PlayUsecase,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	edgeCtrl := controller_social.NewSocialEdgeController(graph)
	statsCtrl := controller_social.NewStatsController(plays)

	edgeGroup := protected.Group("/social")
	{
		edgeGroup.POST("/edges", edgeCtrl.Create)
		edgeGroup.DELETE("/edges", edgeCtrl.Destroy)
		edgeGroup.GET("/edges/exists", edgeCtrl.Exists)
		edgeGroup.GET("/subjects/:id/edges", edgeCtrl.ListBySubject)
		edgeGroup.GET("/targets/:id/edges", edgeCtrl.ListByTarget)
	}

	public.GET("/users/:id/stats", statsCtrl.GetUserStats)
}
