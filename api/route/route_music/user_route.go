package route_music

import (
	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/controller/controller_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
)

func NewUserRouter(
	userUsecase *usecase_music.UserUsecase,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	ctrl := controller_music.NewUserController(userUsecase)

	public.POST("/users", ctrl.Register)

	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", ctrl.GetMe)
		userGroup.GET("/:id", ctrl.GetByID)
		userGroup.PUT("/:id", ctrl.Update)
		userGroup.DELETE("/:id", ctrl.Delete)
	}
}
