package route_music

import (
	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/controller/controller_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
)

func NewPlaylistRouter(
	playlists *usecase_music.PlaylistUsecase,
	tracks *usecase_music.PlaylistTrackUsecase,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	ctrl := controller_music.NewPlaylistController(playlists, tracks)

	public.GET("/playlists/public", ctrl.ListPublic)

	playlistGroup := protected.Group("/playlists")
	{
		playlistGroup.POST("", ctrl.Create)
		playlistGroup.GET("", ctrl.ListMine)
		playlistGroup.GET("/:id", ctrl.GetByID)
		playlistGroup.PUT("/:id", ctrl.Update)
		playlistGroup.DELETE("/:id", ctrl.Delete)

		playlistGroup.GET("/:id/tracks", ctrl.ListTracks)
		playlistGroup.POST("/:id/tracks", ctrl.AddTrack)
		playlistGroup.DELETE("/:id/tracks/:songId", ctrl.RemoveTrack)
		playlistGroup.PUT("/:id/tracks/order", ctrl.Reorder)
	}
}
