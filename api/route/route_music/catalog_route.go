package route_music

import (
	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/controller/controller_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_social"
)

// NewCatalogRouter mounts artist, album, and song endpoints. Reads stay
// public; every mutation goes through the authenticated group.
func NewCatalogRouter(
	catalog *usecase_music.CatalogUsecase,
	plays *usecase_social.PlayUsecase,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	artistCtrl := controller_music.NewArtistController(catalog)
	albumCtrl := controller_music.NewAlbumController(catalog)
	songCtrl := controller_music.NewSongController(catalog, plays)

	artistGroup := public.Group("/artists")
	{
		artistGroup.GET("", artistCtrl.List)
		artistGroup.GET("/:id", artistCtrl.GetByID)
		artistGroup.GET("/:id/albums", albumCtrl.ListByArtist)
	}

	albumGroup := public.Group("/albums")
	{
		albumGroup.GET("/:id", albumCtrl.GetByID)
		albumGroup.GET("/:id/songs", songCtrl.ListByAlbum)
	}

	songGroup := public.Group("/songs")
	{
		songGroup.GET("/popular", songCtrl.ListPopular)
		songGroup.GET("/:id", songCtrl.GetByID)
		songGroup.POST("/:id/play", songCtrl.Play)
	}

	writeArtists := protected.Group("/artists")
	{
		writeArtists.POST("", artistCtrl.Create)
		writeArtists.PUT("/:id", artistCtrl.Update)
		writeArtists.DELETE("/:id", artistCtrl.Delete)
	}

	writeAlbums := protected.Group("/albums")
	{
		writeAlbums.POST("", albumCtrl.Create)
		writeAlbums.PUT("/:id", albumCtrl.Update)
		writeAlbums.DELETE("/:id", albumCtrl.Delete)
	}

	writeSongs := protected.Group("/songs")
	{
		writeSongs.POST("", songCtrl.Create)
		writeSongs.PUT("/:id", songCtrl.Update)
		writeSongs.DELETE("/:id", songCtrl.Delete)
	}
}
