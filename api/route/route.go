package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/middleware"
	"github.com/soundhaven/soundhaven/api/route/route_music"
	"github.com/soundhaven/soundhaven/api/route/route_social"
	"github.com/soundhaven/soundhaven/bootstrap"
	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/mongo"
	"github.com/soundhaven/soundhaven/repository/repository_music"
	"github.com/soundhaven/soundhaven/repository/repository_social"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_social"
)

// Setup wires repositories into usecases and mounts every route group.
// The ownership resolver is shared: catalog, playlist, and membership
// rules all consult the same instance.
func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, engine *gin.Engine) {
	engine.Use(middleware.RequestID())

	userRepo := repository_music.NewUserRepository(db, domain.CollectionUser)
	artistRepo := repository_music.NewArtistRepository(db, domain.CollectionArtist)
	albumRepo := repository_music.NewAlbumRepository(db, domain.CollectionAlbum)
	songRepo := repository_music.NewSongRepository(db, domain.CollectionSong)
	playlistRepo := repository_music.NewPlaylistRepository(db, domain.CollectionPlaylist)
	trackRepo := repository_music.NewPlaylistTrackRepository(db, domain.CollectionPlaylistTrack)
	edgeRepo := repository_social.NewSocialEdgeRepository(db, domain.CollectionSocialEdge)

	ownership := usecase_music.NewOwnershipUsecase(artistRepo, albumRepo, songRepo, playlistRepo, timeout)
	catalog := usecase_music.NewCatalogUsecase(artistRepo, albumRepo, songRepo, ownership, timeout)
	playlists := usecase_music.NewPlaylistUsecase(playlistRepo, ownership, timeout)
	tracks := usecase_music.NewPlaylistTrackUsecase(trackRepo, songRepo, ownership, timeout)
	users := usecase_music.NewUserUsecase(userRepo, timeout)
	graph := usecase_social.NewSocialGraphUsecase(edgeRepo, userRepo, artistRepo, albumRepo, songRepo, playlistRepo, timeout)
	plays := usecase_social.NewPlayUsecase(songRepo, playlistRepo, edgeRepo, timeout)

	public := engine.Group("")
	protected := engine.Group("")
	protected.Use(middleware.ActorMiddleware(env.AccessTokenSecret))

	route_music.NewUserRouter(users, public, protected)
	route_music.NewCatalogRouter(catalog, plays, public, protected)
	route_music.NewPlaylistRouter(playlists, tracks, public, protected)
	route_social.NewSocialRouter(graph, plays, public, protected)
}
