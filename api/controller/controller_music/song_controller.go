package controller_music

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/api/controller"
	"github.com/soundhaven/soundhaven/api/middleware"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_social"
)

type SongController struct {
	usecase *usecase_music.CatalogUsecase
	plays   *usecase_social.PlayUsecase
}

func NewSongController(uc *usecase_music.CatalogUsecase, plays *usecase_social.PlayUsecase) *SongController {
	return &SongController{usecase: uc, plays: plays}
}

type SongRequest struct {
	AlbumID     string `json:"album_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	DurationMS  int64  `json:"duration_ms"`
	TrackNumber int    `json:"track_number"`
	DiscNumber  int    `json:"disc_number"`
	Explicit    bool   `json:"explicit"`
	Lyrics      string `json:"lyrics"`
}

func (req *SongRequest) toModel(id primitive.ObjectID) (*domain_music.Song, error) {
	albumID, err := primitive.ObjectIDFromHex(req.AlbumID)
	if err != nil {
		return nil, err
	}
	return &domain_music.Song{
		ID:          id,
		AlbumID:     albumID,
		Title:       req.Title,
		DurationMS:  req.DurationMS,
		TrackNumber: req.TrackNumber,
		DiscNumber:  req.DiscNumber,
		Explicit:    req.Explicit,
		Lyrics:      req.Lyrics,
	}, nil
}

func (c *SongController) Create(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	var req SongRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	song, err := req.toModel(primitive.NilObjectID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid album_id")
		return
	}
	if err := c.usecase.CreateSong(ctx, actor, song); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.CreatedResponse(ctx, "song", song)
}

func (c *SongController) GetByID(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	song, err := c.usecase.GetSong(ctx, id)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "song", song)
}

func (c *SongController) ListByAlbum(ctx *gin.Context) {
	albumID, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	songs, err := c.usecase.ListSongsByAlbum(ctx, albumID, controller.PageQuery(ctx))
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "songs", songs)
}

func (c *SongController) ListPopular(ctx *gin.Context) {
	songs, err := c.usecase.ListPopularSongs(ctx, controller.PageQuery(ctx))
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "songs", songs)
}

func (c *SongController) Update(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	var req SongRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	song, err := req.toModel(id)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid album_id")
		return
	}
	if err := c.usecase.UpdateSong(ctx, actor, song); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "song", song)
}

func (c *SongController) Delete(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.usecase.DeleteSong(ctx, actor, id); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Play scrobbles one listen.
func (c *SongController) Play(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.plays.RecordPlay(ctx, id); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "played", id.Hex())
}
