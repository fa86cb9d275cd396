package controller_music

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/api/controller"
	"github.com/soundhaven/soundhaven/api/middleware"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
)

type PlaylistController struct {
	usecase *usecase_music.PlaylistUsecase
	tracks  *usecase_music.PlaylistTrackUsecase
}

func NewPlaylistController(uc *usecase_music.PlaylistUsecase, tracks *usecase_music.PlaylistTrackUsecase) *PlaylistController {
	return &PlaylistController{usecase: uc, tracks: tracks}
}

type PlaylistRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	IsPublic        bool   `json:"is_public"`
	IsCollaborative bool   `json:"is_collaborative"`
}

func (c *PlaylistController) Create(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	var req PlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	playlist := &domain_music.Playlist{
		Name:            req.Name,
		Description:     req.Description,
		IsPublic:        req.IsPublic,
		IsCollaborative: req.IsCollaborative,
	}
	if err := c.usecase.Create(ctx, actor, playlist); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.CreatedResponse(ctx, "playlist", playlist)
}

func (c *PlaylistController) GetByID(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	playlist, err := c.usecase.Get(ctx, actor, id)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "playlist", playlist)
}

func (c *PlaylistController) ListMine(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	playlists, err := c.usecase.ListMine(ctx, actor, controller.PageQuery(ctx))
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "playlists", playlists)
}

func (c *PlaylistController) ListPublic(ctx *gin.Context) {
	playlists, err := c.usecase.ListPublic(ctx, controller.PageQuery(ctx))
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "playlists", playlists)
}

func (c *PlaylistController) Update(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	var req PlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	playlist := &domain_music.Playlist{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		IsPublic:        req.IsPublic,
		IsCollaborative: req.IsCollaborative,
	}
	if err := c.usecase.Update(ctx, actor, playlist); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "playlist", playlist)
}

func (c *PlaylistController) Delete(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.usecase.Delete(ctx, actor, id); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type AddTrackRequest struct {
	SongID   string `json:"song_id" binding:"required"`
	Position *int   `json:"position"`
}

func (c *PlaylistController) AddTrack(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	var req AddTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	songID, err := primitive.ObjectIDFromHex(req.SongID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid song_id")
		return
	}
	track, err := c.tracks.Add(ctx, actor, id, songID, req.Position)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "track", track)
}

func (c *PlaylistController) RemoveTrack(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	songID, ok := controller.IDParam(ctx, "songId")
	if !ok {
		return
	}
	if err := c.tracks.Remove(ctx, actor, id, songID); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *PlaylistController) ListTracks(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	songs, err := c.tracks.ListSongs(ctx, actor, id, controller.PageQuery(ctx))
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "songs", songs)
}

type ReorderRequest struct {
	Moves []struct {
		SongID      string `json:"song_id" binding:"required"`
		NewPosition int    `json:"new_position"`
	} `json:"moves" binding:"required"`
}

func (c *PlaylistController) Reorder(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	moves := make([]domain_music.TrackMove, 0, len(req.Moves))
	for _, m := range req.Moves {
		songID, err := primitive.ObjectIDFromHex(m.SongID)
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid song_id in moves")
			return
		}
		moves = append(moves, domain_music.TrackMove{SongID: songID, NewPosition: m.NewPosition})
	}
	if err := c.tracks.Reorder(ctx, actor, id, moves); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
