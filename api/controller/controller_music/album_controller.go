package controller_music

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/api/controller"
	"github.com/soundhaven/soundhaven/api/middleware"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
)

type AlbumController struct {
	usecase *usecase_music.CatalogUsecase
}

func NewAlbumController(uc *usecase_music.CatalogUsecase) *AlbumController {
	return &AlbumController{usecase: uc}
}

type AlbumRequest struct {
	ArtistID    string     `json:"artist_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AlbumType   string     `json:"album_type" binding:"omitempty,oneof=single ep album"`
	ReleaseDate *time.Time `json:"release_date"`
	IsPublic    bool       `json:"is_public"`
	Label       string     `json:"label"`
}

func (req *AlbumRequest) toModel(id primitive.ObjectID) (*domain_music.Album, error) {
	artistID, err := primitive.ObjectIDFromHex(req.ArtistID)
	if err != nil {
		return nil, err
	}
	return &domain_music.Album{
		ID:          id,
		ArtistID:    artistID,
		Title:       req.Title,
		Description: req.Description,
		AlbumType:   domain_music.AlbumType(req.AlbumType),
		ReleaseDate: req.ReleaseDate,
		IsPublic:    req.IsPublic,
		Label:       req.Label,
	}, nil
}

func (c *AlbumController) Create(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	var req AlbumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	album, err := req.toModel(primitive.NilObjectID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid artist_id")
		return
	}
	if err := c.usecase.CreateAlbum(ctx, actor, album); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.CreatedResponse(ctx, "album", album)
}

func (c *AlbumController) GetByID(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	album, err := c.usecase.GetAlbum(ctx, id)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "album", album)
}

func (c *AlbumController) ListByArtist(ctx *gin.Context) {
	artistID, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	albums, err := c.usecase.ListAlbumsByArtist(ctx, artistID, controller.PageQuery(ctx))
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "albums", albums)
}

func (c *AlbumController) Update(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	var req AlbumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	album, err := req.toModel(id)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid artist_id")
		return
	}
	if err := c.usecase.UpdateAlbum(ctx, actor, album); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "album", album)
}

func (c *AlbumController) Delete(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.usecase.DeleteAlbum(ctx, actor, id); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
