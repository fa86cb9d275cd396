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

type ArtistController struct {
	usecase *usecase_music.CatalogUsecase
}

func NewArtistController(uc *usecase_music.CatalogUsecase) *ArtistController {
	return &ArtistController{usecase: uc}
}

type ArtistRequest struct {
	StageName string `json:"stage_name" binding:"required"`
	Biography string `json:"biography"`
	AvatarURL string `json:"avatar_url"`
	// UserID lets a superuser claim the profile for another account.
	UserID string `json:"user_id"`
}

func (req *ArtistRequest) toModel(id primitive.ObjectID) (*domain_music.Artist, error) {
	artist := &domain_music.Artist{
		ID:        id,
		StageName: req.StageName,
		Biography: req.Biography,
		AvatarURL: req.AvatarURL,
	}
	if req.UserID != "" {
		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			return nil, err
		}
		artist.UserID = &userID
	}
	return artist, nil
}

func (c *ArtistController) Create(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	var req ArtistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	artist, err := req.toModel(primitive.NilObjectID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid user_id")
		return
	}
	if err := c.usecase.CreateArtist(ctx, actor, artist); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.CreatedResponse(ctx, "artist", artist)
}

func (c *ArtistController) GetByID(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	artist, err := c.usecase.GetArtist(ctx, id)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "artist", artist)
}

func (c *ArtistController) List(ctx *gin.Context) {
	artists, err := c.usecase.ListArtists(ctx, controller.PageQuery(ctx))
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "artists", artists)
}

func (c *ArtistController) Update(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	var req ArtistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	artist, err := req.toModel(id)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "invalid user_id")
		return
	}
	if err := c.usecase.UpdateArtist(ctx, actor, artist); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "artist", artist)
}

func (c *ArtistController) Delete(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.usecase.DeleteArtist(ctx, actor, id); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
