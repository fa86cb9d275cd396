package controller_music

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/controller"
	"github.com/soundhaven/soundhaven/api/middleware"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/usecase/usecase_music"
)

type UserController struct {
	usecase *usecase_music.UserUsecase
}

func NewUserController(uc *usecase_music.UserUsecase) *UserController {
	return &UserController{usecase: uc}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required"`
	Country  string `json:"country"`
}

func (c *UserController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	user := &domain_music.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Country:  req.Country,
	}
	if err := c.usecase.Register(ctx, user, req.Password); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.CreatedResponse(ctx, "user", user)
}

func (c *UserController) GetMe(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	user, err := c.usecase.Get(ctx, actor.ID)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "user", user)
}

func (c *UserController) GetByID(ctx *gin.Context) {
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	user, err := c.usecase.Get(ctx, id)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "user", user)
}

type UpdateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Country   string `json:"country"`
}

func (c *UserController) Update(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	id, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	user := &domain_music.User{
		ID:        id,
		Email:     req.Email,
		Username:  req.Username,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Country:   req.Country,
	}
	if err := c.usecase.Update(ctx, actor, user); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "user", user)
}

func (c *UserController) Delete(ctx *gin.Context) {
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
