package controller_social

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/api/controller"
	"github.com/soundhaven/soundhaven/api/middleware"
	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/usecase/usecase_social"
)

type SocialEdgeController struct {
	usecase *usecase_social.SocialGraphUsecase
}

func NewSocialEdgeController(uc *usecase_social.SocialGraphUsecase) *SocialEdgeController {
	return &SocialEdgeController{usecase: uc}
}

type EdgeRequest struct {
	TargetID   string `json:"target_id" form:"target_id" binding:"required"`
	TargetKind string `json:"target_kind" form:"target_kind" binding:"required"`
	Relation   string `json:"relation" form:"relation" binding:"required"`
}

// parse rejects unknown kinds before anything touches the store.
func (req *EdgeRequest) parse() (primitive.ObjectID, domain.TargetKind, domain.RelationKind, error) {
	targetID, err := primitive.ObjectIDFromHex(req.TargetID)
	if err != nil {
		return primitive.NilObjectID, "", "", err
	}
	kind, err := domain.ParseTargetKind(req.TargetKind)
	if err != nil {
		return primitive.NilObjectID, "", "", err
	}
	relation, err := domain.ParseRelationKind(req.Relation)
	if err != nil {
		return primitive.NilObjectID, "", "", err
	}
	return targetID, kind, relation, nil
}

func (c *SocialEdgeController) Create(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	var req EdgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	targetID, kind, relation, err := req.parse()
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	edge, err := c.usecase.Create(ctx, actor, targetID, kind, relation)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "edge", edge)
}

func (c *SocialEdgeController) Destroy(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	var req EdgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	targetID, kind, relation, err := req.parse()
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	if err := c.usecase.Destroy(ctx, actor, targetID, kind, relation); err != nil {
		controller.DomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *SocialEdgeController) Exists(ctx *gin.Context) {
	actor, _ := middleware.ActorFrom(ctx)
	var req EdgeRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	targetID, kind, relation, err := req.parse()
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	exists, err := c.usecase.Exists(ctx, actor, targetID, kind, relation)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "exists", exists)
}

// listParams reads the shared relation / target_kind / paging query set.
func listParams(ctx *gin.Context) (domain.RelationKind, *domain.TargetKind, domain.Page, bool) {
	relation, err := domain.ParseRelationKind(ctx.Query("relation"))
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return "", nil, domain.Page{}, false
	}
	var kindFilter *domain.TargetKind
	if raw := ctx.Query("target_kind"); raw != "" {
		kind, err := domain.ParseTargetKind(raw)
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
			return "", nil, domain.Page{}, false
		}
		kindFilter = &kind
	}
	return relation, kindFilter, controller.PageQuery(ctx), true
}

func (c *SocialEdgeController) ListBySubject(ctx *gin.Context) {
	subjectID, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	relation, kindFilter, page, ok := listParams(ctx)
	if !ok {
		return
	}
	edges, err := c.usecase.ListBySubject(ctx, subjectID, relation, kindFilter, page)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "edges", edges)
}

func (c *SocialEdgeController) ListByTarget(ctx *gin.Context) {
	targetID, ok := controller.IDParam(ctx, "id")
	if !ok {
		return
	}
	relation, kindFilter, page, ok := listParams(ctx)
	if !ok {
		return
	}
	edges, err := c.usecase.ListByTarget(ctx, targetID, relation, kindFilter, page)
	if err != nil {
		controller.DomainError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "edges", edges)
}
