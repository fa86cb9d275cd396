package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

// IDParam parses a path parameter as an ObjectID.
func IDParam(ctx *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(name))
	if err != nil {
		ErrorResponse(ctx, 400, "INVALID_PARAMS", "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// PageQuery reads offset/limit query values, clamped by domain.NewPage.
func PageQuery(ctx *gin.Context) domain.Page {
	offset, _ := strconv.ParseInt(ctx.DefaultQuery("offset", "0"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "0"), 10, 64)
	return domain.NewPage(offset, limit)
}
