package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, gin.H{"error": errorBody{Code: code, Message: message}})
}

func SuccessResponse(ctx *gin.Context, key string, data interface{}) {
	ctx.JSON(http.StatusOK, gin.H{key: data})
}

func CreatedResponse(ctx *gin.Context, key string, data interface{}) {
	ctx.JSON(http.StatusCreated, gin.H{key: data})
}

// DomainError maps the domain error taxonomy onto HTTP statuses.
// Unrecognized errors are reported as storage failures rather than
// leaking internals with a 500 stack dump.
func DomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrPermissionDenied):
		ErrorResponse(ctx, http.StatusForbidden, "PERMISSION_DENIED", err.Error())
	case errors.Is(err, domain.ErrValidation):
		ErrorResponse(ctx, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrConflict):
		ErrorResponse(ctx, http.StatusConflict, "CONFLICT", err.Error())
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, "STORAGE", "internal storage error")
	}
}
