package controllers

import (
	"errors"

	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrTokenNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInsufficientBalance):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTokenUsed),
		errors.Is(err, services.ErrCanteenClosed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
