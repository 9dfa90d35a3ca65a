package controllers

import (
	"errors"
	"strconv"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/pkg/resp"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/services"

	"github.com/gin-gonic/gin"
)

// writeErr maps the service error taxonomy onto HTTP responses.
func writeErr(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
