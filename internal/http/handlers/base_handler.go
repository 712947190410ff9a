// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tollwise/internal/maps"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, maps.ErrRouteNotFound):
		writeError(c, http.StatusNotFound, "route not found")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
