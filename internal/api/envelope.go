package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratcore/domain/core"
)

// Envelope is the shared response wrapper: every endpoint returns either
// {ok:true, response} or {ok:false, message}, never a partial 200.
type Envelope struct {
	OK       bool   `json:"ok"`
	Response any    `json:"response,omitempty"`
	Message  string `json:"message,omitempty"`
}

func respondOK(c *gin.Context, response any) {
	c.JSON(http.StatusOK, Envelope{OK: true, Response: response})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{OK: false, Message: message})
}

// respondEngineError maps engine errors onto the error taxonomy: validation
// problems become 400s, unknown resources 404s, everything else a 500 with a
// human-readable message and no stack trace.
func respondEngineError(c *gin.Context, err error) {
	switch {
	case core.IsValidationError(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case core.IsNotFoundError(err):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
