package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tomsarry/content_backend/logger"
	"github.com/tomsarry/content_backend/models"
)

// internalError logs err and answers 500 with its text
func internalError(c *gin.Context, log zerolog.Logger, msg string, err error) {
	log.Error().Err(err).Msg(msg)
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
}

func missingField(c *gin.Context, field string) {
	invalidField(c, field, "field required", "value_error.missing")
}

// invalidField answers 422 naming the body field that failed
func invalidField(c *gin.Context, field, msg, typ string) {
	c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{Detail: []models.FieldError{{
		Loc:  []string{"body", field},
		Msg:  msg,
		Type: typ,
	}}})
}

// Recovery turns a panic in a handler into a 500 carrying the panic value
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		log := logger.FromContext(c.Request.Context(), "recovery")
		err, ok := rec.(error)
		if !ok {
			err = fmt.Errorf("%v", rec)
		}
		log.Error().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic_value", rec).
			Msg("panic recovered in handler")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
	})
}

// NotFound answers unknown paths
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
}

// MethodNotAllowed answers known paths requested with the wrong method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Detail: "Method Not Allowed"})
}
