// Package controller maps HTTP verbs on the customer and vendor paths to
// exactly one service call each, and maps service errors to status codes.
package controller

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
	"github.com/unclebandit/mvc-rest-api/internal/response"
)

// Route binds a method and chi path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// writeError is the one place an error becomes an HTTP status. Internal
// errors are logged and answered with the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusCode(err)
	logger := zerolog.Ctx(r.Context())

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		response.WriteError(w, r, status, http.StatusText(status))
		return
	}

	logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	response.WriteError(w, r, status, err.Error())
}
