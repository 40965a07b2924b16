package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
)

var validate = validator.New()

// Decode reads a JSON body into v and validates its struct tags.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return apperrors.InvalidInput("invalid JSON", err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.InvalidInput("invalid JSON", errors.New("unexpected data after JSON value"))
	}
	if err := validate.Struct(v); err != nil {
		return apperrors.InvalidInput("validation error", err)
	}
	return nil
}

// ParseID parses a numeric path id.
func ParseID(s string) (int64, error) {
	if s == "" {
		return 0, apperrors.InvalidInput("missing required ID", nil)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid ID "+strconv.Quote(s), nil)
	}
	return id, nil
}
