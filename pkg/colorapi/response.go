package colorapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/csscolor/pkg/csscolor"
)

// Response is the envelope of every JSON body the API writes.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// errorStatus maps an error to its HTTP status and stable code.
// Configuration and input errors are the caller's fault; anything else is ours.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, "invalid_json"
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, "unsupported_media_type"
	case errors.Is(err, ErrRuleNotFound):
		return http.StatusNotFound, "rule_not_found"
	case errors.Is(err, csscolor.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, csscolor.ErrUnexpectedType):
		return http.StatusUnprocessableEntity, "unexpected_type"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
