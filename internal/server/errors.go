package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/san-kum/tensile/internal/ingest"
	"github.com/san-kum/tensile/internal/tensile"
)

// errBadRequest marks malformed requests that never reached ingest or analysis.
var errBadRequest = errors.New("bad request")

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	// Columns lists the headers seen when column detection failed.
	Columns []string `json:"columns,omitempty"`
}

// classify maps an ingest or analysis error to a status code and kind.
func classify(err error) (int, errorResponse) {
	resp := errorResponse{Error: err.Error()}

	var colErr *ingest.ColumnError
	switch {
	case errors.Is(err, tensile.ErrInvalidParameter):
		resp.Kind = "invalid_parameter"
		return http.StatusBadRequest, resp
	case errors.Is(err, tensile.ErrInsufficientData):
		resp.Kind = "insufficient_data"
		return http.StatusUnprocessableEntity, resp
	case errors.Is(err, tensile.ErrLengthMismatch):
		resp.Kind = "length_mismatch"
		return http.StatusBadRequest, resp
	case errors.Is(err, tensile.ErrNonFiniteSample):
		resp.Kind = "non_finite_sample"
		return http.StatusBadRequest, resp
	case errors.As(err, &colErr):
		resp.Kind = "columns_not_found"
		resp.Columns = colErr.Found
		return http.StatusBadRequest, resp
	case errors.Is(err, ingest.ErrUnsupportedFormat), errors.Is(err, ingest.ErrEmptyTable),
		errors.Is(err, ingest.ErrUnreadable):
		resp.Kind = "unreadable_input"
		return http.StatusBadRequest, resp
	case errors.Is(err, errBadRequest):
		resp.Kind = "bad_request"
		return http.StatusBadRequest, resp
	default:
		resp.Kind = "internal"
		return http.StatusInternalServerError, resp
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
