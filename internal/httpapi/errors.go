package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/bookkeeper/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "bad_request")
}

func notFound(w http.ResponseWriter) {
	writeErr(w, http.StatusNotFound, "not_found", "not_found")
}

// invalid reports a ValidationError as 400 with the offending field.
func (s *Server) invalid(w http.ResponseWriter, r *http.Request, err error) {
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		badRequest(w, err.Error())
		return
	}
	validationRejections.WithLabelValues(ve.Field).Inc()
	s.log.Debug("validation rejected", "req_id", chimw.GetReqID(r.Context()), "field", ve.Field, "err", ve.Message)
	toJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Code: errs.ErrInvalid.Error(), Field: ve.Field})
}

// serviceErr maps a service error onto a status. Storage failures are logged
// here and nowhere else.
func (s *Server) serviceErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalid):
		s.invalid(w, r, err)
	case errors.Is(err, errs.ErrNotFound):
		notFound(w)
	default:
		s.log.Error("storage failure", "req_id", chimw.GetReqID(r.Context()), "method", r.Method, "path", r.URL.Path, "err", err)
		writeErr(w, http.StatusInternalServerError, "internal server error", "internal")
	}
}

// requireJSON ensures the request has Content-Type application/json (optionally with params).
// Writes 415 if not JSON and returns false; otherwise returns true.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		writeErr(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "unsupported_media_type")
		return false
	}
	return true
}

// decodeJSON decodes a single JSON object, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !requireJSON(w, r) {
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return false
	}
	if dec.More() {
		badRequest(w, "invalid JSON: unexpected data after the request object")
		return false
	}
	return true
}
