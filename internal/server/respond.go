package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	apierr "github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/observability"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/store"
)

// errorBody is the JSON document sent with every failed response.
type errorBody struct {
	Code    apierr.Code `json:"code"`
	Message string      `json:"message"`
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "error", err)
	}
}

func (s *Server) respondArtifact(w http.ResponseWriter, format string, data []byte, cached bool) {
	w.Header().Set("Content-Type", contentTypes[format])
	setCacheHeader(w, cached)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("write artifact", "error", err)
	}
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

// fail answers with the status and code derived from err. Internal errors are
// logged and their details withheld from the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"route", routePattern(r),
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
	}
	s.respondJSON(w, status, body)
}

func classify(err error) (int, errorBody) {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound, errorBody{Code: apierr.ErrCodeNotFound, Message: err.Error()}
	}
	code := apierr.GetCode(err)
	switch {
	case code.Invalid():
		return http.StatusBadRequest, errorBody{Code: code, Message: apierr.UserMessage(err)}
	case code == apierr.ErrCodeNotFound:
		return http.StatusNotFound, errorBody{Code: code, Message: apierr.UserMessage(err)}
	case code == apierr.ErrCodeUnsupported:
		return http.StatusNotImplemented, errorBody{Code: code, Message: apierr.UserMessage(err)}
	}
	return http.StatusInternalServerError, errorBody{Code: apierr.ErrCodeInternal, Message: "internal error"}
}
