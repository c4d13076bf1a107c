package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wordstorm/pkg/buildinfo"
	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	apierr "github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/store"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

// handleLayout counts and places the request's words and answers with the
// layout document.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	_, l, hit, err := s.layout(r, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	setCacheHeader(w, hit)
	s.respondJSON(w, http.StatusOK, layoutDocument(l, opts))
}

// handleRender runs the whole pipeline for a single format.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := decodeOptions(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	hit := result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	s.respondArtifact(w, format, result.Artifacts[format], hit)
}

// handleCreateCloud lays out the request's words and saves the result.
func (s *Server) handleCreateCloud(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := apierr.ValidateTitle(opts.Title); err != nil {
		s.fail(w, r, err)
		return
	}
	words, l, _, err := s.layout(r, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	c := store.New(opts.Title, wordcloud.NewWords(words).Words, layoutDocument(l, opts))
	if err := s.store.Save(r.Context(), c); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/clouds/"+c.ID)
	s.respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListClouds(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.fail(w, r, apierr.New(apierr.ErrCodeInvalidInput, "invalid limit: %q", v))
			return
		}
		limit = n
	}
	list, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if list == nil {
		list = []store.Summary{}
	}
	s.respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetCloud(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

// handleRenderCloud renders a saved cloud. Query parameters style, title,
// animate and scale override what the cloud recorded.
func (s *Server) handleRenderCloud(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := renderQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Formats = []string{format}

	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts = pipeline.ApplyLayoutMetadata(opts, c.Layout)

	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), c.Layout.ToCloud(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respondArtifact(w, format, artifacts[format], hit)
}

func (s *Server) handleDeleteCloud(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// layout runs the count and layout stages for opts.
func (s *Server) layout(r *http.Request, opts pipeline.Options) ([]cloud.Word, cloud.Layout, bool, error) {
	if opts.Style != "" {
		if err := pipeline.ValidateStyle(opts.Style); err != nil {
			return nil, cloud.Layout{}, false, err
		}
	}
	words, _, err := s.runner.Count(r.Context(), opts)
	if err != nil {
		return nil, cloud.Layout{}, false, err
	}
	l, hit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), words, opts)
	if err != nil {
		return nil, cloud.Layout{}, false, err
	}
	return words, l, hit, nil
}

// layoutDocument serializes l with the style and title requested in opts.
func layoutDocument(l cloud.Layout, opts pipeline.Options) wordcloud.Layout {
	doc := wordcloud.FromCloud(l)
	doc.Style = opts.Style
	doc.Title = opts.Title
	return doc
}

func decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return opts, apierr.New(apierr.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		case errors.Is(err, io.EOF):
			return opts, apierr.New(apierr.ErrCodeInvalidInput, "request body is empty")
		}
		return opts, apierr.Wrap(apierr.ErrCodeInvalidInput, err, "decode request")
	}
	return opts, nil
}

func renderQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Style: q.Get("style"),
		Title: q.Get("title"),
	}
	if v := q.Get("animate"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, apierr.New(apierr.ErrCodeInvalidInput, "invalid animate: %q", v)
		}
		opts.Animate = b
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, apierr.New(apierr.ErrCodeInvalidInput, "invalid scale: %q", v)
		}
		opts.Scale = f
	}
	return opts, nil
}
