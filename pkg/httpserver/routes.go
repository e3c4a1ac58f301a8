package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pixelvide/mailto-go/pkg/cache"
	"github.com/pixelvide/mailto-go/pkg/compose"
	"github.com/pixelvide/mailto-go/pkg/trigger"
	"github.com/rs/zerolog/log"
)

// anchorRequest is the trigger part of a POST /v1/anchors document; the rest
// of the document is the draft.
type anchorRequest struct {
	Trigger      *string           `json:"trigger"`
	TriggerAttrs map[string]string `json:"trigger_attrs"`
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.HandleHealthCheck)

	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/links", s.HandleLinks)
		r.Post("/anchors", s.HandleAnchors)
	})
}

func (s *Server) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleLinks composes a draft into its flattened body and mailto link.
func (s *Server) HandleLinks(w http.ResponseWriter, r *http.Request) {
	d, err := compose.DecodeDraft(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeDraftError(w, err)
		return
	}

	res := s.composeCached(r, d)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(res)
}

// HandleAnchors renders a draft as an HTML anchor fragment. A document without
// a trigger renders nothing.
func (s *Server) HandleAnchors(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req anchorRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeDraftError(w, errors.Join(compose.ErrInvalidDraft, err))
		return
	}
	d, err := compose.DecodeDraft(bytes.NewReader(data))
	if err != nil {
		writeDraftError(w, err)
		return
	}

	var elems []trigger.Element
	if req.Trigger != nil {
		elems = append(elems, trigger.Trigger{Content: *req.Trigger, Attrs: req.TriggerAttrs})
	}

	a := s.composer.Anchor(r.Context(), d, elems...)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	a.WriteHTML(w)
}

// composeCached returns the cached result for d when there is one. Cache errors are
// logged and the draft is composed directly.
func (s *Server) composeCached(r *http.Request, d compose.Draft) compose.Result {
	ctx := r.Context()
	if s.links == nil {
		return s.composer.Compose(ctx, d)
	}

	res, err := s.links.Get(ctx, d)
	if err == nil {
		return res
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Ctx(ctx).Warn().Err(err).Msg("Link cache read failed")
	}

	res = s.composer.Compose(ctx, d)
	if err := s.links.Put(ctx, d, res); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Link cache write failed")
	}
	return res
}

func writeDraftError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, compose.ErrEmptyRecipients) {
		status = http.StatusUnprocessableEntity
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}
