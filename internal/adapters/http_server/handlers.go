package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	"filmwiki/internal/l10n"
)

// Previewer renders pages on demand; *app.PreviewService implements it.
type Previewer interface {
	Page(ctx context.Context, kind domain.Kind, id int64, lang string) ([]string, error)
	Invalidate(ctx context.Context, kind domain.Kind, id int64, langs ...string) error
}

type Handlers struct{ P Previewer }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/{kind}/{id}/page", h.getPage)
	s.mux.Delete("/v1/{kind}/{id}/page", h.purgePage)
}

// pageLang picks the page language from ?lang= or, without it, from
// Accept-Language. Only supported languages are served, so the previews
// cached per work stay a closed set that purgePage can drop entirely.
func pageLang(r *http.Request) (string, bool) {
	if q := r.URL.Query().Get("lang"); q != "" {
		return l10n.Canonical(q)
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		if lang, ok := l10n.Canonical(strings.TrimSpace(strings.Split(strings.Split(al, ",")[0], ";")[0])); ok {
			return lang, true
		}
	}
	return l10n.English, true
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// pageTarget parses the {kind}/{id} part of a page route, answering with a
// problem on failure.
func pageTarget(w http.ResponseWriter, r *http.Request) (domain.Kind, int64, bool) {
	kind, ok := domain.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown work kind")
		return "", 0, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return "", 0, false
	}
	return kind, id, true
}

func (h *Handlers) getPage(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := pageTarget(w, r)
	if !ok {
		return
	}
	lang, ok := pageLang(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Unsupported Language",
			"lang must be one of "+strings.Join(l10n.Supported(), ", "))
		return
	}

	lines, err := h.P.Page(r.Context(), kind, id, lang)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", string(kind)+" not found")
		return
	case errors.Is(err, content.ErrValidation):
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Work", err.Error())
		return
	case err != nil:
		log.Error().Err(err).Str("kind", string(kind)).Int64("id", id).Msg("render page failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "page could not be rendered")
		return
	}

	body := []byte(strings.Join(lines, "\n") + "\n")
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", lang)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}

func (h *Handlers) purgePage(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := pageTarget(w, r)
	if !ok {
		return
	}
	if err := h.P.Invalidate(r.Context(), kind, id, l10n.Supported()...); err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Int64("id", id).Msg("purge page cache failed")
		writeProblem(w, http.StatusBadGateway, "Cache Unavailable", "cached previews could not be dropped")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
