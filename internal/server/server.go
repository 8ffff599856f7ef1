// Package server exposes the aligner over HTTP.
//
// Routes:
//
//	GET  /health     liveness, {"status":"ok"}
//	POST /v1/align   api.AlignRequestV1 in, api.AlignmentV1 out
//
// Every response carries X-Request-ID. Errors use api.ErrorV1.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dnalign-core/align"
	"dnalign/internal/engine"
	"dnalign/internal/output"
	"dnalign/internal/pairs"
	"dnalign/internal/pretty"
	"dnalign/pkg/api"
)

// HeaderRequestID carries the per-request id.
const HeaderRequestID = "X-Request-ID"

// Config fixes the defaults every request starts from.
type Config struct {
	Scheme       align.Scheme
	Method       string
	MaxLength    int
	MaxBodyBytes int64
	Strict       bool
}

type server struct {
	cfg Config
	log logrus.FieldLogger
}

// New returns the service router.
func New(cfg Config, log logrus.FieldLogger) http.Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	s := &server{cfg: cfg, log: log}

	r := chi.NewRouter()
	r.Use(requestID, s.accessLog, middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/v1/align", s.align)
	return r
}

type ctxKey struct{}

// RequestID returns the id attached by the middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// requestID keeps a caller-supplied X-Request-ID or mints a UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"request_id": RequestID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
		}).Info("request")
	})
}

func (s *server) align(w http.ResponseWriter, r *http.Request) {
	rid := RequestID(r.Context())

	var req api.AlignRequestV1
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, rid, fmt.Errorf("request body over %d bytes", s.cfg.MaxBodyBytes))
			return
		}
		writeError(w, http.StatusBadRequest, rid, fmt.Errorf("decode request: %w", err))
		return
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, rid, errors.New("decode request: trailing data after JSON object"))
		return
	}

	scheme := s.cfg.Scheme
	if req.Match != nil {
		scheme.Match = *req.Match
	}
	if req.Mismatch != nil {
		scheme.Mismatch = *req.Mismatch
	}
	if req.Gap != nil {
		scheme.Gap = *req.Gap
	}
	eng, err := engine.New(engine.Config{Scheme: scheme, Method: s.cfg.Method, MaxLength: s.cfg.MaxLength})
	if err != nil {
		writeError(w, http.StatusBadRequest, rid, err)
		return
	}

	id := req.ID
	if id == "" {
		id = rid
	}
	list, err := pairs.Prepare([]pairs.Pair{{ID: id, Top: req.Top, Bottom: req.Bottom}}, s.cfg.Strict)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, rid, err)
		return
	}
	res, err := eng.Align(list[0])
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, align.ErrTooLong) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, rid, err)
		return
	}
	s.log.WithFields(logrus.Fields{
		"request_id": rid,
		"score":      res.Alignment.Score,
		"length":     res.Stats.Length,
	}).Debug("aligned")

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, pretty.Render(res.Alignment))
		return
	}
	writeJSON(w, http.StatusOK, output.ToAPIAlignment(res))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, rid string, err error) {
	writeJSON(w, status, api.ErrorV1{Error: err.Error(), RequestID: rid})
}
