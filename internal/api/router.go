package api

import (
	"encoding/json"
	"net/http"
	"time"

	"launchdash/domain/chart"
	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/charts"
	"launchdash/internal/dataset"
	"launchdash/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request identifier on responses.
const RequestIDHeader = "X-Request-ID"

// Options tunes the chart API.
type Options struct {
	PayloadStep float64
}

// Handler serves chart specifications over a loaded dataset.
type Handler struct {
	result *dataset.Result
	opts   Options
	logger *internal.Logger
}

// NewHandler creates a Handler. result must be fully loaded.
func NewHandler(result *dataset.Result, opts Options, logger *internal.Logger) *Handler {
	if opts.PayloadStep <= 0 {
		opts.PayloadStep = 1000
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Handler{result: result, opts: opts, logger: logger}
}

// Router returns the chi router for the chart API, rooted at "/".
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(h.requestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/sites", h.handleSites)
	r.Get("/summary", h.handleSummary)
	r.Route("/charts", func(r chi.Router) {
		r.Get("/site-success", h.handleSiteSuccess)
		r.Get("/payload-scatter", h.handlePayloadScatter)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, errors.NotFound("endpoint "+r.URL.Path))
	})
	return r
}

// SummaryResponse describes the loaded dataset.
type SummaryResponse struct {
	SnapshotID  string                `json:"snapshot_id"`
	Fingerprint string                `json:"fingerprint"`
	Source      string                `json:"source"`
	LoadedAt    time.Time             `json:"loaded_at"`
	Records     int                   `json:"records"`
	Sites       []string              `json:"sites"`
	Payload     launch.PayloadSummary `json:"payload"`
	Slider      Slider                `json:"slider"`
}

func (h *Handler) handleSites(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"options": SiteOptions(h.result.Dataset),
		"default": launch.AllSites,
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ds := h.result.Dataset
	h.writeJSON(w, http.StatusOK, SummaryResponse{
		SnapshotID:  ds.ID().String(),
		Fingerprint: ds.Fingerprint().String(),
		Source:      ds.Source(),
		LoadedAt:    ds.LoadedAt(),
		Records:     ds.Len(),
		Sites:       ds.Sites(),
		Payload:     h.result.Summary,
		Slider:      NewSlider(ds, h.opts.PayloadStep),
	})
}

func (h *Handler) handleSiteSuccess(w http.ResponseWriter, r *http.Request) {
	sel, err := ParseSelection(r.URL.Query(), h.result.Dataset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeChart(w, charts.SiteSuccess(sel.Site, h.result.Dataset))
}

func (h *Handler) handlePayloadScatter(w http.ResponseWriter, r *http.Request) {
	sel, err := ParseSelection(r.URL.Query(), h.result.Dataset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeChart(w, charts.PayloadScatter(sel.Site, sel.Payload, h.result.Dataset))
}

func (h *Handler) writeChart(w http.ResponseWriter, spec chart.Spec) {
	h.writeJSON(w, http.StatusOK, spec)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("[API] Failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("[API] %s %s: %v", r.Method, r.URL.Path, err)
	} else {
		h.logger.Debug("[API] %s %s rejected: %v", r.Method, r.URL.Path, err)
	}
	h.writeJSON(w, status, map[string]string{
		"error":      err.Error(),
		"code":       errors.GetCode(err),
		"request_id": w.Header().Get(RequestIDHeader),
	})
}

// requestID tags every response with a fresh or client-supplied request id.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = core.NewRequestID().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.With(
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", w.Header().Get(RequestIDHeader)),
		).Debug("[API] request served")
	})
}
