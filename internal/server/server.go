// Package server hosts the impact dashboard web UI and the JSON API it uses
// to read and edit impact values.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/impact-dashboard/internal/impact"
	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/iwvelando/impact-dashboard/pkg/output"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

//go:embed static/*
var staticFiles embed.FS

// Options configures the handler.
type Options struct {
	Title          string
	Subtitle       string
	Version        string
	MaxBodySize    int64
	AllowedOrigins []string
	RateLimit      float64 // requests per second, 0 disables
	RateBurst      int
}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	title       string
	subtitle    string
	limiter     *rate.Limiter

	// mu serializes access to model; the model itself is single-threaded.
	mu    sync.Mutex
	model *impact.Model
}

type updateRequest struct {
	Value any `json:"value"`
}

// NewHandler constructs the HTTP handler that serves the web UI and impact API.
// The handler owns model for the life of the process.
func NewHandler(logger *zap.Logger, model *impact.Model, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == nil {
		model = impact.NewModel()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		title:       opts.Title,
		subtitle:    opts.Subtitle,
		model:       model,
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = constants.DefaultRateBurst
		}
		h.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.rateLimit)
		}
		r.Get("/version", h.handleVersion)
		r.Get("/impact", h.handleSummary)
		r.Get("/impact/export.csv", h.handleExport)
		r.Put("/impact/{index}", h.handleUpdate)
	})

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.view(h.summary()))
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="economic-impact.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(output.CsvString(h.summary()))); err != nil {
		h.logger.Warn("failed to write CSV export",
			zap.String("op", "server.handleExport"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdate"

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, "unknown impact record", op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var req updateRequest
	if err := decoder.Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode update: %v", err), op)
		return
	}

	h.mu.Lock()
	_, err = h.model.SetValue(index, req.Value)
	summary := h.model.Summary()
	h.mu.Unlock()

	if err != nil {
		h.respondError(w, http.StatusNotFound, "unknown impact record", op)
		return
	}

	h.writeJSON(w, http.StatusOK, h.view(summary))
}

func (h *handler) summary() impact.Summary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.model.Summary()
}

func (h *handler) view(summary impact.Summary) output.SummaryView {
	return output.NewSummaryView(h.title, h.subtitle, summary)
}

func (h *handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			h.respondError(w, http.StatusTooManyRequests, "rate limit exceeded", "server.rateLimit")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			zap.String("op", "server.accessLog"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("requestId", middleware.GetReqID(r.Context())),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("impact request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
