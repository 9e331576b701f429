package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Ascendant_Go/internal/catalog"
	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/engine"
	"github.com/osse101/Ascendant_Go/internal/handler"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/metrics"
	"github.com/osse101/Ascendant_Go/internal/sse"
)

// Options carries the HTTP settings for NewServer
type Options struct {
	Port     int
	Version  string
	Location *time.Location
}

type Server struct {
	httpServer *http.Server
	storage    handler.Pinger
	service    engine.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, storage handler.Pinger, service engine.Service, cat *catalog.Catalog, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(storage))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Live notification stream
	if hub != nil {
		r.Get("/events", sse.Handler(hub))
	}

	h := handler.NewEngineHandlers(service, cat, opts.Location)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/status", h.HandleGetStatus())
		r.Post("/reconcile", h.HandleReconcile())
		r.Get("/catalog", h.HandleGetCatalog())

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.HandleListTasks())
			r.Post("/", h.HandleCreateTask())
			r.Post("/{id}/complete", h.HandleCompleteTask())
			r.Delete("/{id}", h.HandleDeleteItem(domain.KindTask))
		})

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", h.HandleListQuests())
			r.Post("/", h.HandleCreateQuest())
			r.Post("/catalog", h.HandleCreateQuestFromCatalog())
			r.Post("/{id}/start", h.HandleStartQuest())
			r.Post("/{id}/complete", h.HandleCompleteQuest())
			r.Post("/{id}/tasks", h.HandleAddSubTask())
			r.Post("/{id}/tasks/{taskID}/complete", h.HandleCompleteSubTask())
			r.Delete("/{id}", h.HandleDeleteItem(domain.KindQuest))
		})

		r.Route("/missions", func(r chi.Router) {
			r.Get("/", h.HandleListMissions())
			r.Post("/", h.HandleCreateMission())
			r.Post("/catalog", h.HandleCreateMissionFromCatalog())
			r.Post("/{id}/start", h.HandleStartMission())
			r.Post("/{id}/steps/{index}/complete", h.HandleCompleteMissionStep())
			r.Post("/{id}/complete", h.HandleCompleteMission())
			r.Delete("/{id}", h.HandleDeleteItem(domain.KindMission))
		})

		r.Route("/redemption", func(r chi.Router) {
			r.Post("/start", h.HandleStartRedemption())
			r.Post("/abandon", h.HandleAbandonRedemption())
			r.Post("/attempt", h.HandleAttemptRedemption())
		})

		r.Route("/journal", func(r chi.Router) {
			r.Get("/daily", h.HandleDailyJournal())
			r.Get("/weekly", h.HandleWeeklyJournal())
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		storage: storage,
		service: service,
	}
}

// Handler returns the root router
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush passes through so /events can stream
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
