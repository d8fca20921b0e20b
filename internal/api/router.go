/*
Package api
File: router.go
Description:
    Route table and middleware stack. The websocket endpoint is mounted
    alongside the REST routes; both share CORS, metrics and request IDs.
*/

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/everforgeworks/umami-lab/internal/logger"
	"github.com/everforgeworks/umami-lab/internal/metrics"
)

// NewRouter builds the HTTP handler for the API and the websocket feed.
func NewRouter(h *Handlers, hub *Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", h.HandleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.HandleGetState)
		r.Get("/ingredients", h.HandleGetCatalog)

		r.Route("/market", func(r chi.Router) {
			r.Post("/ingredients", h.HandleBuyIngredient)
			r.Post("/upgrades", h.HandleBuyUpgrade)
		})

		r.Post("/service/start", h.HandleStartService)

		r.Route("/dish", func(r chi.Router) {
			r.Post("/ingredients", h.HandleAddIngredient)
			r.Delete("/ingredients/{index}", h.HandleRemoveIngredient)
			r.Post("/serve", h.HandleServe)
		})

		r.Post("/day/next", h.HandleNextDay)
		r.Post("/restart", h.HandleRestart)

		r.Route("/runs", func(r chi.Router) {
			r.Get("/", h.HandleListRuns)
			r.Delete("/", h.HandleClearRuns)
			r.Get("/{id}", h.HandleGetRun)
		})
	})

	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})

	return r
}

// corsMiddleware lets a browser client on another origin call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware tags each request with an ID and logs its completion.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") || strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.FromContext(ctx).Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
