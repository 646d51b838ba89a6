package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/dreamwell/sleep-coach/docs"
	"github.com/dreamwell/sleep-coach/internal/api/handler"
	"github.com/dreamwell/sleep-coach/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	sleepLogHandler *handler.SleepLogHandler
	insightsHandler *handler.InsightsHandler
	frontendDir     string
}

func NewRouter(sleepLogHandler *handler.SleepLogHandler, insightsHandler *handler.InsightsHandler, frontendDir string) *Router {
	return &Router{
		sleepLogHandler: sleepLogHandler,
		insightsHandler: insightsHandler,
		frontendDir:     frontendDir,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Sleep logs
	r.Post("/log/{userId}", rt.sleepLogHandler.Submit)
	r.Get("/sleep-logs/{userId}", rt.sleepLogHandler.List)

	// AI insights
	r.Post("/analyze/{userId}", rt.insightsHandler.Analyze)
	r.Get("/latest-insight/{userId}", rt.insightsHandler.Latest)

	// Frontend bundle (index.html at /, assets below)
	if rt.frontendDir != "" {
		fs := http.FileServer(http.Dir(rt.frontendDir))
		r.Get("/*", fs.ServeHTTP)
	}

	return r
}
