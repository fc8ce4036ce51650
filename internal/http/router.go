package httpapi

import (
	"net/http"

	"github.com/fairyhunter13/deal-finder-service/internal/obs"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /areas", app.listAreasHandler)
	mux.HandleFunc("GET /areas/{area}/products", app.listProductsHandler)
	mux.HandleFunc("GET /areas/{area}/products/{product_id}", app.getProductHandler)
	mux.HandleFunc("GET /search", app.searchHandler)
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.HandleFunc("GET /debug/metrics", app.metricsHandler)
	mux.Handle("GET /metrics", obs.MetricsHandler())
	mux.HandleFunc("GET /openapi.yaml", app.openapiHandler)
	mux.HandleFunc("GET /docs", app.docsHandler)
	if app.Cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(app.Cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /", app.notFoundHandler)
	}
	return WithRequestID(WithLogging(mux))
}
