package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fairyhunter13/deal-finder-service/internal/catalog"
	"github.com/fairyhunter13/deal-finder-service/internal/config"
	httpopenapi "github.com/fairyhunter13/deal-finder-service/internal/http/openapi"
	"github.com/fairyhunter13/deal-finder-service/internal/pricing"
)

// App holds the dependencies of the HTTP handlers.
type App struct {
	Cfg     config.Config
	Catalog *catalog.Catalog
	Prices  *pricing.Aggregator
	started time.Time
}

func NewApp(cfg config.Config, cat *catalog.Catalog) *App {
	return &App{Cfg: cfg, Catalog: cat, Prices: pricing.NewAggregator(cat), started: time.Now()}
}

func (a *App) listAreasHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AreasView{Areas: a.Prices.ListAreas()})
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	area := r.PathValue("area")
	summaries, err := a.Prices.SummarizeCheapestProducts(area)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AreaProductsView{
		Area:     catalog.NormalizeArea(area),
		Products: NewProductViews(summaries),
	})
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	area := r.PathValue("area")
	id := r.PathValue("product_id")
	s, found, err := a.Prices.FindProduct(area, id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	if !found {
		WriteJSONError(w, http.StatusNotFound, "product_not_found", fmt.Sprintf("Product '%s' not found in area '%s'", id, area))
		return
	}
	writeJSON(w, http.StatusOK, NewProductView(s))
}

func (a *App) searchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	results, err := a.Prices.Search(q)
	if errors.Is(err, pricing.ErrEmptyQuery) {
		WriteJSONError(w, http.StatusBadRequest, "invalid_query", "Query parameter 'q' is required.")
		return
	}
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SearchView{Query: q, Results: NewSearchResultViews(results)})
}

func (a *App) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusNotFound, "not_found", "")
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	st := a.Catalog.Stats()
	m := map[string]any{
		"areas":        st.Areas,
		"listings":     st.Listings,
		"store_prices": st.StorePrices,
		"uptime_sec":   time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Deal Finder API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
