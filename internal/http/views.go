package httpapi

import (
	"net/url"

	"github.com/fairyhunter13/deal-finder-service/internal/model"
)

// StorePriceView is the JSON shape of one store price.
type StorePriceView struct {
	StoreName string  `json:"store_name"`
	Price     float64 `json:"price"`
}

// ProductView is the JSON shape of a product summary.
type ProductView struct {
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	CheapestPrice float64          `json:"cheapest_price"`
	CheapestStore string           `json:"cheapest_store"`
	Stores        []StorePriceView `json:"stores"`
}

// AreasView is the response of GET /areas.
type AreasView struct {
	Areas []string `json:"areas"`
}

// AreaProductsView is the response of GET /areas/{area}/products.
type AreaProductsView struct {
	Area     string        `json:"area"`
	Products []ProductView `json:"products"`
}

// NewProductView renders a summary with prices as JSON numbers.
func NewProductView(s model.ProductSummary) ProductView {
	v := ProductView{
		ProductID:     s.ProductID,
		Name:          s.Name,
		Category:      s.Category,
		CheapestPrice: s.CheapestPrice.InexactFloat64(),
		CheapestStore: s.CheapestStore,
		Stores:        make([]StorePriceView, 0, len(s.Stores)),
	}
	for _, p := range s.Stores {
		v.Stores = append(v.Stores, StorePriceView{StoreName: p.StoreName, Price: p.Price.InexactFloat64()})
	}
	return v
}

// NewProductViews renders a list of summaries.
func NewProductViews(summaries []model.ProductSummary) []ProductView {
	out := make([]ProductView, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, NewProductView(s))
	}
	return out
}

// SearchResultView is one hit of GET /search. Link points at the product endpoint.
type SearchResultView struct {
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Link          string  `json:"link"`
	Area          string  `json:"area"`
	ProductID     string  `json:"product_id"`
	CheapestStore string  `json:"cheapest_store"`
}

// SearchView is the response of GET /search.
type SearchView struct {
	Query   string             `json:"query"`
	Results []SearchResultView `json:"results"`
}

// NewSearchResultViews renders search hits.
func NewSearchResultViews(results []model.SearchResult) []SearchResultView {
	out := make([]SearchResultView, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResultView{
			Title:         r.Summary.Name,
			Price:         r.Summary.CheapestPrice.InexactFloat64(),
			Link:          "/areas/" + url.PathEscape(r.Area) + "/products/" + url.PathEscape(r.Summary.ProductID),
			Area:          r.Area,
			ProductID:     r.Summary.ProductID,
			CheapestStore: r.Summary.CheapestStore,
		})
	}
	return out
}
