// Package pricing finds the cheapest store offer for each product in an area.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fairyhunter13/deal-finder-service/internal/catalog"
	"github.com/fairyhunter13/deal-finder-service/internal/model"
	"github.com/fairyhunter13/deal-finder-service/internal/obs"
)

var (
	// ErrAreaNotFound is returned, wrapped in a *catalog.AreaNotFoundError, for unknown areas.
	ErrAreaNotFound = catalog.ErrAreaNotFound
	// ErrEmptyPriceList is returned by Cheapest for a listing without prices.
	ErrEmptyPriceList = catalog.ErrEmptyPriceList
	// ErrEmptyQuery is returned by Search for a blank query.
	ErrEmptyQuery = errors.New("query is required")
)

// MaxSearchResults caps the number of products Search returns.
const MaxSearchResults = 5

const (
	opListAreas       = "list_areas"
	opProductsForArea = "products_for_area"
	opSummarize       = "summarize_cheapest_products"
	opFindProduct     = "find_product"
	opSearch          = "search"
)

// Aggregator answers read-only price queries against a catalog.
// It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	cat *catalog.Catalog
}

// NewAggregator returns an Aggregator over cat.
func NewAggregator(cat *catalog.Catalog) *Aggregator {
	return &Aggregator{cat: cat}
}

// ListAreas returns all known areas sorted ascending.
func (a *Aggregator) ListAreas() []string {
	obs.RecordLookup(opListAreas, obs.OutcomeOK)
	return a.cat.Areas()
}

// ProductsForArea returns an area's listings in dataset order.
func (a *Aggregator) ProductsForArea(area string) ([]model.ProductListing, error) {
	listings, err := a.cat.Listings(area)
	record(opProductsForArea, err)
	return listings, err
}

// Cheapest returns the store price with the lowest price.
// When several stores share the minimum, the first one in order wins.
func Cheapest(prices []model.StorePrice) (model.StorePrice, error) {
	if len(prices) == 0 {
		return model.StorePrice{}, ErrEmptyPriceList
	}
	best := prices[0]
	for _, p := range prices[1:] {
		if p.Price.LessThan(best.Price) {
			best = p
		}
	}
	return best, nil
}

// Summarize builds the cheapest-offer summary of a single listing.
func Summarize(l model.ProductListing) (model.ProductSummary, error) {
	best, err := Cheapest(l.Prices)
	if err != nil {
		return model.ProductSummary{}, fmt.Errorf("product %s: %w", l.ProductID, err)
	}
	return model.ProductSummary{
		ProductID:     l.ProductID,
		Name:          l.Name,
		Category:      l.Category,
		CheapestPrice: best.Price,
		CheapestStore: best.StoreName,
		Stores:        append([]model.StorePrice(nil), l.Prices...),
	}, nil
}

// SummarizeCheapestProducts returns one summary per listing of the area, in order.
func (a *Aggregator) SummarizeCheapestProducts(area string) ([]model.ProductSummary, error) {
	listings, err := a.cat.Listings(area)
	if err != nil {
		record(opSummarize, err)
		return nil, err
	}
	out := make([]model.ProductSummary, 0, len(listings))
	for _, l := range listings {
		s, err := Summarize(l)
		if err != nil {
			record(opSummarize, err)
			return nil, err
		}
		out = append(out, s)
	}
	record(opSummarize, nil)
	return out, nil
}

// FindProduct looks up one product of an area by exact id.
// found is false, with a nil error, when the area exists but lacks the product.
func (a *Aggregator) FindProduct(area, productID string) (summary model.ProductSummary, found bool, err error) {
	listings, err := a.cat.Listings(area)
	if err != nil {
		record(opFindProduct, err)
		return model.ProductSummary{}, false, err
	}
	for _, l := range listings {
		if l.ProductID != productID {
			continue
		}
		s, err := Summarize(l)
		record(opFindProduct, err)
		if err != nil {
			return model.ProductSummary{}, false, err
		}
		return s, true, nil
	}
	obs.RecordLookup(opFindProduct, obs.OutcomeProductNotFound)
	return model.ProductSummary{}, false, nil
}

// Search returns up to MaxSearchResults products whose name contains query,
// ignoring case. Areas are scanned in ascending order and listings in
// dataset order.
func (a *Aggregator) Search(query string) ([]model.SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		obs.RecordLookup(opSearch, obs.OutcomeInvalidQuery)
		return nil, ErrEmptyQuery
	}
	out := make([]model.SearchResult, 0, MaxSearchResults)
	for _, area := range a.cat.Areas() {
		listings, err := a.cat.Listings(area)
		if err != nil {
			record(opSearch, err)
			return nil, err
		}
		for _, l := range listings {
			if !strings.Contains(strings.ToLower(l.Name), needle) {
				continue
			}
			s, err := Summarize(l)
			if err != nil {
				record(opSearch, err)
				return nil, err
			}
			out = append(out, model.SearchResult{Area: area, Summary: s})
			if len(out) == MaxSearchResults {
				record(opSearch, nil)
				return out, nil
			}
		}
	}
	record(opSearch, nil)
	return out, nil
}

func record(op string, err error) {
	switch {
	case err == nil:
		obs.RecordLookup(op, obs.OutcomeOK)
	case errors.Is(err, ErrAreaNotFound):
		obs.RecordLookup(op, obs.OutcomeAreaNotFound)
	case errors.Is(err, ErrEmptyPriceList):
		obs.RecordLookup(op, obs.OutcomeEmptyPriceList)
	default:
		obs.RecordLookup(op, obs.OutcomeError)
	}
}
