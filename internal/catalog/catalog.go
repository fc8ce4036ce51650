// Package catalog holds the immutable area to product listings dataset.
package catalog

import (
	"sort"
	"strings"

	"github.com/fairyhunter13/deal-finder-service/internal/model"
)

// Catalog maps normalized area keys to their product listings.
//
// A Catalog is never mutated after New returns, so it can be shared between
// goroutines without locking. Accessors hand out copies.
type Catalog struct {
	areas map[string][]model.ProductListing
	keys  []string
}

// Stats summarizes catalog contents.
type Stats struct {
	Areas       int `json:"areas"`
	Listings    int `json:"listings"`
	StorePrices int `json:"store_prices"`
}

// NormalizeArea returns the lookup key for an area identifier.
func NormalizeArea(area string) string {
	return strings.ToLower(area)
}

// New validates the given listings and builds a Catalog from a deep copy of them.
func New(areas map[string][]model.ProductListing) (*Catalog, error) {
	c := &Catalog{
		areas: make(map[string][]model.ProductListing, len(areas)),
		keys:  make([]string, 0, len(areas)),
	}
	for area, listings := range areas {
		key := NormalizeArea(area)
		if key == "" {
			return nil, invalidf("empty area key")
		}
		if _, dup := c.areas[key]; dup {
			return nil, invalidf("area %q collides with another area after normalization", area)
		}
		seen := make(map[string]struct{}, len(listings))
		copied := make([]model.ProductListing, 0, len(listings))
		for _, l := range listings {
			if err := validateListing(key, l); err != nil {
				return nil, err
			}
			if _, dup := seen[l.ProductID]; dup {
				return nil, invalidf("duplicate product %q in area %q", l.ProductID, key)
			}
			seen[l.ProductID] = struct{}{}
			copied = append(copied, l.Clone())
		}
		c.areas[key] = copied
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)
	return c, nil
}

func validateListing(area string, l model.ProductListing) error {
	if l.ProductID == "" {
		return invalidf("listing without product_id in area %q", area)
	}
	if len(l.Prices) == 0 {
		return invalidf("product %q in area %q: %v", l.ProductID, area, ErrEmptyPriceList)
	}
	for _, p := range l.Prices {
		if p.StoreName == "" {
			return invalidf("product %q in area %q has a price without store_name", l.ProductID, area)
		}
		if p.Price.IsNegative() {
			return invalidf("product %q in area %q has negative price %s at %q", l.ProductID, area, p.Price, p.StoreName)
		}
	}
	return nil
}

// Areas returns all area keys sorted ascending. It is never nil.
func (c *Catalog) Areas() []string {
	return append(make([]string, 0, len(c.keys)), c.keys...)
}

// Listings returns the listings of an area in dataset order.
// The area is matched case-insensitively.
func (c *Catalog) Listings(area string) ([]model.ProductListing, error) {
	listings, ok := c.areas[NormalizeArea(area)]
	if !ok {
		return nil, &AreaNotFoundError{Area: area}
	}
	out := make([]model.ProductListing, len(listings))
	for i, l := range listings {
		out[i] = l.Clone()
	}
	return out, nil
}

// Stats reports the number of areas, listings and store prices.
func (c *Catalog) Stats() Stats {
	s := Stats{Areas: len(c.keys)}
	for _, listings := range c.areas {
		s.Listings += len(listings)
		for _, l := range listings {
			s.StorePrices += len(l.Prices)
		}
	}
	return s
}
