// Package model defines domain types used by the service.
package model

import "github.com/shopspring/decimal"

// StorePrice is one store's quoted price for one product.
type StorePrice struct {
	StoreName string
	Price     decimal.Decimal
}

// ProductListing is a product available in an area with prices from different stores.
type ProductListing struct {
	ProductID string
	Name      string
	Category  string
	Prices    []StorePrice
}

// ProductSummary describes the cheapest offer for a listing.
type ProductSummary struct {
	ProductID     string
	Name          string
	Category      string
	CheapestPrice decimal.Decimal
	CheapestStore string
	Stores        []StorePrice
}

// Clone returns a deep copy of the listing.
func (l ProductListing) Clone() ProductListing {
	l.Prices = append([]StorePrice(nil), l.Prices...)
	return l
}

// SearchResult is a product summary matched by a name search, tagged with its area.
type SearchResult struct {
	Area    string
	Summary ProductSummary
}
