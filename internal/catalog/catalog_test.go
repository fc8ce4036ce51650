package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/deal-finder-service/internal/model"
)

func price(store, v string) model.StorePrice {
	return model.StorePrice{StoreName: store, Price: decimal.RequireFromString(v)}
}

func TestDefaultDataset(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []string{"downtown", "uptown"}, c.Areas())
	assert.Equal(t, Stats{Areas: 2, Listings: 6, StorePrices: 14}, c.Stats())

	listings, err := c.Listings("downtown")
	require.NoError(t, err)
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ProductID)
	}
	if diff := cmp.Diff([]string{"coffee-beans-1kg", "almond-milk-1l", "dish-soap-500ml"}, ids); diff != "" {
		t.Fatalf("listing order mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, listings[1].Prices[1].Price.Equal(decimal.RequireFromString("3.99")))
}

func TestListingsCaseInsensitive(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	lower, err := c.Listings("downtown")
	require.NoError(t, err)
	upper, err := c.Listings("DownTown")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestListingsUnknownArea(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	_, err = c.Listings("Midtown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAreaNotFound))
	var anf *AreaNotFoundError
	require.ErrorAs(t, err, &anf)
	assert.Equal(t, "Midtown", anf.Area)
	assert.Contains(t, err.Error(), "Unknown area")
}

func TestListingsReturnsCopies(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	got, err := c.Listings("uptown")
	require.NoError(t, err)
	got[0].Prices[0].StoreName = "tampered"
	got[0].ProductID = "tampered"

	again, err := c.Listings("uptown")
	require.NoError(t, err)
	assert.Equal(t, "coffee-beans-1kg", again[0].ProductID)
	assert.Equal(t, "Cafe Collective", again[0].Prices[0].StoreName)
}

func TestNewNormalizesKeys(t *testing.T) {
	c, err := New(map[string][]model.ProductListing{
		"Riverside": {{ProductID: "tea", Prices: []model.StorePrice{price("A", "1")}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"riverside"}, c.Areas())
}

func TestNewRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name  string
		areas map[string][]model.ProductListing
	}{
		{
			name: "empty prices",
			areas: map[string][]model.ProductListing{
				"a": {{ProductID: "x"}},
			},
		},
		{
			name: "duplicate product id",
			areas: map[string][]model.ProductListing{
				"a": {
					{ProductID: "x", Prices: []model.StorePrice{price("S", "1")}},
					{ProductID: "x", Prices: []model.StorePrice{price("T", "2")}},
				},
			},
		},
		{
			name: "negative price",
			areas: map[string][]model.ProductListing{
				"a": {{ProductID: "x", Prices: []model.StorePrice{price("S", "-0.01")}}},
			},
		},
		{
			name: "missing store name",
			areas: map[string][]model.ProductListing{
				"a": {{ProductID: "x", Prices: []model.StorePrice{price("", "1")}}},
			},
		},
		{
			name: "missing product id",
			areas: map[string][]model.ProductListing{
				"a": {{Prices: []model.StorePrice{price("S", "1")}}},
			},
		},
		{
			name: "colliding area keys",
			areas: map[string][]model.ProductListing{
				"North": {{ProductID: "x", Prices: []model.StorePrice{price("S", "1")}}},
				"north": {{ProductID: "y", Prices: []model.StorePrice{price("S", "1")}}},
			},
		},
		{
			name: "empty area key",
			areas: map[string][]model.ProductListing{
				"": {{ProductID: "x", Prices: []model.StorePrice{price("S", "1")}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.areas)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewAllowsSameProductAcrossAreas(t *testing.T) {
	c, err := New(map[string][]model.ProductListing{
		"a": {{ProductID: "x", Prices: []model.StorePrice{price("S", "1")}}},
		"b": {{ProductID: "x", Prices: []model.StorePrice{price("S", "2")}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Stats().Listings)
}

func TestNewEmptyCatalog(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Areas())
}

func TestParseRejectsBadPrice(t *testing.T) {
	_, err := Parse([]byte(`
areas:
  a:
    - product_id: x
      prices:
        - store_name: S
          price: cheap
`))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("areas: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
areas:
  Harbor:
    - product_id: bread
      name: Sourdough
      category: Bakery
      prices:
        - store_name: Dock Bakery
          price: 3.20
`), 0o600))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"harbor"}, c.Areas())
	listings, err := c.Listings("HARBOR")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "3.2", listings[0].Prices[0].Price.String())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
