package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fairyhunter13/deal-finder-service/internal/model"
)

//go:embed catalog.yaml
var defaultDataset []byte

type fileCatalog struct {
	Areas map[string][]fileListing `yaml:"areas"`
}

type fileListing struct {
	ProductID string      `yaml:"product_id"`
	Name      string      `yaml:"name"`
	Category  string      `yaml:"category"`
	Prices    []filePrice `yaml:"prices"`
}

// Prices are decoded as text so they never pass through float64.
type filePrice struct {
	StoreName string `yaml:"store_name"`
	Price     string `yaml:"price"`
}

// Default builds the catalog from the embedded dataset.
func Default() (*Catalog, error) {
	return Parse(defaultDataset)
}

// Load builds the catalog from a YAML file with the same schema as the embedded dataset.
func Load(path string) (*Catalog, error) {
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset and validates it.
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	areas := make(map[string][]model.ProductListing, len(fc.Areas))
	for area, listings := range fc.Areas {
		out := make([]model.ProductListing, 0, len(listings))
		for _, fl := range listings {
			l := model.ProductListing{
				ProductID: fl.ProductID,
				Name:      fl.Name,
				Category:  fl.Category,
				Prices:    make([]model.StorePrice, 0, len(fl.Prices)),
			}
			for _, fp := range fl.Prices {
				price, err := decimal.NewFromString(fp.Price)
				if err != nil {
					return nil, invalidf("product %q in area %q: bad price %q for %q", fl.ProductID, area, fp.Price, fp.StoreName)
				}
				l.Prices = append(l.Prices, model.StorePrice{StoreName: fp.StoreName, Price: price})
			}
			out = append(out, l)
		}
		areas[area] = out
	}
	return New(areas)
}
