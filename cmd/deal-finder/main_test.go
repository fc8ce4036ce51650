package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/deal-finder-service/internal/catalog"
	"github.com/fairyhunter13/deal-finder-service/internal/config"
	httpapi "github.com/fairyhunter13/deal-finder-service/internal/http"
	"github.com/fairyhunter13/deal-finder-service/internal/pricing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.Config{LogLevel: "error", LogFormat: "json"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAreasCmd(t *testing.T) {
	out, err := run(t, "areas")
	require.NoError(t, err)
	var v httpapi.AreasView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, []string{"downtown", "uptown"}, v.Areas)
}

func TestProductsCmd(t *testing.T) {
	out, err := run(t, "products", "UPTOWN")
	require.NoError(t, err)
	var v httpapi.AreaProductsView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "uptown", v.Area)
	require.Len(t, v.Products, 3)
	assert.Equal(t, "Healthy Harvest", v.Products[1].CheapestStore)
}

func TestProductsCmdUnknownArea(t *testing.T) {
	_, err := run(t, "products", "atlantis")
	assert.ErrorIs(t, err, catalog.ErrAreaNotFound)
}

func TestProductCmd(t *testing.T) {
	out, err := run(t, "product", "downtown", "almond-milk-1l")
	require.NoError(t, err)
	var v httpapi.ProductView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "Budget Grocers", v.CheapestStore)
	assert.Equal(t, 3.99, v.CheapestPrice)
}

func TestProductCmdAbsent(t *testing.T) {
	_, err := run(t, "product", "downtown", "non-existent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-existent")
	assert.NotErrorIs(t, err, catalog.ErrAreaNotFound)
}

func TestProductCmdArgs(t *testing.T) {
	_, err := run(t, "product", "downtown")
	assert.Error(t, err)
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
areas:
  harbor:
    - product_id: bread
      name: Sourdough
      category: Bakery
      prices:
        - store_name: Dock Bakery
          price: 3.20
        - store_name: Pier Market
          price: 3.20
`), 0o600))
	out, err := run(t, "--catalog", path, "product", "Harbor", "bread")
	require.NoError(t, err)
	var v httpapi.ProductView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "Dock Bakery", v.CheapestStore)
}

func TestCatalogFlagMissingFile(t *testing.T) {
	_, err := run(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "areas")
	assert.Error(t, err)
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "search", "granola")
	require.NoError(t, err)
	var v httpapi.SearchView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v.Results, 1)
	assert.Equal(t, "SuperMart Uptown", v.Results[0].CheapestStore)
}

func TestSearchCmdBlankQuery(t *testing.T) {
	_, err := run(t, "search", " ")
	assert.ErrorIs(t, err, pricing.ErrEmptyQuery)
}

func TestAddrFlagOnRoot(t *testing.T) {
	cmd := newRootCmd(config.Config{HTTPAddr: ":8080", LogLevel: "error"})
	require.NotNil(t, cmd.PersistentFlags().Lookup("addr"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--addr", ":9191", "areas"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, ":9191", cmd.PersistentFlags().Lookup("addr").Value.String())
}

func TestAreasCmdEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("areas: {}\n"), 0o600))
	out, err := run(t, "--catalog", path, "areas")
	require.NoError(t, err)
	assert.JSONEq(t, `{"areas":[]}`, out)
}
