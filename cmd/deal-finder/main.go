// Package main boots the Deal Finder service and its query commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/deal-finder-service/internal/catalog"
	"github.com/fairyhunter13/deal-finder-service/internal/config"
	"github.com/fairyhunter13/deal-finder-service/internal/obs"
)

type options struct {
	cfg         config.Config
	catalogFile string
}

func main() {
	config.LoadDotEnv()
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{cfg: cfg}
	root := &cobra.Command{
		Use:           "deal-finder",
		Short:         "Compare store prices per area",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			obs.InitLogger(opts.cfg.LogLevel, opts.cfg.LogFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address for serve")
	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", cfg.CatalogFile, "YAML catalog file (default: embedded dataset)")
	root.AddCommand(
		newServeCmd(opts),
		newAreasCmd(opts),
		newProductsCmd(opts),
		newProductCmd(opts),
		newSearchCmd(opts),
	)
	return root
}

// loadCatalog builds the catalog from the configured file or the embedded dataset.
func (o *options) loadCatalog() (*catalog.Catalog, error) {
	if o.catalogFile == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(o.catalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", o.catalogFile, err)
	}
	return cat, nil
}
