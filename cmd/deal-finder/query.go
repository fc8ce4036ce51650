package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/deal-finder-service/internal/catalog"
	httpapi "github.com/fairyhunter13/deal-finder-service/internal/http"
	"github.com/fairyhunter13/deal-finder-service/internal/pricing"
)

func newAreasCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List areas with product data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := opts.aggregator()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), httpapi.AreasView{Areas: agg.ListAreas()})
		},
	}
}

func newProductsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "products <area>",
		Short: "Show every product of an area with its cheapest store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := opts.aggregator()
			if err != nil {
				return err
			}
			summaries, err := agg.SummarizeCheapestProducts(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), httpapi.AreaProductsView{
				Area:     catalog.NormalizeArea(args[0]),
				Products: httpapi.NewProductViews(summaries),
			})
		},
	}
}

func newProductCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "product <area> <product_id>",
		Short: "Show the cheapest store for one product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := opts.aggregator()
			if err != nil {
				return err
			}
			s, found, err := agg.FindProduct(args[0], args[1])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("product '%s' not found in area '%s'", args[1], args[0])
			}
			return printJSON(cmd.OutOrStdout(), httpapi.NewProductView(s))
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find products by name across all areas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := opts.aggregator()
			if err != nil {
				return err
			}
			results, err := agg.Search(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), httpapi.SearchView{
				Query:   args[0],
				Results: httpapi.NewSearchResultViews(results),
			})
		},
	}
}

func (o *options) aggregator() (*pricing.Aggregator, error) {
	cat, err := o.loadCatalog()
	if err != nil {
		return nil, err
	}
	return pricing.NewAggregator(cat), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
