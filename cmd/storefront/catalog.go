package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	cart "storefront/cart/logic"
	catalog "storefront/catalog/logic"
	"storefront/seed"
	"storefront/transport/grpcapi"
)

type catalogFlags struct {
	category string
	search   string
	min      string
	max      string
	ratings  []string
	inStock  bool
	addr     string
}

func (f catalogFlags) values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set(catalog.ParamCategory, f.category)
	set(catalog.ParamSearch, f.search)
	set(catalog.ParamMinPrice, f.min)
	set(catalog.ParamMaxPrice, f.max)
	for _, r := range f.ratings {
		v.Add(catalog.ParamRating, r)
	}
	if f.inStock {
		v.Set(catalog.ParamInStock, cast.ToString(f.inStock))
	}
	return v
}

func catalogCmd() *cobra.Command {
	var f catalogFlags

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog products matching filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := catalog.ParseCriteria(f.values())
			if err != nil {
				return err
			}
			products, err := listProducts(cmd.Context(), f.addr, criteria)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.category, "category", "", "Category label (default All)")
	cmd.Flags().StringVarP(&f.search, "search", "q", "", "Search product name or seller")
	cmd.Flags().StringVar(&f.min, "min", "", "Minimum price")
	cmd.Flags().StringVar(&f.max, "max", "", "Maximum price")
	cmd.Flags().StringSliceVar(&f.ratings, "rating", nil, "Minimum rating chip (repeatable)")
	cmd.Flags().BoolVar(&f.inStock, "in-stock", false, "Only in-stock products")
	cmd.Flags().StringVar(&f.addr, "addr", "", "Query a running server at host:port instead of the embedded catalog")
	return cmd
}

func listProducts(ctx context.Context, addr string, criteria catalog.Criteria) ([]catalog.Product, error) {
	if addr == "" {
		products, err := seed.Products()
		if err != nil {
			return nil, err
		}
		return catalog.Filter(products, criteria), nil
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	req := &grpcapi.BrowseRequest{
		Category:    criteria.Category.Name(),
		Search:      criteria.SearchText,
		MinRatings:  criteria.MinRatings,
		InStockOnly: criteria.InStockOnly,
	}
	if criteria.PriceRange.MinCents > 0 {
		req.MinPriceCents = &criteria.PriceRange.MinCents
	}
	if criteria.PriceRange.MaxCents < math.MaxInt64 {
		req.MaxPriceCents = &criteria.PriceRange.MaxCents
	}
	result, err := grpcapi.NewClient(conn).Browse(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Products, nil
}

func printProducts(w io.Writer, products []catalog.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSTOCK\tSELLER")
	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%s\t%s\n",
			p.ID, p.Name, p.Category, cart.FormatCents(p.PriceCents), p.Rating, stock, p.Seller)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d products\n", len(products))
}
