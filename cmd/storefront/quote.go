package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	cart "storefront/cart/logic"
	catalog "storefront/catalog/logic"
	"storefront/commerce"
	"storefront/config"
	"storefront/seed"
	"storefront/storefront"
)

func quoteCmd() *cobra.Command {
	var (
		configPath string
		promo      string
		demo       bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "quote [product-id...]",
		Short: "Build a cart from product ids and print its order summary",
		Long: `Quote adds one unit per product id argument (repeat an id to add more),
optionally applies a promo code, and prints the resulting events, order
summary and checkout decision.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return quote(cmd.OutOrStdout(), cfg, args, promo, demo, quiet)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&promo, "promo", "", "Promo code to apply")
	cmd.Flags().BoolVar(&demo, "demo", false, "Start from the demo cart")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not print events")
	return cmd
}

func quote(w io.Writer, cfg *config.Config, productIDs []string, promoCode string, demo, quiet bool) error {
	products, err := seed.Products()
	if err != nil {
		return err
	}
	table, err := storefront.PromoTableFromConfig(cfg.Promos)
	if err != nil {
		return err
	}
	policy := storefront.PricingFromConfig(cfg.Pricing)

	ledger := cart.NewLedger(nil)
	if demo {
		events, err := seed.DemoCart()
		if err != nil {
			return err
		}
		for _, e := range events {
			ledger.State().Apply(e)
		}
	}

	for _, id := range productIDs {
		p, ok := catalog.Lookup(products, id)
		if !ok {
			return commerce.NewNotFound(fmt.Sprintf("Product not found: %s", id))
		}
		if _, err := ledger.AddItem(storefront.SnapshotOf(p)); err != nil {
			return fmt.Errorf("add %s: %w", id, err)
		}
	}

	if !quiet {
		for i, e := range ledger.Events() {
			commerce.LogEvent(w, "cart", "quote", i+1, e)
		}
		fmt.Fprintln(w)
	}

	var active *cart.Promo
	if promoCode != "" {
		result := cart.ApplyPromoCode(table, promoCode)
		fmt.Fprintf(w, "promo %s: %s\n", promoCode, result.Message)
		active = result.Promo
	}

	items := ledger.State().Items
	for _, item := range items {
		fmt.Fprintf(w, "  %dx %s @ %s = %s\n", item.Quantity, item.Name,
			cart.FormatCents(item.UnitPriceCents), cart.FormatCents(item.LineTotalCents()))
	}

	d := cart.ComputeSummary(items, active, policy).Display()
	fmt.Fprintf(w, "items:    %d\n", d.ItemCount)
	fmt.Fprintf(w, "subtotal: %s\n", d.Subtotal)
	fmt.Fprintf(w, "savings:  %s\n", d.Savings)
	fmt.Fprintf(w, "shipping: %s\n", d.Shipping)
	if d.FreeShippingHint != "" {
		fmt.Fprintf(w, "          %s\n", d.FreeShippingHint)
	}
	fmt.Fprintf(w, "tax:      %s\n", d.Tax)
	fmt.Fprintf(w, "discount: %s\n", d.Discount)
	fmt.Fprintf(w, "total:    %s\n", d.Total)

	gate := cart.CheckoutGate(items)
	if gate.Allowed {
		fmt.Fprintln(w, "checkout: allowed")
	} else {
		fmt.Fprintf(w, "checkout: denied (%s)\n", gate.Reason)
	}
	return nil
}
