// Package seed loads the embedded mock catalog, seller orders and demo cart.
package seed

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	cart "storefront/cart/logic"
	catalog "storefront/catalog/logic"
	orders "storefront/orders/logic"
)

//go:embed data/*.yaml
var files embed.FS

type catalogFile struct {
	Products []catalog.Product `yaml:"products"`
}

type ordersFile struct {
	Orders []orders.Order `yaml:"orders"`
}

type demoLine struct {
	ProductID          string `yaml:"product_id"`
	Name               string `yaml:"name"`
	Quantity           int32  `yaml:"quantity"`
	UnitPriceCents     int64  `yaml:"unit_price_cents"`
	OriginalPriceCents int64  `yaml:"original_price_cents"`
	InStock            bool   `yaml:"in_stock"`
}

type demoCartFile struct {
	Items []demoLine `yaml:"items"`
}

func decode(name string, out interface{}) error {
	data, err := files.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("reading seed %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing seed %s: %w", name, err)
	}
	return nil
}

// Products returns the seeded catalog in listing order.
func Products() ([]catalog.Product, error) {
	var f catalogFile
	if err := decode("catalog.yaml", &f); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(f.Products))
	for _, p := range f.Products {
		if p.ID == "" || seen[p.ID] {
			return nil, fmt.Errorf("seed catalog: missing or duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return f.Products, nil
}

// Orders returns the seeded seller orders.
func Orders() ([]orders.Order, error) {
	var f ordersFile
	if err := decode("orders.yaml", &f); err != nil {
		return nil, err
	}
	for _, o := range f.Orders {
		if _, ok := orders.ParseStatus(string(o.Status)); !ok {
			return nil, fmt.Errorf("seed orders: %s has unknown status %q", o.ID, o.Status)
		}
	}
	return f.Orders, nil
}

// DemoCart returns the demo cart as events that rebuild it on an empty state.
func DemoCart() ([]cart.Event, error) {
	var f demoCartFile
	if err := decode("demo_cart.yaml", &f); err != nil {
		return nil, err
	}
	events := make([]cart.Event, 0, len(f.Items))
	for _, line := range f.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("seed demo cart: %s has quantity %d", line.ProductID, line.Quantity)
		}
		events = append(events, &cart.ItemAdded{
			ProductID:          line.ProductID,
			Name:               line.Name,
			Quantity:           line.Quantity,
			UnitPriceCents:     line.UnitPriceCents,
			OriginalPriceCents: line.OriginalPriceCents,
			InStock:            line.InStock,
		})
	}
	return events, nil
}
