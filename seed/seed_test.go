package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "storefront/cart/logic"
	catalog "storefront/catalog/logic"
)

func TestProducts(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)
	require.Len(t, products, 9)

	first := products[0]
	assert.Equal(t, "Wireless Bluetooth Headphones", first.Name)
	assert.Equal(t, int64(29900), first.PriceCents)
	assert.Equal(t, catalog.CategoryElectronics, first.Category)

	for _, label := range catalog.Labels()[1:] {
		found := catalog.Filter(products, catalog.Criteria{Category: catalog.Named(label), PriceRange: catalog.Unbounded()})
		assert.NotEmpty(t, found, "expected at least one %s product", label)
	}
}

func TestOrders(t *testing.T) {
	orders, err := Orders()
	require.NoError(t, err)
	require.Len(t, orders, 5)
	assert.Equal(t, "#1234", orders[0].ID)
	assert.Equal(t, int64(39800), orders[1].AmountCents)
}

func TestDemoCart(t *testing.T) {
	events, err := DemoCart()
	require.NoError(t, err)

	state := cart.NewCartLogic().RebuildState(events)
	require.Len(t, state.Items, 3)

	summary := cart.ComputeSummary(state.Items, nil, cart.DefaultPricingPolicy())
	assert.Equal(t, int64(4), summary.ItemCount)
	assert.Equal(t, int64(77600), summary.SubtotalCents)
	assert.Equal(t, int64(16000), summary.SavingsCents)

	gate := cart.CheckoutGate(state.Items)
	assert.False(t, gate.Allowed)
	assert.Equal(t, []string{"4"}, gate.Blocking)
}
