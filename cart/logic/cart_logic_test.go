package logic

import (
	"testing"

	"storefront/commerce"
)

var (
	headphones = ProductSnapshot{ProductID: "1", Name: "Wireless Headphones", UnitPriceCents: 29900, OriginalPriceCents: 34900, InStock: true}
	tshirt     = ProductSnapshot{ProductID: "2", Name: "Premium Cotton T-Shirt", UnitPriceCents: 4900, OriginalPriceCents: 6900, InStock: true}
	yogaMat    = ProductSnapshot{ProductID: "4", Name: "Yoga Mat Premium", UnitPriceCents: 7900, OriginalPriceCents: 8900, InStock: false}
)

func requireCode(t *testing.T, err error, code commerce.StatusCode, msg string) {
	t.Helper()
	cmdErr, ok := commerce.AsCommandError(err)
	if !ok {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if cmdErr.Code != code {
		t.Errorf("expected code %v, got %v", code, cmdErr.Code)
	}
	if cmdErr.Message != msg {
		t.Errorf("expected message %q, got %q", msg, cmdErr.Message)
	}
}

func TestRebuildState_Empty(t *testing.T) {
	state := NewCartLogic().RebuildState(nil)
	if !state.IsEmpty() {
		t.Errorf("expected empty cart, got %d lines", len(state.Items))
	}
}

func TestRebuildState_ReplaysInOrder(t *testing.T) {
	state := NewCartLogic().RebuildState([]Event{
		&ItemAdded{ProductID: "1", Quantity: 1, UnitPriceCents: 29900, InStock: true},
		&ItemAdded{ProductID: "2", Quantity: 1, UnitPriceCents: 4900, InStock: true},
		&QuantityUpdated{ProductID: "1", OldQuantity: 1, NewQuantity: 3},
		&ItemRemoved{ProductID: "2", Quantity: 1},
	})

	if len(state.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(state.Items))
	}
	if state.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", state.Items[0].Quantity)
	}
}

func TestApply_NilEventIsNoop(t *testing.T) {
	state := EmptyState()
	var removed *ItemRemoved
	state.Apply(nil)
	state.Apply(removed)
	if !state.IsEmpty() {
		t.Error("expected nil events to leave cart unchanged")
	}
}

func TestHandleAddItem_NewLineStartsAtOne(t *testing.T) {
	logic := NewCartLogic()
	event, err := logic.HandleAddItem(EmptyState(), headphones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", event.Quantity)
	}
	if event.UnitPriceCents != 29900 || event.OriginalPriceCents != 34900 {
		t.Errorf("expected price snapshot 29900/34900, got %d/%d", event.UnitPriceCents, event.OriginalPriceCents)
	}
}

func TestHandleAddItem_TwiceGivesOneLineQuantityTwo(t *testing.T) {
	ledger := NewLedger(nil)
	for i := 0; i < 2; i++ {
		if _, err := ledger.AddItem(headphones); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items := ledger.State().Items
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestHandleAddItem_RejectsAtQuantityLimit(t *testing.T) {
	ledger := NewLedger(nil)
	if _, err := ledger.AddItem(headphones); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ledger.SetQuantity("1", MaxLineQuantity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := ledger.AddItem(headphones)
	requireCode(t, err, commerce.StatusFailedPrecondition, ErrMsgQuantityLimit)

	item := ledger.State().Item("1")
	if item == nil || item.Quantity != MaxLineQuantity {
		t.Fatalf("expected line to stay at %d, got %+v", MaxLineQuantity, item)
	}
	summary := ComputeSummary(ledger.State().Items, nil, DefaultPricingPolicy())
	if summary.TotalCents <= 0 {
		t.Errorf("expected positive total, got %d", summary.TotalCents)
	}
}

func TestHandleAddItem_KeepsInsertionOrder(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.AddItem(tshirt)
	ledger.AddItem(headphones)
	ledger.AddItem(tshirt)

	items := ledger.State().Items
	if items[0].ProductID != "2" || items[1].ProductID != "1" {
		t.Errorf("expected order [2 1], got [%s %s]", items[0].ProductID, items[1].ProductID)
	}
}

func TestHandleAddItem_OutOfStockRejected(t *testing.T) {
	_, err := NewCartLogic().HandleAddItem(EmptyState(), yogaMat)
	requireCode(t, err, commerce.StatusFailedPrecondition, ErrMsgOutOfStock)
}

func TestHandleAddItem_MissingProductID(t *testing.T) {
	_, err := NewCartLogic().HandleAddItem(EmptyState(), ProductSnapshot{InStock: true})
	requireCode(t, err, commerce.StatusInvalidArgument, ErrMsgProductIDRequired)
}

func TestHandleSetQuantity_ZeroEqualsRemove(t *testing.T) {
	viaSet := NewLedger(nil)
	viaRemove := NewLedger(nil)
	for _, l := range []*Ledger{viaSet, viaRemove} {
		l.AddItem(headphones)
		l.AddItem(tshirt)
	}

	if _, err := viaSet.SetQuantity("1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := viaRemove.RemoveItem("1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := viaSet.State().Items, viaRemove.State().Items
	if len(a) != len(b) || len(a) != 1 || *a[0] != *b[0] {
		t.Errorf("expected identical carts, got %+v and %+v", a, b)
	}
}

func TestHandleSetQuantity_NegativeRemoves(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.AddItem(headphones)
	event, err := ledger.SetQuantity("1", -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := event.(*ItemRemoved); !ok {
		t.Errorf("expected ItemRemoved, got %T", event)
	}
	if !ledger.State().IsEmpty() {
		t.Error("expected empty cart")
	}
}

func TestHandleSetQuantity_Replaces(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.AddItem(headphones)
	if _, err := ledger.SetQuantity("1", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q := ledger.State().Item("1").Quantity; q != 5 {
		t.Errorf("expected quantity 5, got %d", q)
	}
}

func TestHandleSetQuantity_AbsentItem(t *testing.T) {
	_, err := NewCartLogic().HandleSetQuantity(EmptyState(), "1", 2)
	requireCode(t, err, commerce.StatusFailedPrecondition, ErrMsgItemNotInCart)
}

func TestHandleSetQuantity_ZeroOnAbsentIsNoop(t *testing.T) {
	event, err := NewCartLogic().HandleSetQuantity(EmptyState(), "1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event != nil {
		t.Errorf("expected nil event, got %T", event)
	}
}

func TestHandleRemoveItem_Idempotent(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.AddItem(headphones)
	ledger.AddItem(tshirt)

	ledger.RemoveItem("1")
	once := ledger.State().Clone()
	event, err := ledger.RemoveItem("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event != nil {
		t.Errorf("expected nil event on second remove, got %T", event)
	}
	if len(once.Items) != len(ledger.State().Items) {
		t.Errorf("expected cart unchanged by second remove")
	}
	if len(ledger.Events()) != 3 {
		t.Errorf("expected 3 recorded events, got %d", len(ledger.Events()))
	}
}

func TestHandleDecrementItem_RemovesAtZero(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.AddItem(tshirt)
	ledger.AddItem(tshirt)

	ledger.DecrementItem("2")
	if q := ledger.State().Item("2").Quantity; q != 1 {
		t.Errorf("expected quantity 1, got %d", q)
	}
	ledger.DecrementItem("2")
	if !ledger.State().IsEmpty() {
		t.Error("expected line removed at zero")
	}

	event, err := ledger.DecrementItem("2")
	if err != nil || event != nil {
		t.Errorf("expected no-op on absent item, got %v, %v", event, err)
	}
}

func TestHandleClearCart(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.AddItem(tshirt)
	ledger.AddItem(headphones)

	event, err := ledger.Clear()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared, ok := event.(*CartCleared); !ok || cleared.Lines != 2 {
		t.Errorf("expected CartCleared with 2 lines, got %+v", event)
	}
	if !ledger.State().IsEmpty() {
		t.Error("expected empty cart")
	}

	event, _ = ledger.Clear()
	if event != nil {
		t.Errorf("expected nil event clearing empty cart, got %T", event)
	}
}

func TestHandleCheckout_EmptyCart(t *testing.T) {
	_, err := NewCartLogic().HandleCheckout(EmptyState(), nil, DefaultPricingPolicy())
	requireCode(t, err, commerce.StatusFailedPrecondition, ErrMsgCartEmpty)
}

func TestHandleCheckout_Approved(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.AddItem(headphones)

	approved, err := NewCartLogic().HandleCheckout(ledger.State(), nil, DefaultPricingPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if approved.Summary.TotalCents != 32292 {
		t.Errorf("expected total 32292, got %d", approved.Summary.TotalCents)
	}
	if len(ledger.State().Items) != 1 {
		t.Error("expected checkout to leave cart unchanged")
	}
}
