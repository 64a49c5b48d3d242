package logic

import (
	"testing"

	"storefront/commerce"
)

func TestApplyPromoCode_CaseInsensitive(t *testing.T) {
	for _, code := range []string{"SAVE10", "save10", " Save10 "} {
		result := ApplyPromoCode(DefaultPromoTable(), code)
		if !result.Applied {
			t.Errorf("expected %q to apply", code)
			continue
		}
		if result.Promo.BasisPoints != 1000 {
			t.Errorf("expected 1000 bps, got %d", result.Promo.BasisPoints)
		}
		if result.Code != "SAVE10" {
			t.Errorf("expected canonical code SAVE10, got %q", result.Code)
		}
	}
}

func TestApplyPromoCode_Unknown(t *testing.T) {
	for _, code := range []string{"", "SAVE20", "SAVE 10"} {
		result := ApplyPromoCode(DefaultPromoTable(), code)
		if result.Applied {
			t.Errorf("expected %q not to apply", code)
		}
		if result.Message != ErrMsgInvalidPromo {
			t.Errorf("expected message %q, got %q", ErrMsgInvalidPromo, result.Message)
		}
		if result.Promo != nil {
			t.Errorf("expected no promo for %q", code)
		}
	}
}

func TestNewPromoTable_Validation(t *testing.T) {
	if _, err := NewPromoTable(NewPercentagePromo("HALF", 50), NewFixedPromo("FIVE", 500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := NewPromoTable(NewPercentagePromo("A", 101))
	requireCode(t, err, commerce.StatusInvalidArgument, ErrMsgPercentageRange)

	_, err = NewPromoTable(NewFixedPromo("B", -1))
	requireCode(t, err, commerce.StatusInvalidArgument, ErrMsgFixedDiscountNeg)

	_, err = NewPromoTable(Promo{Code: "C", Kind: "bogo"})
	requireCode(t, err, commerce.StatusInvalidArgument, ErrMsgInvalidPromoKind)

	_, err = NewPromoTable(NewFixedPromo("dup", 1), NewFixedPromo("DUP", 2))
	if _, ok := commerce.AsCommandError(err); !ok {
		t.Errorf("expected duplicate code error, got %v", err)
	}
}

func TestPromo_DiscountCents(t *testing.T) {
	if got := NewPercentagePromo("P", 10).DiscountCents(29900); got != 2990 {
		t.Errorf("expected 2990, got %d", got)
	}
	if got := NewFixedPromo("F", 500).DiscountCents(29900); got != 500 {
		t.Errorf("expected 500, got %d", got)
	}
	if got := NewFixedPromo("F", 500).DiscountCents(300); got != 300 {
		t.Errorf("expected cap at 300, got %d", got)
	}
}
