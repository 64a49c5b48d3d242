package commerce

import "testing"

func TestRequireExists_FailsWhenEmpty(t *testing.T) {
	err := RequireExists("", "Product not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != StatusNotFound {
		t.Errorf("expected NotFound, got %v", err.Code)
	}
	if RequireExists("p1", "Product not found") != nil {
		t.Error("expected nil for non-empty field")
	}
}

func TestRequireNotEmptyString(t *testing.T) {
	err := RequireNotEmptyString("", "Product ID is required")
	if err == nil || err.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if RequireNotEmptyString("1", "x") != nil {
		t.Error("expected nil")
	}
}

func TestRequireNonNegative(t *testing.T) {
	if RequireNonNegative(0, "error") != nil {
		t.Error("zero should pass")
	}
	if RequireNonNegative(-1, "error") == nil {
		t.Error("negative should fail")
	}
}

func TestRequireNotEmpty(t *testing.T) {
	if RequireNotEmpty([]int{1}, "Cart is empty") != nil {
		t.Error("expected nil for non-empty slice")
	}
	err := RequireNotEmpty([]string{}, "Cart is empty")
	if err == nil || err.Message != "Cart is empty" {
		t.Fatalf("expected 'Cart is empty', got %v", err)
	}
}

func TestRequireStatusNot(t *testing.T) {
	if RequireStatusNot("Pending", "Cancelled", "error") != nil {
		t.Error("expected nil")
	}
	if RequireStatusNot("Cancelled", "Cancelled", "Order is cancelled") == nil {
		t.Error("expected error for forbidden status")
	}
}
