package commerce

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewInvalidArgument_setsCodeAndMessage(t *testing.T) {
	err := NewInvalidArgument("bad input")
	if err.Code != StatusInvalidArgument {
		t.Errorf("expected StatusInvalidArgument, got %v", err.Code)
	}
	if err.Message != "bad input" {
		t.Errorf("expected 'bad input', got %q", err.Message)
	}
}

func TestNewFailedPreconditionf_formatsMessage(t *testing.T) {
	err := NewFailedPreconditionf("item %s not in cart", "abc")
	if err.Code != StatusFailedPrecondition {
		t.Errorf("expected StatusFailedPrecondition, got %v", err.Code)
	}
	if err.Message != "item abc not in cart" {
		t.Errorf("expected 'item abc not in cart', got %q", err.Message)
	}
}

func TestNewNotFound_setsCode(t *testing.T) {
	err := NewNotFound("Session not found")
	if err.Code != StatusNotFound {
		t.Errorf("expected StatusNotFound, got %v", err.Code)
	}
}

func TestStatusCode_String(t *testing.T) {
	cases := map[StatusCode]string{
		StatusInvalidArgument:    "INVALID_ARGUMENT",
		StatusFailedPrecondition: "FAILED_PRECONDITION",
		StatusNotFound:           "NOT_FOUND",
		StatusCode(42):           "UNKNOWN",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestAsCommandError_unwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("add item: %w", NewFailedPrecondition("Product is out of stock"))
	cmdErr, ok := AsCommandError(wrapped)
	if !ok {
		t.Fatal("expected CommandError to be found")
	}
	if cmdErr.Message != "Product is out of stock" {
		t.Errorf("unexpected message %q", cmdErr.Message)
	}
}

func TestAsCommandError_plainError(t *testing.T) {
	if _, ok := AsCommandError(errors.New("boom")); ok {
		t.Error("plain error should not be a CommandError")
	}
}
