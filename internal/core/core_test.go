package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestSideOpposite(t *testing.T) {
	if got := Buy.Opposite(); got != Sell {
		t.Fatalf("Buy.Opposite() = %s, want SELL", got)
	}
	if got := Sell.Opposite(); got != Buy {
		t.Fatalf("Sell.Opposite() = %s, want BUY", got)
	}
}

func TestIsValidation(t *testing.T) {
	err := Validationf("quantity must be positive, got %s", "-1")
	if !IsValidation(err) {
		t.Fatalf("IsValidation(Validationf()) = false")
	}
	if err.Error() != "quantity must be positive, got -1" {
		t.Fatalf("Error() = %q", err.Error())
	}
	wrapped := fmt.Errorf("place order: %w", err)
	if !IsValidation(wrapped) {
		t.Fatalf("IsValidation(wrapped) = false")
	}
	if IsValidation(errors.New("boom")) {
		t.Fatalf("IsValidation(plain error) = true")
	}
	if IsValidation(nil) {
		t.Fatalf("IsValidation(nil) = true")
	}
}
