package currency

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	if code, err := Parse("MXN"); err != nil || code != MXN {
		t.Fatalf("unexpected result %v %v", code, err)
	}
	if code, err := Parse("USD"); err != nil || code != USD {
		t.Fatalf("unexpected result %v %v", code, err)
	}
	if _, err := Parse("EUR"); err == nil {
		t.Fatal("expected error for unsupported currency")
	}
}

func TestConvertUsesFixedRate(t *testing.T) {
	if got := Convert(1850, USD); got != 100 {
		t.Fatalf("expected 100 USD, got %v", got)
	}
	if got := Convert(1850, MXN); got != 1850 {
		t.Fatalf("MXN must pass through, got %v", got)
	}
}

func TestFormatShowsCurrencySymbol(t *testing.T) {
	usd := Format(1850, USD)
	if !strings.Contains(usd, "$") {
		t.Fatalf("expected a currency symbol in %q", usd)
	}
	if !strings.Contains(usd, "100") {
		t.Fatalf("expected the converted amount in %q", usd)
	}

	mxn := Format(1850, MXN)
	if !strings.Contains(mxn, "$") {
		t.Fatalf("expected a currency symbol in %q", mxn)
	}
}
