package transform

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	expected := []string{
		"add_extra_payment", "adjust_rate", "set_down_payment",
		"set_down_payment_percent", "set_extra_payment", "set_term",
	}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d transforms, got %d: %v", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected %s at %d, got %s", name, i, names[i])
		}
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tr, err := registry.ParseTransformSpec("add_extra_payment:amount=250.50")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	add, ok := tr.(*AddExtraPayment)
	if !ok {
		t.Fatalf("Expected *AddExtraPayment, got %T", tr)
	}
	if !add.Amount.Equal(decimal.RequireFromString("250.50")) {
		t.Errorf("Expected amount 250.50, got %s", add.Amount)
	}

	tr, err = registry.ParseTransformSpec(" set_term : years = 20 ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if term := tr.(*SetTerm); term.Years != 20 {
		t.Errorf("Expected 20 years, got %d", term.Years)
	}

	tr, err = registry.ParseTransformSpec("adjust_rate:delta=-0.75")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rate := tr.(*AdjustRate); !rate.DeltaPercent.Equal(decimal.NewFromFloat(-0.75)) {
		t.Errorf("Expected delta -0.75, got %s", rate.DeltaPercent)
	}
}

func TestTransformRegistry_ParseErrors(t *testing.T) {
	registry := NewTransformRegistry()

	specs := []string{
		"add_extra_payment",
		"add_extra_payment:amount",
		"add_extra_payment:",
		"add_extra_payment:amount=lots",
		"set_term:years=ten",
		"set_down_payment_percent:amount=20",
		"refinance:rate=5",
	}

	for _, spec := range specs {
		if _, err := registry.ParseTransformSpec(spec); err == nil {
			t.Errorf("Expected error for spec %q", spec)
		}
	}
}
