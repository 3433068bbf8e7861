package models

import (
	"errors"
	"math"
	"testing"

	domain "github.com/ghuser/forgemart/services/inventory/domain"
)

func TestMarkupValidate(t *testing.T) {
	tests := []struct {
		name    string
		markup  Markup
		wantErr bool
	}{
		{"percent markup", Markup{Type: MarkupPercent, Amount: 10}, false},
		{"fixed markup", Markup{Type: MarkupFixed, Amount: 2}, false},
		{"negative amount is a discount", Markup{Type: MarkupFixed, Amount: -1}, false},
		{"zero amount", Markup{Type: MarkupPercent, Amount: 0}, false},
		{"NaN amount", Markup{Type: MarkupPercent, Amount: math.NaN()}, true},
		{"infinite amount", Markup{Type: MarkupFixed, Amount: math.Inf(1)}, true},
		{"unknown type", Markup{Type: "relative", Amount: 5}, true},
		{"empty type", Markup{Amount: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.markup.Validate()
			if tt.wantErr && !errors.Is(err, domain.ErrInvalidMarkup) {
				t.Fatalf("expected ErrInvalidMarkup, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMarkupApply(t *testing.T) {
	t.Run("ten percent of 10.00 is exactly 11.00", func(t *testing.T) {
		m := Markup{Type: MarkupPercent, Amount: 10}
		if got := m.Apply(10.00); got != 11.00 {
			t.Fatalf("expected 11.00, got %v", got)
		}
	})

	t.Run("fixed adds flat amount", func(t *testing.T) {
		m := Markup{Type: MarkupFixed, Amount: 2}
		if got := m.Apply(12.99); got != 14.99 {
			t.Fatalf("expected 14.99, got %v", got)
		}
	})

	t.Run("zero amount is identity for both types", func(t *testing.T) {
		prices := []float64{0, 7.99, 12.99, 16.99}
		for _, typ := range []MarkupType{MarkupPercent, MarkupFixed} {
			m := Markup{Type: typ, Amount: 0}
			for _, p := range prices {
				if got := m.Apply(p); got != p {
					t.Fatalf("%s markup 0 on %v: expected %v, got %v", typ, p, p, got)
				}
			}
		}
	})

	t.Run("large negative fixed amount clamps to zero", func(t *testing.T) {
		m := Markup{Type: MarkupFixed, Amount: -1000000}
		if got := m.Apply(8.99); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("percent discount below zero clamps to zero", func(t *testing.T) {
		m := Markup{Type: MarkupPercent, Amount: -150}
		if got := m.Apply(10); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("result rounds to cent precision", func(t *testing.T) {
		m := Markup{Type: MarkupPercent, Amount: 10}
		if got := m.Apply(9.99); got != 10.99 {
			t.Fatalf("expected 10.99, got %v", got)
		}
	})
}
