package models

import (
	"math"

	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	domain "github.com/ghuser/forgemart/services/inventory/domain"
)

// MarkupType selects how a markup amount is applied to a base price.
type MarkupType string

const (
	// MarkupPercent adds amount% of the base price: base * (1 + amount/100).
	MarkupPercent MarkupType = "percent"
	// MarkupFixed adds a flat amount: base + amount.
	MarkupFixed MarkupType = "fixed"
)

// Markup is a resale pricing rule applied uniformly across a candidate set.
// Amount may be negative (a discount); the resulting price is clamped at 0.
type Markup struct {
	Type   MarkupType `json:"type"`
	Amount float64    `json:"amount"`
}

// Validate returns ErrInvalidMarkup when the amount is not a finite number
// or the type is unknown.
func (m Markup) Validate() error {
	if math.IsNaN(m.Amount) || math.IsInf(m.Amount, 0) {
		return domain.ErrInvalidMarkup
	}
	if m.Type != MarkupPercent && m.Type != MarkupFixed {
		return domain.ErrInvalidMarkup
	}
	return nil
}

// Apply computes the effective resale price for basePrice, clamped at 0 and
// rounded to cent precision.
func (m Markup) Apply(basePrice float64) float64 {
	var price float64
	switch m.Type {
	case MarkupPercent:
		price = basePrice * (1 + m.Amount/100)
	case MarkupFixed:
		price = basePrice + m.Amount
	}
	if price < 0 {
		price = 0
	}
	return catalogmodels.RoundPrice(price)
}
