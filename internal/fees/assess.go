package fees

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a quantity of one material class stored on the premises
type Item struct {
	ClassID  string
	Quantity decimal.Decimal
}

// Assessment is the fee computed for one item
type Assessment struct {
	Class    Class
	Quantity decimal.Decimal
	Fee      decimal.Decimal

	Exempt         bool // quantity at or below the exempt quantity
	MinimumApplied bool
}

// Assess computes the fee for a single item, rounded to centavos
func (s *Schedule) Assess(item Item) (Assessment, error) {
	c, err := s.Class(item.ClassID)
	if err != nil {
		return Assessment{}, err
	}
	if item.Quantity.IsNegative() {
		return Assessment{}, fmt.Errorf("quantity of %s must not be negative", item.ClassID)
	}

	a := Assessment{Class: c, Quantity: item.Quantity, Fee: decimal.Zero}
	if item.Quantity.LessThanOrEqual(c.ExemptQuantity) {
		a.Exempt = true
		return a, nil
	}

	fee := item.Quantity.Mul(c.Rate)
	if fee.LessThan(c.Minimum) {
		fee = c.Minimum
		a.MinimumApplied = true
	}
	a.Fee = fee.Round(2)
	return a, nil
}

// Total assesses every item and sums the fees
func (s *Schedule) Total(items []Item) (decimal.Decimal, []Assessment, error) {
	total := decimal.Zero
	out := make([]Assessment, 0, len(items))
	for _, it := range items {
		a, err := s.Assess(it)
		if err != nil {
			return decimal.Zero, nil, err
		}
		total = total.Add(a.Fee)
		out = append(out, a)
	}
	return total, out, nil
}

// ParseItem parses "class:quantity", e.g. "lpg:120.5"
func ParseItem(s string) (Item, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return Item{}, fmt.Errorf("invalid item %q, expected class:quantity", s)
	}
	id, qty := strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	if id == "" || qty == "" {
		return Item{}, fmt.Errorf("invalid item %q, expected class:quantity", s)
	}
	q, err := decimal.NewFromString(qty)
	if err != nil {
		return Item{}, fmt.Errorf("invalid quantity in %q: %w", s, err)
	}
	return Item{ClassID: id, Quantity: q}, nil
}
