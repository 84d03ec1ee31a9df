package fees

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAssess(t *testing.T) {
	s := DefaultSchedule()

	tests := []struct {
		name    string
		item    Item
		fee     string
		exempt  bool
		minimum bool
	}{
		{"below exempt quantity", Item{"flammable-liquid", d("20")}, "0", true, false},
		{"minimum fee", Item{"flammable-liquid", d("21")}, "100", false, true},
		{"rate", Item{"flammable-liquid", d("1000")}, "300", false, false},
		{"rounded to centavos", Item{"lpg", d("333.333")}, "166.67", false, false},
		{"no exemption for explosives", Item{"explosive", d("0.5")}, "500", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := s.Assess(tt.item)
			require.NoError(t, err)
			assert.True(t, d(tt.fee).Equal(a.Fee), "fee %s, want %s", a.Fee, tt.fee)
			assert.Equal(t, tt.exempt, a.Exempt)
			assert.Equal(t, tt.minimum, a.MinimumApplied)
		})
	}
}

func TestAssessErrors(t *testing.T) {
	s := DefaultSchedule()
	_, err := s.Assess(Item{"plutonium", d("1")})
	assert.True(t, errors.Is(err, ErrUnknownClass))

	_, err = s.Assess(Item{"lpg", d("-1")})
	assert.Error(t, err)
}

func TestTotal(t *testing.T) {
	total, items, err := DefaultSchedule().Total([]Item{
		{"flammable-liquid", d("1000")},
		{"lpg", d("10")},
		{"combustible-solid", d("4000")},
	})
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.True(t, d("500").Equal(total), "total %s", total)
}

func TestWithOverrides(t *testing.T) {
	base := DefaultSchedule()
	s, err := base.WithOverrides(map[string]Override{
		"lpg": {Rate: "1.25", ExemptQuantity: "0"},
	})
	require.NoError(t, err)

	c, err := s.Class("lpg")
	require.NoError(t, err)
	assert.True(t, d("1.25").Equal(c.Rate))
	assert.True(t, d("150").Equal(c.Minimum), "unset fields keep the default")
	assert.True(t, c.ExemptQuantity.IsZero())

	orig, _ := base.Class("lpg")
	assert.True(t, d("0.50").Equal(orig.Rate))

	_, err = base.WithOverrides(map[string]Override{"nope": {Rate: "1"}})
	assert.True(t, errors.Is(err, ErrUnknownClass))
	_, err = base.WithOverrides(map[string]Override{"lpg": {Rate: "abc"}})
	assert.Error(t, err)
	_, err = base.WithOverrides(map[string]Override{"lpg": {Minimum: "-5"}})
	assert.Error(t, err)
}

func TestParseItem(t *testing.T) {
	it, err := ParseItem("lpg:120.5")
	require.NoError(t, err)
	assert.Equal(t, "lpg", it.ClassID)
	assert.True(t, d("120.5").Equal(it.Quantity))

	it, err = ParseItem("flammable-liquid: 20000")
	require.NoError(t, err)
	assert.Equal(t, "flammable-liquid", it.ClassID)
	assert.True(t, d("20000").Equal(it.Quantity))

	// The last colon separates the quantity
	it, err = ParseItem("a:b:7")
	require.NoError(t, err)
	assert.Equal(t, "a:b", it.ClassID)

	for _, bad := range []string{"lpg", ":5", "lpg:", "lpg:x", " :5"} {
		_, err := ParseItem(bad)
		assert.Error(t, err, bad)
	}
}
