package fees

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownClass is returned for a material class not in the schedule
var ErrUnknownClass = errors.New("unknown hazardous material class")

// Class is one line of the hazardous-material permit fee schedule
type Class struct {
	ID   string
	Name string
	Unit string // unit of quantity, e.g. "L", "kg"

	Rate           decimal.Decimal // pesos per unit
	Minimum        decimal.Decimal // minimum fee once the exempt quantity is exceeded
	ExemptQuantity decimal.Decimal // quantities at or below this pay nothing
}

// Override replaces parts of a class; empty strings keep the default
type Override struct {
	Rate           string `yaml:"rate"`
	Minimum        string `yaml:"minimum"`
	ExemptQuantity string `yaml:"exempt_quantity"`
}

// defaultClasses is the built-in schedule. Local fee ordinances differ; deployments
// override rates through the config file.
var defaultClasses = []Class{
	{ID: "flammable-liquid", Name: "Flammable liquids (Class I)", Unit: "L", Rate: decimal.RequireFromString("0.30"), Minimum: decimal.RequireFromString("100"), ExemptQuantity: decimal.RequireFromString("20")},
	{ID: "combustible-liquid", Name: "Combustible liquids (Class II and III)", Unit: "L", Rate: decimal.RequireFromString("0.15"), Minimum: decimal.RequireFromString("100"), ExemptQuantity: decimal.RequireFromString("100")},
	{ID: "lpg", Name: "Liquefied petroleum gas", Unit: "kg", Rate: decimal.RequireFromString("0.50"), Minimum: decimal.RequireFromString("150"), ExemptQuantity: decimal.RequireFromString("50")},
	{ID: "flammable-gas", Name: "Other flammable compressed gases", Unit: "m³", Rate: decimal.RequireFromString("0.75"), Minimum: decimal.RequireFromString("150"), ExemptQuantity: decimal.RequireFromString("10")},
	{ID: "combustible-solid", Name: "Combustible fibers and solids", Unit: "kg", Rate: decimal.RequireFromString("0.05"), Minimum: decimal.RequireFromString("100"), ExemptQuantity: decimal.RequireFromString("500")},
	{ID: "oxidizer", Name: "Oxidizing materials", Unit: "kg", Rate: decimal.RequireFromString("0.60"), Minimum: decimal.RequireFromString("200"), ExemptQuantity: decimal.RequireFromString("10")},
	{ID: "corrosive", Name: "Corrosive liquids", Unit: "L", Rate: decimal.RequireFromString("0.40"), Minimum: decimal.RequireFromString("150"), ExemptQuantity: decimal.RequireFromString("20")},
	{ID: "explosive", Name: "Explosives and pyrotechnics", Unit: "kg", Rate: decimal.RequireFromString("5.00"), Minimum: decimal.RequireFromString("500"), ExemptQuantity: decimal.Zero},
}

// Schedule is an ordered set of fee classes
type Schedule struct {
	classes []Class
}

// DefaultSchedule returns the built-in fee schedule
func DefaultSchedule() *Schedule {
	s := &Schedule{classes: make([]Class, len(defaultClasses))}
	copy(s.classes, defaultClasses)
	return s
}

// Classes returns the fee classes in schedule order
func (s *Schedule) Classes() []Class {
	out := make([]Class, len(s.classes))
	copy(out, s.classes)
	return out
}

// Class finds a fee class by id
func (s *Schedule) Class(id string) (Class, error) {
	for _, c := range s.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return Class{}, fmt.Errorf("%w: %q", ErrUnknownClass, id)
}

// WithOverrides returns a copy of the schedule with rates replaced
func (s *Schedule) WithOverrides(overrides map[string]Override) (*Schedule, error) {
	out := &Schedule{classes: s.Classes()}
	for id, o := range overrides {
		idx := -1
		for i, c := range out.classes {
			if c.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("fee override: %w: %q", ErrUnknownClass, id)
		}

		c := &out.classes[idx]
		for _, f := range []struct {
			raw string
			dst *decimal.Decimal
		}{
			{o.Rate, &c.Rate},
			{o.Minimum, &c.Minimum},
			{o.ExemptQuantity, &c.ExemptQuantity},
		} {
			if f.raw == "" {
				continue
			}
			v, err := decimal.NewFromString(f.raw)
			if err != nil {
				return nil, fmt.Errorf("fee override %q: %w", id, err)
			}
			if v.IsNegative() {
				return nil, fmt.Errorf("fee override %q: negative value %s", id, f.raw)
			}
			*f.dst = v
		}
	}
	return out, nil
}
