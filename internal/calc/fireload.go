package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gofsi/internal/nfpa"
	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// CalorificValues are typical net heats of combustion (MJ/kg)
var CalorificValues = map[string]float64{
	"wood":         18.6,
	"paper":        16.3,
	"cotton":       17.0,
	"polyethylene": 43.3,
	"polystyrene":  39.7,
	"pvc":          17.9,
	"rubber":       37.0,
	"gasoline":     43.7,
	"diesel":       45.4,
	"lpg":          46.1,
}

// Combustible is one class of combustible contents
type Combustible struct {
	Name           string
	MassKg         float64
	CalorificValue float64 // MJ/kg
}

// FireLoad holds the contents of one compartment
type FireLoad struct {
	FloorArea float64 // m²
	Items     []Combustible
}

// ItemLoad is one item's contribution
type ItemLoad struct {
	Name   string
	Energy float64 // MJ
	Share  float64 // fraction of total
}

// FireLoadResult holds the fire load density and classification
type FireLoadResult struct {
	TotalEnergy    float64 // MJ
	Density        float64 // MJ/m²
	WoodEquivalent float64 // kg of wood per m²
	Classification occupancy.Hazard
	Items          []ItemLoad
}

// Calculate computes the fire load density
func (f *FireLoad) Calculate() (*FireLoadResult, error) {
	if f.FloorArea <= 0 {
		return nil, fmt.Errorf("floor area must be positive, got %.2f", f.FloorArea)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("at least one combustible item is required")
	}

	result := &FireLoadResult{}
	for _, it := range f.Items {
		if it.MassKg < 0 || it.CalorificValue <= 0 {
			return nil, fmt.Errorf("invalid item %q: mass=%.2f kg, calorific value=%.2f MJ/kg", it.Name, it.MassKg, it.CalorificValue)
		}
		energy := it.MassKg * it.CalorificValue
		result.TotalEnergy += energy
		result.Items = append(result.Items, ItemLoad{Name: it.Name, Energy: energy})
	}

	if result.TotalEnergy > 0 {
		for i := range result.Items {
			result.Items[i].Share = result.Items[i].Energy / result.TotalEnergy
		}
	}

	result.Density = result.TotalEnergy / f.FloorArea
	result.WoodEquivalent = result.Density / nfpa.WoodCalorificValue
	result.Classification = ClassifyFireLoad(result.Density)

	return result, nil
}

// ClassifyFireLoad maps a fire load density (MJ/m²) to a hazard tier
func ClassifyFireLoad(density float64) occupancy.Hazard {
	switch {
	case density < nfpa.FireLoadLightMax:
		return occupancy.HazardLight
	case density < nfpa.FireLoadOrdinaryMax:
		return occupancy.HazardOrdinary
	default:
		return occupancy.HazardHigh
	}
}

// ParseCombustible parses "name:mass" or "name:mass:calorific".
// Without a calorific value the name must be in CalorificValues.
func ParseCombustible(s string) (Combustible, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Combustible{}, fmt.Errorf("invalid item %q, expected name:mass[:MJ/kg]", s)
	}

	c := Combustible{Name: strings.TrimSpace(parts[0])}
	if c.Name == "" {
		return Combustible{}, fmt.Errorf("invalid item %q: name is empty", s)
	}

	mass, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Combustible{}, fmt.Errorf("invalid mass in %q: %w", s, err)
	}
	c.MassKg = mass

	if len(parts) == 3 {
		cv, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return Combustible{}, fmt.Errorf("invalid calorific value in %q: %w", s, err)
		}
		c.CalorificValue = cv
		return c, nil
	}

	cv, ok := CalorificValues[strings.ToLower(c.Name)]
	if !ok {
		return Combustible{}, fmt.Errorf("no calorific value known for %q, use name:mass:MJ/kg", c.Name)
	}
	c.CalorificValue = cv
	return c, nil
}
