package occupancy

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknown is returned when an occupancy or feature id is not in the table
var ErrUnknown = errors.New("unknown occupancy type")

// Hazard is the fire-load severity tier of an occupancy
type Hazard string

const (
	HazardLight    Hazard = "light"
	HazardOrdinary Hazard = "ordinary"
	HazardHigh     Hazard = "high"
)

// Type represents a regulatory occupancy classification
// Based on RA 9514 IRR Division 8 and NFPA 101 Table 7.3.1.2
type Type struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Floor area per person (m²/person), must be > 0
	OccupantLoadFactor float64 `json:"occupant_load_factor" yaml:"occupant_load_factor"`

	// Optional, only used in descriptive text
	Hazard Hazard `json:"hazard,omitempty" yaml:"hazard,omitempty"`
}

// Validate checks the occupancy definition
func (t Type) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("occupancy id is required")
	}
	if !(t.OccupantLoadFactor > 0) || math.IsInf(t.OccupantLoadFactor, 1) {
		return fmt.Errorf("occupancy %q: occupant load factor must be positive and finite", t.ID)
	}
	switch t.Hazard {
	case "", HazardLight, HazardOrdinary, HazardHigh:
	default:
		return fmt.Errorf("occupancy %q: unknown hazard classification %q", t.ID, t.Hazard)
	}
	return nil
}

// Feature is an optional building characteristic selected by the inspector
type Feature struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
