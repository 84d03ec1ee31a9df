package building

import (
	"fmt"

	"github.com/alexiusacademia/gofsi/internal/nfpa"
	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// Floor represents one story of the building
type Floor struct {
	ID int `json:"id" yaml:"id"` // 1-based ordinal, dense

	// Dimensions (m)
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`

	// Derived
	Area         float64 `json:"area" yaml:"area"`                   // m²
	OccupantLoad int     `json:"occupant_load" yaml:"occupant_load"` // persons
}

// Data holds the aggregated building configuration used for requirement selection
type Data struct {
	Occupancy occupancy.Type      `json:"occupancy" yaml:"occupancy"`
	Floors    []Floor             `json:"floors" yaml:"floors"`
	Features  []occupancy.Feature `json:"features,omitempty" yaml:"features,omitempty"`

	TotalArea         float64 `json:"total_area" yaml:"total_area"`
	TotalOccupantLoad int     `json:"total_occupant_load" yaml:"total_occupant_load"`
}

// Stories is the number of floors
func (d Data) Stories() int {
	return len(d.Floors)
}

// EstimatedHeight assumes a fixed 3 m per story
func (d Data) EstimatedHeight() float64 {
	return nfpa.EstimatedHeight(d.Stories())
}

// HasFeature reports whether a feature with the given id is selected
func (d Data) HasFeature(id string) bool {
	for _, f := range d.Features {
		if f.ID == id {
			return true
		}
	}
	return false
}

// ValidationError represents invalid building input
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// ValidateDimensions checks that floor dimensions are positive finite numbers
func ValidateDimensions(length, width float64) error {
	if !(length > 0) || length > maxDimension {
		return &ValidationError{msg: fmt.Sprintf("floor length must be a positive number, got %v", length)}
	}
	if !(width > 0) || width > maxDimension {
		return &ValidationError{msg: fmt.Sprintf("floor width must be a positive number, got %v", width)}
	}
	return nil
}

// Upper bound also rejects +Inf
const maxDimension = 1e6
