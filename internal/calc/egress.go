package calc

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofsi/internal/nfpa"
)

// Egress holds the inputs for an egress capacity check of one story
type Egress struct {
	OccupantLoad int

	// Provided clear widths (mm), 0 = not provided
	StairWidth float64
	DoorWidth  float64

	// Number of exits provided, 0 = not provided
	ExitsProvided int
}

// EgressResult holds required widths and capacities
type EgressResult struct {
	// Required (mm)
	RequiredStairWidth float64
	RequiredDoorWidth  float64
	RequiredExits      int

	// Persons the provided widths can serve
	StairCapacity int
	DoorCapacity  int

	StairAdequate bool
	DoorAdequate  bool
	ExitsAdequate bool
}

// Calculate checks egress capacity per NFPA 101 Section 7.3.3
func (e *Egress) Calculate() (*EgressResult, error) {
	if e.OccupantLoad < 0 {
		return nil, fmt.Errorf("occupant load must not be negative, got %d", e.OccupantLoad)
	}
	if e.StairWidth < 0 || e.DoorWidth < 0 {
		return nil, fmt.Errorf("invalid widths: stair=%.0f mm, door=%.0f mm", e.StairWidth, e.DoorWidth)
	}
	if e.ExitsProvided < 0 {
		return nil, fmt.Errorf("exits provided must not be negative, got %d", e.ExitsProvided)
	}

	load := float64(e.OccupantLoad)
	result := &EgressResult{
		RequiredStairWidth: math.Max(math.Ceil(load*nfpa.StairCapacityFactor), nfpa.MinStairWidth),
		RequiredDoorWidth:  math.Max(math.Ceil(load*nfpa.LevelCapacityFactor), nfpa.MinDoorWidth),
		RequiredExits:      nfpa.MinimumExits(e.OccupantLoad),
		StairCapacity:      int(math.Floor(e.StairWidth / nfpa.StairCapacityFactor)),
		DoorCapacity:       int(math.Floor(e.DoorWidth / nfpa.LevelCapacityFactor)),
	}

	result.StairAdequate = e.StairWidth >= result.RequiredStairWidth
	result.DoorAdequate = e.DoorWidth >= result.RequiredDoorWidth
	result.ExitsAdequate = e.ExitsProvided >= result.RequiredExits

	return result, nil
}
