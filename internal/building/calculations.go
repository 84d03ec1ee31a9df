package building

import (
	"math"

	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// CalculateFloorArea returns length × width. Inputs are validated by the caller.
func CalculateFloorArea(length, width float64) float64 {
	return length * width
}

// CalculateOccupantLoad returns ceil(area / occupant load factor).
// A fractional occupant always counts as a whole person.
func CalculateOccupantLoad(area float64, occ occupancy.Type) int {
	return int(math.Ceil(area / occ.OccupantLoadFactor))
}

// NewFloor builds a floor with its derived area and occupant load
func NewFloor(id int, length, width float64, occ occupancy.Type) Floor {
	area := CalculateFloorArea(length, width)
	return Floor{
		ID:           id,
		Length:       length,
		Width:        width,
		Area:         area,
		OccupantLoad: CalculateOccupantLoad(area, occ),
	}
}

// Recalculate returns a copy of floors with occupant loads recomputed for occ.
// Areas are left unchanged.
func Recalculate(occ occupancy.Type, floors []Floor) []Floor {
	out := make([]Floor, len(floors))
	for i, f := range floors {
		f.OccupantLoad = CalculateOccupantLoad(f.Area, occ)
		out[i] = f
	}
	return out
}

// CalculateBuildingData sums the floors into building totals.
// The inputs are not modified; the result owns its own slices.
func CalculateBuildingData(occ occupancy.Type, floors []Floor, features ...occupancy.Feature) Data {
	d := Data{
		Occupancy: occ,
		Floors:    make([]Floor, len(floors)),
	}
	copy(d.Floors, floors)
	if len(features) > 0 {
		d.Features = make([]occupancy.Feature, len(features))
		copy(d.Features, features)
	}

	for _, f := range d.Floors {
		d.TotalArea += f.Area
		d.TotalOccupantLoad += f.OccupantLoad
	}
	return d
}
