package requirement

// AllOccupancies is the sentinel that makes a requirement apply to every occupancy
const AllOccupancies = "all"

// FireSafetyRequirement is one static catalog entry
type FireSafetyRequirement struct {
	ID          string
	Name        string
	Description string
	Category    string // display grouping only
	Code        string // reference library code, e.g. "NFPA 13"

	// Occupancy ids, or AllOccupancies
	Occupancies []string

	Thresholds Thresholds
	Specific   Specifics
}

// Thresholds are minimum values; nil fields impose no constraint.
// A requirement applies only when the building meets every present field.
type Thresholds struct {
	OccupantLoad   *int
	Stories        *int
	FloorArea      *float64 // m², whole building
	BuildingHeight *float64 // m, estimated
}

// IsEmpty reports whether no threshold is present
func (t Thresholds) IsEmpty() bool {
	return t.OccupantLoad == nil && t.Stories == nil && t.FloorArea == nil && t.BuildingHeight == nil
}

func minInt(v int) *int { return &v }

func minFloat(v float64) *float64 { return &v }

// clone copies the threshold pointers and occupancy list so callers
// cannot write through to the static catalog
func (r FireSafetyRequirement) clone() FireSafetyRequirement {
	r.Occupancies = append([]string(nil), r.Occupancies...)
	if t := r.Thresholds.OccupantLoad; t != nil {
		r.Thresholds.OccupantLoad = minInt(*t)
	}
	if t := r.Thresholds.Stories; t != nil {
		r.Thresholds.Stories = minInt(*t)
	}
	if t := r.Thresholds.FloorArea; t != nil {
		r.Thresholds.FloorArea = minFloat(*t)
	}
	if t := r.Thresholds.BuildingHeight; t != nil {
		r.Thresholds.BuildingHeight = minFloat(*t)
	}
	return r
}

// AppliesTo reports whether the requirement lists the occupancy id or the sentinel
func (r FireSafetyRequirement) AppliesTo(occupancyID string) bool {
	for _, id := range r.Occupancies {
		if id == AllOccupancies || id == occupancyID {
			return true
		}
	}
	return false
}
