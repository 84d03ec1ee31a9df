package requirement

import (
	"fmt"

	"github.com/alexiusacademia/gofsi/internal/building"
)

// Decision records why a catalog entry was or was not selected
type Decision struct {
	Requirement FireSafetyRequirement
	Included    bool
	Reason      string
}

// Determine returns the catalog entries required for the building, in catalog order
func Determine(b building.Data) []FireSafetyRequirement {
	return DetermineWith(catalog, b)
}

// DetermineWith filters an arbitrary catalog
func DetermineWith(cat []FireSafetyRequirement, b building.Data) []FireSafetyRequirement {
	var out []FireSafetyRequirement
	for _, r := range cat {
		if evaluate(r, b).Included {
			out = append(out, r)
		}
	}
	return out
}

// Explain returns a decision for every catalog entry, in catalog order
func Explain(b building.Data) []Decision {
	return ExplainWith(catalog, b)
}

// ExplainWith explains the filter over an arbitrary catalog
func ExplainWith(cat []FireSafetyRequirement, b building.Data) []Decision {
	out := make([]Decision, 0, len(cat))
	for _, r := range cat {
		out = append(out, evaluate(r, b))
	}
	return out
}

func evaluate(r FireSafetyRequirement, b building.Data) Decision {
	d := Decision{Requirement: r}

	// 1. Occupancy applicability
	if !r.AppliesTo(b.Occupancy.ID) {
		d.Reason = fmt.Sprintf("not applicable to occupancy %q", b.Occupancy.ID)
		return d
	}

	// 2. Exemptions take precedence over thresholds
	if e, ok := exemptionFor(r.ID, b); ok {
		d.Reason = "exempt: " + e.Name
		return d
	}

	// 3. Every present threshold must be met
	if unmet := r.Thresholds.Unmet(b); unmet != "" {
		d.Reason = unmet
		return d
	}

	d.Included = true
	if r.Thresholds.IsEmpty() {
		d.Reason = "required for all buildings of this occupancy"
	} else {
		d.Reason = "all thresholds met"
	}
	return d
}

// Unmet describes the first threshold the building falls below, or "" if all are met
func (t Thresholds) Unmet(b building.Data) string {
	if t.OccupantLoad != nil && b.TotalOccupantLoad < *t.OccupantLoad {
		return fmt.Sprintf("occupant load %d below %d", b.TotalOccupantLoad, *t.OccupantLoad)
	}
	if t.Stories != nil && b.Stories() < *t.Stories {
		return fmt.Sprintf("%d stories below %d", b.Stories(), *t.Stories)
	}
	if t.FloorArea != nil && b.TotalArea < *t.FloorArea {
		return fmt.Sprintf("floor area %.2f m² below %.0f m²", b.TotalArea, *t.FloorArea)
	}
	if t.BuildingHeight != nil && b.EstimatedHeight() < *t.BuildingHeight {
		return fmt.Sprintf("estimated height %.1f m below %.1f m", b.EstimatedHeight(), *t.BuildingHeight)
	}
	return ""
}
