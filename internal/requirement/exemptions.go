package requirement

import "github.com/alexiusacademia/gofsi/internal/building"

// Exemption suppresses a requirement regardless of its thresholds
type Exemption struct {
	Name    string
	Applies func(b building.Data) bool
}

// exemptions are regulatory carve-outs keyed by requirement id. They express
// upper-bound and conjunctive conditions that minimum thresholds cannot.
//
// The residential, parking and agricultural ids are not in the built-in
// occupancy table; they become reachable when config adds those occupancies.
var exemptions = map[string][]Exemption{
	SprinklerID: {
		{
			Name: "single-story business under 2000 m² and 500 occupants",
			Applies: func(b building.Data) bool {
				return b.Occupancy.ID == "business" &&
					b.Stories() == 1 &&
					b.TotalArea < 2000 &&
					b.TotalOccupantLoad < 500
			},
		},
		{
			Name: "one- and two-family dwelling of at most two stories",
			Applies: func(b building.Data) bool {
				id := b.Occupancy.ID
				return (id == "residential-single-family" || id == "residential-two-family") &&
					b.Stories() <= 2
			},
		},
		{
			Name: "naturally ventilated parking garage",
			Applies: func(b building.Data) bool {
				return b.Occupancy.ID == "storage-parking-garage" && b.HasFeature("natural-ventilation")
			},
		},
		{
			Name: "telecommunication facility under 3 stories and 2000 m²",
			Applies: func(b building.Data) bool {
				return b.Occupancy.ID == "telecommunication-facility" &&
					b.Stories() < 3 &&
					b.TotalArea < 2000
			},
		},
		{
			Name: "agricultural structure used only for growing crops",
			Applies: func(b building.Data) bool {
				return b.Occupancy.ID == "agricultural-facility" && b.HasFeature("crop-growing-only")
			},
		},
	},
}

// exemptionFor returns the first exemption of requirement id that applies to b
func exemptionFor(id string, b building.Data) (Exemption, bool) {
	for _, e := range exemptions[id] {
		if e.Applies(b) {
			return e, true
		}
	}
	return Exemption{}, false
}
