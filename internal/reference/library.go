// Package reference is the searchable library of codes and standards cited
// by the requirement catalog.
package reference

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when no entry has the requested code
var ErrNotFound = errors.New("reference not found")

// Entry is one code or standard
type Entry struct {
	Code    string   `json:"code" yaml:"code"`
	Title   string   `json:"title" yaml:"title"`
	Edition string   `json:"edition,omitempty" yaml:"edition,omitempty"`
	Summary string   `json:"summary" yaml:"summary"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

var entries = []Entry{
	{
		Code:    "RA 9514",
		Title:   "Fire Code of the Philippines of 2008",
		Edition: "2019 Revised IRR",
		Summary: "Governs fire safety inspection, the Fire Safety Inspection Certificate (FSIC), fire safety construction and protective features, and fees collected by the Bureau of Fire Protection.",
		Tags:    []string{"bfp", "fsic", "fees", "inspection", "philippines"},
	},
	{
		Code:    "NFPA 1",
		Title:   "Fire Code",
		Edition: "2021",
		Summary: "Minimum requirements for fire prevention, fire department access, hazardous materials storage and building fire protection features.",
		Tags:    []string{"hazardous", "materials", "access", "hydrant"},
	},
	{
		Code:    "NFPA 10",
		Title:   "Standard for Portable Fire Extinguishers",
		Edition: "2022",
		Summary: "Selection, placement, inspection, maintenance and testing of portable extinguishers, including coverage area per rating and maximum travel distance.",
		Tags:    []string{"extinguisher", "portable", "travel", "distance"},
	},
	{
		Code:    "NFPA 13",
		Title:   "Standard for the Installation of Sprinkler Systems",
		Edition: "2022",
		Summary: "Design and installation of automatic sprinkler systems: hazard classification, density/area curves, sprinkler spacing and water supply.",
		Tags:    []string{"sprinkler", "hazard", "density", "water"},
	},
	{
		Code:    "NFPA 14",
		Title:   "Standard for the Installation of Standpipe and Hose Systems",
		Edition: "2019",
		Summary: "Standpipe classes, hose connection locations, minimum flow rates and residual pressures.",
		Tags:    []string{"standpipe", "hose", "riser"},
	},
	{
		Code:    "NFPA 20",
		Title:   "Standard for the Installation of Stationary Pumps for Fire Protection",
		Edition: "2022",
		Summary: "Fire pump selection, rated capacities, pump rooms, controllers, drivers and acceptance testing.",
		Tags:    []string{"pump", "horsepower", "water"},
	},
	{
		Code:    "NFPA 72",
		Title:   "National Fire Alarm and Signaling Code",
		Edition: "2022",
		Summary: "Fire alarm systems, detector spacing, notification appliances, emergency voice communication and fire command centers.",
		Tags:    []string{"alarm", "detector", "smoke", "voice", "evacuation"},
	},
	{
		Code:    "NFPA 80",
		Title:   "Standard for Fire Doors and Other Opening Protectives",
		Edition: "2022",
		Summary: "Installation, inspection and maintenance of fire doors, shutters and fire windows.",
		Tags:    []string{"door", "opening", "compartment"},
	},
	{
		Code:    "NFPA 92",
		Title:   "Standard for Smoke Control Systems",
		Edition: "2021",
		Summary: "Design, installation and testing of smoke control systems including stair pressurization.",
		Tags:    []string{"smoke", "pressurization", "high-rise"},
	},
	{
		Code:    "NFPA 96",
		Title:   "Standard for Ventilation Control and Fire Protection of Commercial Cooking Operations",
		Edition: "2021",
		Summary: "Hoods, grease ducts, exhaust fans and fire-extinguishing equipment for commercial kitchens.",
		Tags:    []string{"kitchen", "hood", "cooking", "grease"},
	},
	{
		Code:    "NFPA 101",
		Title:   "Life Safety Code",
		Edition: "2021",
		Summary: "Means of egress, occupant load factors, egress capacity, exit signs, emergency lighting and occupancy-specific life safety provisions.",
		Tags:    []string{"egress", "exit", "occupant", "load", "lighting"},
	},
	{
		Code:    "NFPA 110",
		Title:   "Standard for Emergency and Standby Power Systems",
		Edition: "2022",
		Summary: "Performance, installation and maintenance of emergency power supply systems.",
		Tags:    []string{"power", "generator", "emergency"},
	},
	{
		Code:    "NFPA 557",
		Title:   "Standard for Determination of Fire Loads for Use in Structural Fire Protection Design",
		Edition: "2020",
		Summary: "Methods to determine fire load and fire load density of compartments.",
		Tags:    []string{"fire", "load", "density", "calorific"},
	},
}

// Library is a read-only set of reference entries
type Library struct {
	entries []Entry
}

// Default returns the built-in library
func Default() *Library {
	return &Library{entries: entries}
}

// All returns every entry in library order
func (l *Library) All() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ByCode returns the entry with an exact (case-insensitive) code
func (l *Library) ByCode(code string) (Entry, error) {
	for _, e := range l.entries {
		if strings.EqualFold(e.Code, strings.TrimSpace(code)) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, code)
}

// Search returns entries matching any query token in code, title, summary or
// tags, ranked by the number of matched tokens. Ties keep library order.
func (l *Library) Search(query string) []Entry {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	type hit struct {
		entry Entry
		score int
	}
	var hits []hit
	for _, e := range l.entries {
		haystack := strings.ToLower(strings.Join(append([]string{e.Code, e.Title, e.Summary}, e.Tags...), " "))
		score := 0
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, hit{entry: e, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	out := make([]Entry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}
