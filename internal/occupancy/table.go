package occupancy

import (
	"fmt"
	"sort"
)

// Types is the built-in occupancy table.
// Occupant load factors follow NFPA 101 Table 7.3.1.2 (converted to m²/person).
var Types = []Type{
	{ID: "assembly-concentrated", Name: "Assembly (concentrated use, without fixed seats)", OccupantLoadFactor: 0.65, Hazard: HazardLight},
	{ID: "assembly-less-concentrated", Name: "Assembly (less concentrated use, tables and chairs)", OccupantLoadFactor: 1.4, Hazard: HazardOrdinary},
	{ID: "educational", Name: "Educational (classroom area)", OccupantLoadFactor: 1.9, Hazard: HazardLight},
	{ID: "day-care", Name: "Day Care", OccupantLoadFactor: 3.3, Hazard: HazardLight},
	{ID: "health-care", Name: "Health Care (inpatient treatment)", OccupantLoadFactor: 22.3, Hazard: HazardLight},
	{ID: "ambulatory-health-care", Name: "Ambulatory Health Care", OccupantLoadFactor: 9.3, Hazard: HazardLight},
	{ID: "detention-correctional", Name: "Detention and Correctional", OccupantLoadFactor: 11.1, Hazard: HazardLight},
	{ID: "residential-hotel", Name: "Residential (hotels and dormitories)", OccupantLoadFactor: 18.6, Hazard: HazardLight},
	{ID: "residential-apartment", Name: "Residential (apartment buildings)", OccupantLoadFactor: 18.6, Hazard: HazardLight},
	{ID: "mercantile", Name: "Mercantile", OccupantLoadFactor: 2.8, Hazard: HazardOrdinary},
	{ID: "business", Name: "Business", OccupantLoadFactor: 9.3, Hazard: HazardLight},
	{ID: "industrial", Name: "Industrial (general and special purpose)", OccupantLoadFactor: 9.3, Hazard: HazardOrdinary},
	{ID: "industrial-high-hazard", Name: "Industrial (high hazard)", OccupantLoadFactor: 9.3, Hazard: HazardHigh},
	{ID: "storage", Name: "Storage", OccupantLoadFactor: 27.9, Hazard: HazardOrdinary},
	{ID: "telecommunication-facility", Name: "Telecommunication Facility", OccupantLoadFactor: 27.9, Hazard: HazardOrdinary},
}

// Features is the built-in building feature table
var Features = []Feature{
	{ID: "elevator", Name: "Elevator", Description: "Passenger or freight elevator serving upper floors"},
	{ID: "basement", Name: "Basement", Description: "One or more levels below grade"},
	{ID: "atrium", Name: "Atrium", Description: "Floor opening connecting two or more stories"},
	{ID: "commercial-kitchen", Name: "Commercial Kitchen", Description: "Cooking operations producing grease-laden vapors"},
	{ID: "generator", Name: "Standby Generator", Description: "On-site fuel-fired generator"},
	{ID: "natural-ventilation", Name: "Natural Ventilation", Description: "Open parking structure ventilated through exterior openings"},
	{ID: "crop-growing-only", Name: "Crop Growing Only", Description: "Agricultural structure used solely for growing crops"},
}

// Table is a lookup over occupancy types and building features.
// The zero value is empty; use NewTable or Default.
type Table struct {
	types    []Type
	byID     map[string]int
	features map[string]Feature
	featList []Feature
}

// Default returns the built-in table
func Default() *Table {
	t, err := NewTable(Types, Features)
	if err != nil {
		// Built-in data is validated by tests
		panic(err)
	}
	return t
}

// NewTable builds a table, rejecting invalid or duplicate entries
func NewTable(types []Type, features []Feature) (*Table, error) {
	t := &Table{
		byID:     make(map[string]int, len(types)),
		features: make(map[string]Feature, len(features)),
	}
	for _, ot := range types {
		if err := t.add(ot); err != nil {
			return nil, err
		}
	}
	for _, f := range features {
		if _, dup := t.features[f.ID]; dup {
			return nil, fmt.Errorf("duplicate feature id %q", f.ID)
		}
		t.features[f.ID] = f
		t.featList = append(t.featList, f)
	}
	return t, nil
}

func (t *Table) add(ot Type) error {
	if err := ot.Validate(); err != nil {
		return err
	}
	if _, dup := t.byID[ot.ID]; dup {
		return fmt.Errorf("duplicate occupancy id %q", ot.ID)
	}
	t.byID[ot.ID] = len(t.types)
	t.types = append(t.types, ot)
	return nil
}

// Extend returns a copy of the table with extra occupancy types appended.
// Entries whose id already exists replace the existing definition in place.
func (t *Table) Extend(extra []Type) (*Table, error) {
	out, err := NewTable(t.types, t.featList)
	if err != nil {
		return nil, err
	}
	for _, ot := range extra {
		if i, ok := out.byID[ot.ID]; ok {
			if err := ot.Validate(); err != nil {
				return nil, err
			}
			out.types[i] = ot
			continue
		}
		if err := out.add(ot); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Get finds an occupancy type by id
func (t *Table) Get(id string) (Type, error) {
	i, ok := t.byID[id]
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknown, id)
	}
	return t.types[i], nil
}

// All returns the occupancy types in table order
func (t *Table) All() []Type {
	out := make([]Type, len(t.types))
	copy(out, t.types)
	return out
}

// Feature finds a building feature by id
func (t *Table) Feature(id string) (Feature, error) {
	f, ok := t.features[id]
	if !ok {
		return Feature{}, fmt.Errorf("%w feature: %q", ErrUnknown, id)
	}
	return f, nil
}

// Features returns the building features sorted by id
func (t *Table) Features() []Feature {
	out := make([]Feature, len(t.featList))
	copy(out, t.featList)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
