package requirement

import (
	"github.com/alexiusacademia/gofsi/internal/building"
	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// Params are the building values available to computed requirement text
type Params struct {
	OccupantLoad   int
	FloorArea      float64 // m², whole building
	Stories        int
	BuildingHeight float64 // m, stories × 3
	Floors         []building.Floor
	Occupancy      occupancy.Type
}

// ParamsFor derives text parameters from building data
func ParamsFor(b building.Data) Params {
	return Params{
		OccupantLoad:   b.TotalOccupantLoad,
		FloorArea:      b.TotalArea,
		Stories:        b.Stories(),
		BuildingHeight: b.EstimatedHeight(),
		Floors:         b.Floors,
		Occupancy:      b.Occupancy,
	}
}

// Text is either a literal string or a pure function of Params.
// The zero value is absent text.
type Text struct {
	literal string
	compute func(Params) string
}

// Literal returns fixed text
func Literal(s string) Text {
	return Text{literal: s}
}

// Computed returns text derived from the building. fn must be pure.
func Computed(fn func(Params) string) Text {
	return Text{compute: fn}
}

// IsZero reports whether the text is absent
func (t Text) IsZero() bool {
	return t.compute == nil && t.literal == ""
}

// IsComputed reports whether the text depends on the building
func (t Text) IsComputed() bool {
	return t.compute != nil
}

// Render produces the display text; absent text renders as ""
func (t Text) Render(p Params) string {
	if t.compute != nil {
		return t.compute(p)
	}
	return t.literal
}

// Specifics holds the optional detail fields of a requirement
type Specifics struct {
	Quantity       Text
	Type           Text
	Specifications Text
	Distribution   Text
	Installation   Text
	Maintenance    Text
}

// Expanded is a requirement with every text field rendered for one building
type Expanded struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Code        string `json:"code,omitempty" yaml:"code,omitempty"`
	Description string `json:"description" yaml:"description"`

	Quantity       string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Type           string `json:"type,omitempty" yaml:"type,omitempty"`
	Specifications string `json:"specifications,omitempty" yaml:"specifications,omitempty"`
	Distribution   string `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	Installation   string `json:"installation,omitempty" yaml:"installation,omitempty"`
	Maintenance    string `json:"maintenance,omitempty" yaml:"maintenance,omitempty"`
}

// Expand renders every text field of r for building b
func Expand(r FireSafetyRequirement, b building.Data) Expanded {
	p := ParamsFor(b)
	return Expanded{
		ID:             r.ID,
		Name:           r.Name,
		Category:       r.Category,
		Code:           r.Code,
		Description:    r.Description,
		Quantity:       r.Specific.Quantity.Render(p),
		Type:           r.Specific.Type.Render(p),
		Specifications: r.Specific.Specifications.Render(p),
		Distribution:   r.Specific.Distribution.Render(p),
		Installation:   r.Specific.Installation.Render(p),
		Maintenance:    r.Specific.Maintenance.Render(p),
	}
}

// ExpandAll renders a list of requirements in order
func ExpandAll(reqs []FireSafetyRequirement, b building.Data) []Expanded {
	out := make([]Expanded, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, Expand(r, b))
	}
	return out
}
