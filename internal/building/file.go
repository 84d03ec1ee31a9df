package building

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// Definition is a building described in a YAML or JSON file
//
//	name: Warehouse A
//	occupancy: storage
//	floors:
//	  - {length: 40, width: 25}
//	  - {length: 30, width: 25, count: 2}
//	features: [basement]
type Definition struct {
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Occupancy string      `json:"occupancy" yaml:"occupancy"`
	Floors    []FloorSpec `json:"floors" yaml:"floors"`
	Features  []string    `json:"features,omitempty" yaml:"features,omitempty"`
}

// FloorSpec describes one or more identical floors
type FloorSpec struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Count  int     `json:"count,omitempty" yaml:"count,omitempty"` // defaults to 1
}

// LoadFromFile loads a building definition. Files ending in .json are decoded
// as JSON, everything else as YAML.
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &def)
	} else {
		err = yaml.Unmarshal(data, &def)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition without resolving ids
func (d *Definition) Validate() error {
	if d.Occupancy == "" {
		return &ValidationError{"occupancy is required"}
	}
	for i, f := range d.Floors {
		if f.Count < 0 {
			return &ValidationError{msg: fmt.Sprintf("floor entry %d: count must not be negative", i+1)}
		}
		if err := ValidateDimensions(f.Length, f.Width); err != nil {
			return &ValidationError{msg: fmt.Sprintf("floor entry %d: %v", i+1, err)}
		}
	}
	return nil
}

// Session resolves the definition against the table and builds a session
func (d *Definition) Session(tbl *occupancy.Table) (*Session, error) {
	occ, err := tbl.Get(d.Occupancy)
	if err != nil {
		return nil, err
	}

	s := NewSession(occ)
	for _, f := range d.Floors {
		n := f.Count
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			if _, err := s.AddFloor(f.Length, f.Width); err != nil {
				return nil, err
			}
		}
	}
	for _, id := range d.Features {
		feat, err := tbl.Feature(id)
		if err != nil {
			return nil, err
		}
		if !s.ToggleFeature(feat) {
			return nil, &ValidationError{msg: fmt.Sprintf("feature %q listed twice", id)}
		}
	}
	return s, nil
}

// ParseDimensions parses "LxW" (e.g. "20x15.5") into length and width
func ParseDimensions(s string) (length, width float64, err error) {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == '×' || r == '*'
	})
	if len(parts) != 2 {
		return 0, 0, &ValidationError{msg: fmt.Sprintf("invalid floor %q, expected LENGTHxWIDTH", s)}
	}
	length, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, &ValidationError{msg: fmt.Sprintf("invalid floor length in %q", s)}
	}
	width, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, &ValidationError{msg: fmt.Sprintf("invalid floor width in %q", s)}
	}
	if err := ValidateDimensions(length, width); err != nil {
		return 0, 0, err
	}
	return length, width, nil
}
