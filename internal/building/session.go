package building

import (
	"fmt"

	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// Session owns the building being edited: the selected occupancy, the
// ordered floors and the selected features. Every mutation leaves the floors
// consistent with the current occupancy; totals are only produced by Data.
type Session struct {
	occ      occupancy.Type
	floors   []Floor
	features []occupancy.Feature
}

// NewSession starts an empty building of the given occupancy
func NewSession(occ occupancy.Type) *Session {
	return &Session{occ: occ}
}

// Occupancy returns the selected occupancy type
func (s *Session) Occupancy() occupancy.Type {
	return s.occ
}

// SetOccupancy changes the occupancy and recomputes every floor's occupant load
func (s *Session) SetOccupancy(occ occupancy.Type) {
	s.occ = occ
	s.floors = Recalculate(occ, s.floors)
}

// AddFloor appends a floor after validating its dimensions
func (s *Session) AddFloor(length, width float64) (Floor, error) {
	if err := ValidateDimensions(length, width); err != nil {
		return Floor{}, err
	}
	f := NewFloor(len(s.floors)+1, length, width, s.occ)
	s.floors = append(s.floors, f)
	return f, nil
}

// UpdateFloor replaces the dimensions of an existing floor
func (s *Session) UpdateFloor(id int, length, width float64) (Floor, error) {
	i, err := s.index(id)
	if err != nil {
		return Floor{}, err
	}
	if err := ValidateDimensions(length, width); err != nil {
		return Floor{}, err
	}
	s.floors[i] = NewFloor(id, length, width, s.occ)
	return s.floors[i], nil
}

// RemoveFloor deletes a floor and renumbers the remaining floors densely
func (s *Session) RemoveFloor(id int) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.floors = append(s.floors[:i], s.floors[i+1:]...)
	for j := range s.floors {
		s.floors[j].ID = j + 1
	}
	return nil
}

func (s *Session) index(id int) (int, error) {
	if id < 1 || id > len(s.floors) {
		return 0, &ValidationError{msg: fmt.Sprintf("floor %d does not exist (building has %d floors)", id, len(s.floors))}
	}
	return id - 1, nil
}

// Floors returns a copy of the current floors
func (s *Session) Floors() []Floor {
	out := make([]Floor, len(s.floors))
	copy(out, s.floors)
	return out
}

// ToggleFeature selects the feature if absent, otherwise deselects it.
// It reports whether the feature is selected afterwards.
func (s *Session) ToggleFeature(f occupancy.Feature) bool {
	for i, sel := range s.features {
		if sel.ID == f.ID {
			s.features = append(s.features[:i], s.features[i+1:]...)
			return false
		}
	}
	s.features = append(s.features, f)
	return true
}

// Features returns a copy of the selected features
func (s *Session) Features() []occupancy.Feature {
	out := make([]occupancy.Feature, len(s.features))
	copy(out, s.features)
	return out
}

// Data recomputes the building totals from scratch
func (s *Session) Data() Data {
	return CalculateBuildingData(s.occ, s.floors, s.features...)
}
