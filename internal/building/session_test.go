package building

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

func TestSessionAddRemoveRenumbers(t *testing.T) {
	s := NewSession(business)
	for _, dims := range [][2]float64{{10, 10}, {20, 20}, {30, 30}} {
		_, err := s.AddFloor(dims[0], dims[1])
		require.NoError(t, err)
	}

	require.NoError(t, s.RemoveFloor(2))
	floors := s.Floors()
	require.Len(t, floors, 2)
	assert.Equal(t, 1, floors[0].ID)
	assert.Equal(t, 2, floors[1].ID)
	assert.Equal(t, 900.0, floors[1].Area)

	d := s.Data()
	assert.Equal(t, 1000.0, d.TotalArea)
	assert.Equal(t, floors[0].OccupantLoad+floors[1].OccupantLoad, d.TotalOccupantLoad)

	var verr *ValidationError
	assert.True(t, errors.As(s.RemoveFloor(3), &verr))
	assert.True(t, errors.As(s.RemoveFloor(0), &verr))
}

func TestSessionRejectsBadDimensions(t *testing.T) {
	s := NewSession(business)
	for _, dims := range [][2]float64{{0, 10}, {10, -1}, {math.NaN(), 5}, {5, math.Inf(1)}} {
		_, err := s.AddFloor(dims[0], dims[1])
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), "%v", dims)
	}
	assert.Empty(t, s.Floors())
}

func TestSessionSetOccupancyRecomputesEveryFloor(t *testing.T) {
	s := NewSession(business)
	_, _ = s.AddFloor(20, 20)
	_, _ = s.AddFloor(25, 25)
	before := s.Floors()

	s.SetOccupancy(mercantile)
	after := s.Floors()

	for i := range after {
		assert.Equal(t, before[i].Area, after[i].Area)
		assert.Equal(t, CalculateOccupantLoad(after[i].Area, mercantile), after[i].OccupantLoad)
	}
	assert.Equal(t, 143+224, s.Data().TotalOccupantLoad)
}

func TestSessionUpdateFloor(t *testing.T) {
	s := NewSession(business)
	_, _ = s.AddFloor(20, 20)

	f, err := s.UpdateFloor(1, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 100.0, f.Area)
	assert.Equal(t, 11, f.OccupantLoad)
	assert.Equal(t, 100.0, s.Data().TotalArea)

	_, err = s.UpdateFloor(1, -5, 10)
	assert.Error(t, err)
	_, err = s.UpdateFloor(2, 5, 10)
	assert.Error(t, err)
}

func TestSessionToggleFeature(t *testing.T) {
	s := NewSession(business)
	elevator := occupancy.Feature{ID: "elevator"}

	assert.True(t, s.ToggleFeature(elevator))
	assert.True(t, s.Data().HasFeature("elevator"))
	assert.False(t, s.ToggleFeature(elevator))
	assert.False(t, s.Data().HasFeature("elevator"))
}

func TestParseDimensions(t *testing.T) {
	l, w, err := ParseDimensions("20x15.5")
	require.NoError(t, err)
	assert.Equal(t, 20.0, l)
	assert.Equal(t, 15.5, w)

	l, w, err = ParseDimensions(" 25 X 25 ")
	require.NoError(t, err)
	assert.Equal(t, 25.0, l)
	assert.Equal(t, 25.0, w)

	for _, bad := range []string{"", "20", "20x", "ax3", "0x3", "3x-2", "1x2x3"} {
		_, _, err := ParseDimensions(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "mall.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`name: Mall
occupancy: mercantile
floors:
  - {length: 25, width: 25, count: 5}
features: [elevator]
`), 0644))

	def, err := LoadFromFile(yamlPath)
	require.NoError(t, err)
	s, err := def.Session(occupancy.Default())
	require.NoError(t, err)

	d := s.Data()
	assert.Equal(t, 5, d.Stories())
	assert.Equal(t, 3125.0, d.TotalArea)
	assert.Equal(t, 1120, d.TotalOccupantLoad)
	assert.True(t, d.HasFeature("elevator"))

	jsonPath := filepath.Join(dir, "office.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"occupancy":"business","floors":[{"length":20,"width":20}]}`), 0644))
	def, err = LoadFromFile(jsonPath)
	require.NoError(t, err)
	s, err = def.Session(occupancy.Default())
	require.NoError(t, err)
	assert.Equal(t, 44, s.Data().TotalOccupantLoad)
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("occupancy: business\nfloors:\n  - {length: 0, width: 3}\n"), 0644))
	_, err = LoadFromFile(bad)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	def := &Definition{Occupancy: "nightclub"}
	_, err = def.Session(occupancy.Default())
	assert.True(t, errors.Is(err, occupancy.ErrUnknown))

	def = &Definition{Occupancy: "business", Features: []string{"elevator", "elevator"}}
	_, err = def.Session(occupancy.Default())
	assert.Error(t, err)
}
