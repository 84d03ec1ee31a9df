package building

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

var (
	business   = occupancy.Type{ID: "business", Name: "Business", OccupantLoadFactor: 9.3, Hazard: occupancy.HazardLight}
	mercantile = occupancy.Type{ID: "mercantile", Name: "Mercantile", OccupantLoadFactor: 2.8, Hazard: occupancy.HazardOrdinary}
)

func TestCalculateFloorArea(t *testing.T) {
	dims := [][2]float64{{20, 20}, {25, 25}, {0.5, 3}, {12.75, 8.2}}
	for _, d := range dims {
		assert.Equal(t, d[0]*d[1], CalculateFloorArea(d[0], d[1]))
	}
}

func TestCalculateOccupantLoad(t *testing.T) {
	for _, occ := range []occupancy.Type{business, mercantile} {
		assert.Equal(t, 1, CalculateOccupantLoad(occ.OccupantLoadFactor, occ), "exact fit is one person")
		assert.Equal(t, 2, CalculateOccupantLoad(occ.OccupantLoadFactor+1e-9, occ), "any excess rounds up")
	}

	assert.Equal(t, 44, CalculateOccupantLoad(400, business))
	assert.Equal(t, 224, CalculateOccupantLoad(625, mercantile))

	for _, area := range []float64{1, 17.3, 400, 999.99, 12345} {
		want := int(math.Ceil(area / business.OccupantLoadFactor))
		assert.Equal(t, want, CalculateOccupantLoad(area, business))
	}
}

func TestCalculateBuildingData(t *testing.T) {
	floors := []Floor{
		NewFloor(1, 20, 20, mercantile),
		NewFloor(2, 25, 25, mercantile),
		NewFloor(3, 10, 5, mercantile),
	}
	snapshot := append([]Floor(nil), floors...)

	d := CalculateBuildingData(mercantile, floors)

	var area float64
	var load int
	for _, f := range floors {
		area += f.Area
		load += f.OccupantLoad
	}
	assert.Equal(t, area, d.TotalArea)
	assert.Equal(t, load, d.TotalOccupantLoad)
	assert.Equal(t, 3, d.Stories())
	assert.Equal(t, 9.0, d.EstimatedHeight())

	// Idempotent and does not touch its input
	assert.Equal(t, d, CalculateBuildingData(mercantile, floors))
	assert.Equal(t, snapshot, floors)

	// The result does not alias the input slice
	d.Floors[0].Area = -1
	assert.Equal(t, snapshot, floors)
}

func TestCalculateBuildingDataEmpty(t *testing.T) {
	d := CalculateBuildingData(business, nil)
	assert.Zero(t, d.TotalArea)
	assert.Zero(t, d.TotalOccupantLoad)
	assert.Zero(t, d.Stories())
	assert.Zero(t, d.EstimatedHeight())
}

func TestRecalculateKeepsArea(t *testing.T) {
	floors := []Floor{NewFloor(1, 20, 20, business), NewFloor(2, 25, 25, business)}

	got := Recalculate(mercantile, floors)
	require.Len(t, got, 2)
	for i := range got {
		assert.Equal(t, floors[i].Area, got[i].Area)
		assert.Equal(t, CalculateOccupantLoad(floors[i].Area, mercantile), got[i].OccupantLoad)
	}
	// input untouched
	assert.Equal(t, 44, floors[0].OccupantLoad)
}

func TestHasFeature(t *testing.T) {
	d := CalculateBuildingData(business, nil, occupancy.Feature{ID: "elevator"})
	assert.True(t, d.HasFeature("elevator"))
	assert.False(t, d.HasFeature("basement"))
}
