package requirement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gofsi/internal/reference"
)

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Catalog() {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true

		assert.NotEmpty(t, r.Name, r.ID)
		assert.NotEmpty(t, r.Description, r.ID)
		assert.NotEmpty(t, r.Occupancies, r.ID)

		_, err := reference.Default().ByCode(r.Code)
		assert.NoError(t, err, "%s cites %q", r.ID, r.Code)
	}
	for _, id := range []string{ExtinguisherID, AlarmID, SprinklerID, StandpipeID} {
		assert.True(t, seen[id], id)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].ID = "mutated"
	r, ok := Lookup(ExtinguisherID)
	require.True(t, ok)
	assert.Equal(t, ExtinguisherID, r.ID)

	_, ok = Lookup("no-such-requirement")
	assert.False(t, ok)
}

func TestCatalogCopiesThresholdsAndOccupancies(t *testing.T) {
	b := buildingOf(occ("business", 9.3), 0, 0, 0)
	before := ids(Determine(b))

	for _, r := range Catalog() {
		if r.Thresholds.OccupantLoad != nil {
			*r.Thresholds.OccupantLoad = 0
		}
		if r.Thresholds.Stories != nil {
			*r.Thresholds.Stories = 0
		}
		if r.Thresholds.FloorArea != nil {
			*r.Thresholds.FloorArea = 0
		}
		if r.Thresholds.BuildingHeight != nil {
			*r.Thresholds.BuildingHeight = 0
		}
		if len(r.Occupancies) > 0 {
			r.Occupancies[0] = "mutated"
		}
	}

	alarm, ok := Lookup(AlarmID)
	require.True(t, ok)
	*alarm.Thresholds.OccupantLoad = 0
	*alarm.Thresholds.FloorArea = 0

	assert.Equal(t, before, ids(Determine(b)))
	again, _ := Lookup(AlarmID)
	assert.Equal(t, 50, *again.Thresholds.OccupantLoad)
	assert.Equal(t, []string{AllOccupancies}, again.Occupancies)
}

func TestFirePumpRatedCapacity(t *testing.T) {
	pump, ok := Lookup("fire-pump")
	require.True(t, ok)

	small := buildingOf(occ("assembly-concentrated", 0.65), 6, 10, 10)
	assert.Contains(t, Expand(pump, small).Specifications, "Rated capacity 750 gpm")

	// 1385 persons on one floor needs four exits
	large := buildingOf(occ("assembly-concentrated", 0.65), 6, 30, 30)
	assert.Contains(t, Expand(pump, large).Specifications, "Rated capacity 1250 gpm")
}

func TestComputedTextIsPure(t *testing.T) {
	for _, b := range []struct {
		id      string
		factor  float64
		stories int
	}{
		{"mercantile", 2.8, 5},
		{"business", 9.3, 1},
		{"industrial-high-hazard", 9.3, 9},
		{"storage", 27.9, 0},
	} {
		data := buildingOf(occ(b.id, b.factor), b.stories, 25, 25)
		p := ParamsFor(data)
		for _, r := range Catalog() {
			for _, txt := range []Text{
				r.Specific.Quantity, r.Specific.Type, r.Specific.Specifications,
				r.Specific.Distribution, r.Specific.Installation, r.Specific.Maintenance,
			} {
				assert.Equal(t, txt.Render(p), txt.Render(p), r.ID)
			}
		}
	}
}

func TestExpandMatchesLazyRendering(t *testing.T) {
	b := buildingOf(occ("mercantile", 2.8), 5, 25, 25)
	r, ok := Lookup(SprinklerID)
	require.True(t, ok)

	e := Expand(r, b)
	p := ParamsFor(b)
	assert.Equal(t, r.Specific.Quantity.Render(p), e.Quantity)
	assert.Equal(t, r.Specific.Specifications.Render(p), e.Specifications)
	assert.Equal(t, "Approximately 260 sprinkler heads (max 12.1 m² per head)", e.Quantity)
	assert.Equal(t, "Wet pipe system, ordinary hazard design", e.Type)

	ext, ok := Lookup(ExtinguisherID)
	require.True(t, ok)
	assert.Contains(t, Expand(ext, b).Quantity, "15 extinguishers")
}

func TestExpandEmptyBuilding(t *testing.T) {
	b := buildingOf(occ("business", 9.3), 0, 0, 0)
	for _, e := range ExpandAll(Determine(b), b) {
		assert.NotEmpty(t, e.Name)
	}

	ext, _ := Lookup(ExtinguisherID)
	assert.Contains(t, Expand(ext, b).Quantity, "0 extinguishers")
}

func TestText(t *testing.T) {
	var absent Text
	assert.True(t, absent.IsZero())
	assert.Equal(t, "", absent.Render(Params{}))

	lit := Literal("fixed")
	assert.False(t, lit.IsZero())
	assert.False(t, lit.IsComputed())
	assert.Equal(t, "fixed", lit.Render(Params{Stories: 9}))

	comp := Computed(func(p Params) string { return string(rune('0' + p.Stories)) })
	assert.True(t, comp.IsComputed())
	assert.Equal(t, "3", comp.Render(Params{Stories: 3}))
}
