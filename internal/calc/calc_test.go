package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

func TestFireFlow(t *testing.T) {
	f := NewFireFlow(20, 20, 1)
	r, err := f.Calculate()
	require.NoError(t, err)
	assert.InDelta(t, 4305.56, r.FloorAreaSqFt, 0.01)
	assert.InDelta(t, 1435.19, r.BaseGPM, 0.01)
	assert.Equal(t, r.BaseGPM, r.RequiredGPM)
	assert.Equal(t, 6, r.HoseStreams)

	f.Exposures = 2
	r, err = f.Calculate()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.ExposureShare, 1e-9)
	assert.InDelta(t, 2152.78, r.RequiredGPM, 0.01)
	assert.InDelta(t, 2152.78*3.78541, r.RequiredLPM, 0.1)
	assert.Equal(t, 9, r.HoseStreams)
}

func TestFireFlowCapsFloorsAndExposures(t *testing.T) {
	f := NewFireFlow(10, 10, 10)
	f.Exposures = 4
	r, err := f.Calculate()
	require.NoError(t, err)
	assert.Equal(t, 3, r.InvolvedFloors)
	assert.InDelta(t, 0.75, r.ExposureShare, 1e-9)
}

func TestFireFlowValidation(t *testing.T) {
	bad := []FireFlow{
		{Length: 0, Width: 10, Stories: 1, InvolvementPercent: 100},
		{Length: 10, Width: 10, Stories: 0, InvolvementPercent: 100},
		{Length: 10, Width: 10, Stories: 1, InvolvementPercent: 0},
		{Length: 10, Width: 10, Stories: 1, InvolvementPercent: 120},
		{Length: 10, Width: 10, Stories: 1, InvolvementPercent: 50, Exposures: 5},
	}
	for _, f := range bad {
		_, err := f.Calculate()
		assert.Error(t, err, "%+v", f)
	}
}

func TestInvolvementCurve(t *testing.T) {
	curve, err := NewFireFlow(20, 20, 1).InvolvementCurve()
	require.NoError(t, err)
	require.Len(t, curve, 10)
	for i := 1; i < len(curve); i++ {
		assert.Greater(t, curve[i], curve[i-1])
	}
	assert.InDelta(t, 1435.19, curve[9], 0.01)
}

func TestEgress(t *testing.T) {
	e := &Egress{OccupantLoad: 300, StairWidth: 2000, DoorWidth: 1500, ExitsProvided: 2}
	r, err := e.Calculate()
	require.NoError(t, err)
	assert.Equal(t, 2280.0, r.RequiredStairWidth)
	assert.Equal(t, 1500.0, r.RequiredDoorWidth)
	assert.Equal(t, 263, r.StairCapacity)
	assert.Equal(t, 300, r.DoorCapacity)
	assert.False(t, r.StairAdequate)
	assert.True(t, r.DoorAdequate)
	assert.True(t, r.ExitsAdequate)
}

func TestEgressMinimumWidths(t *testing.T) {
	r, err := (&Egress{OccupantLoad: 100}).Calculate()
	require.NoError(t, err)
	assert.Equal(t, 1120.0, r.RequiredStairWidth)
	assert.Equal(t, 810.0, r.RequiredDoorWidth)
	assert.False(t, r.ExitsAdequate)

	r, err = (&Egress{OccupantLoad: 1200, ExitsProvided: 3}).Calculate()
	require.NoError(t, err)
	assert.Equal(t, 4, r.RequiredExits)
	assert.False(t, r.ExitsAdequate)

	_, err = (&Egress{OccupantLoad: -1}).Calculate()
	assert.Error(t, err)
}

func TestFireLoad(t *testing.T) {
	f := &FireLoad{FloorArea: 100, Items: []Combustible{{Name: "wood", MassKg: 1000, CalorificValue: 18.6}}}
	r, err := f.Calculate()
	require.NoError(t, err)
	assert.InDelta(t, 18600, r.TotalEnergy, 1e-6)
	assert.InDelta(t, 186, r.Density, 1e-6)
	assert.InDelta(t, 10, r.WoodEquivalent, 1e-6)
	assert.Equal(t, occupancy.HazardLight, r.Classification)

	f.Items = append(f.Items, Combustible{Name: "gasoline", MassKg: 2000, CalorificValue: 43.7})
	r, err = f.Calculate()
	require.NoError(t, err)
	assert.InDelta(t, 1060, r.Density, 1e-6)
	assert.Equal(t, occupancy.HazardOrdinary, r.Classification)

	var share float64
	for _, it := range r.Items {
		share += it.Share
	}
	assert.InDelta(t, 1, share, 1e-9)
}

func TestClassifyFireLoad(t *testing.T) {
	assert.Equal(t, occupancy.HazardLight, ClassifyFireLoad(566.9))
	assert.Equal(t, occupancy.HazardOrdinary, ClassifyFireLoad(567))
	assert.Equal(t, occupancy.HazardHigh, ClassifyFireLoad(1135))
}

func TestFireLoadValidation(t *testing.T) {
	_, err := (&FireLoad{FloorArea: 0, Items: []Combustible{{Name: "wood", MassKg: 1, CalorificValue: 1}}}).Calculate()
	assert.Error(t, err)
	_, err = (&FireLoad{FloorArea: 10}).Calculate()
	assert.Error(t, err)
	_, err = (&FireLoad{FloorArea: 10, Items: []Combustible{{Name: "x", MassKg: 1}}}).Calculate()
	assert.Error(t, err)
}

func TestParseCombustible(t *testing.T) {
	c, err := ParseCombustible("Wood:250")
	require.NoError(t, err)
	assert.Equal(t, Combustible{Name: "Wood", MassKg: 250, CalorificValue: 18.6}, c)

	c, err = ParseCombustible("foam:40:28.5")
	require.NoError(t, err)
	assert.Equal(t, 28.5, c.CalorificValue)

	for _, bad := range []string{"wood", "unobtainium:5", ":5:10", "wood:abc", "wood:1:x", "a:1:2:3"} {
		_, err := ParseCombustible(bad)
		assert.Error(t, err, bad)
	}
}

func TestPump(t *testing.T) {
	p := &Pump{FlowGPM: 500, HeadFt: 300, Efficiency: 0.75}
	r, err := p.Calculate()
	require.NoError(t, err)
	assert.InDelta(t, 37.88, r.WaterHP, 0.01)
	assert.InDelta(t, 50.51, r.BrakeHP, 0.01)
	assert.InDelta(t, 37.66, r.KW, 0.01)
	assert.InDelta(t, 129.9, r.HeadPSI, 0.01)
	assert.Equal(t, 500.0, r.RatedCapacity)
	assert.True(t, r.WithinStandard)

	_, err = (&Pump{FlowGPM: 500, HeadFt: 300, Efficiency: 1.2}).Calculate()
	assert.Error(t, err)
	_, err = (&Pump{FlowGPM: 0, HeadFt: 300, Efficiency: 0.7}).Calculate()
	assert.Error(t, err)
}

func TestPumpFromMetric(t *testing.T) {
	p := PumpFromMetric(1892.705, 91.44, 0.7)
	assert.InDelta(t, 500, p.FlowGPM, 0.01)
	assert.InDelta(t, 300, p.HeadFt, 0.01)
}
