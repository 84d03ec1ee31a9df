package nfpa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

func TestMinimumExits(t *testing.T) {
	tests := []struct {
		load int
		want int
	}{
		{0, 2},
		{1, 2},
		{500, 2},
		{501, 3},
		{1000, 3},
		{1001, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinimumExits(tt.load), "load %d", tt.load)
	}
}

func TestNextPumpCapacity(t *testing.T) {
	c, ok := NextPumpCapacity(480)
	assert.True(t, ok)
	assert.Equal(t, 500.0, c)

	c, ok = NextPumpCapacity(500)
	assert.True(t, ok)
	assert.Equal(t, 500.0, c)

	c, ok = NextPumpCapacity(9000)
	assert.False(t, ok)
	assert.Equal(t, 5000.0, c)
}

func TestCoverageTightensWithHazard(t *testing.T) {
	assert.Greater(t, ExtinguisherCoverage(occupancy.HazardLight), ExtinguisherCoverage(occupancy.HazardOrdinary))
	assert.Greater(t, ExtinguisherCoverage(occupancy.HazardOrdinary), ExtinguisherCoverage(occupancy.HazardHigh))
	assert.Equal(t, ExtinguisherCoverage(occupancy.HazardLight), ExtinguisherCoverage(""))

	assert.Less(t, Sprinkler(occupancy.HazardLight).Density, Sprinkler(occupancy.HazardHigh).Density)
}

func TestEstimatedHeight(t *testing.T) {
	assert.Equal(t, 0.0, EstimatedHeight(0))
	assert.Equal(t, 15.0, EstimatedHeight(5))
}
