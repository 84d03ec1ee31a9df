package nfpa

import "github.com/alexiusacademia/gofsi/internal/occupancy"

// Unit conversions and fixed assumptions

const (
	SqFtPerSqM     = 10.7639
	FtPerM         = 3.28084
	LitersPerGal   = 3.78541
	MetersPerStory = 3.0 // estimated height per floor, not entered by the user
)

// Portable extinguishers (NFPA 10 Table 6.2.1.1)
const (
	ExtinguisherMaxCoverage = 1045.0 // m² (11,250 ft²) per extinguisher
	ExtinguisherTravelLight = 22.9   // m (75 ft) maximum travel distance, Class A
	ExtinguisherMinRating   = "2-A:10-B:C"
)

// Egress capacity factors (NFPA 101 Section 7.3.3.1)
const (
	StairCapacityFactor = 7.6 // mm per person
	LevelCapacityFactor = 5.0 // mm per person, doors/ramps/corridors
	MinStairWidth       = 1120.0
	MinDoorWidth        = 810.0
)

// Detection (NFPA 72)
const (
	SmokeDetectorSpacing  = 9.1  // m nominal spacing
	SmokeDetectorCoverage = 83.6 // m², 9.1 m × 9.1 m
	PullStationTravel     = 61.0 // m maximum travel to a manual station
)

// Standpipe (NFPA 14)
const (
	StandpipeClassIFlowFirst = 1893.0 // L/min (500 gpm) for the first standpipe
	StandpipeClassIFlowAdded = 946.0  // L/min (250 gpm) each additional, up to the cap
	StandpipeResidualBar     = 6.9    // bar (100 psi) at the hydraulically remote outlet
)

// Fire flow, NFA method
const (
	FireFlowDivisor       = 3.0  // ft² per gpm
	FireFlowMaxFloors     = 3    // floors counted above the fire floor, inclusive
	FireFlowExposureShare = 0.25 // added per exposed side
	FireFlowExposureCap   = 0.75
	HoseStreamGPM         = 250.0
)

// Fire load
const (
	WoodCalorificValue   = 18.6 // MJ/kg
	FireLoadLightMax     = 567.0
	FireLoadOrdinaryMax  = 1135.0
	PumpHorsepowerFactor = 3960.0 // gpm·ft per water horsepower
	KWPerHP              = 0.7457
)

// StandardPumpCapacities are the NFPA 20 rated pump capacities (gpm)
var StandardPumpCapacities = []float64{
	25, 50, 100, 150, 200, 250, 300, 400, 450, 500, 750, 1000, 1250,
	1500, 2000, 2500, 3000, 3500, 4000, 4500, 5000,
}

// ExtinguisherCoverage returns the floor area per A-unit of extinguisher rating
// NFPA 10 Table 6.2.1.1
func ExtinguisherCoverage(h occupancy.Hazard) float64 {
	switch h {
	case occupancy.HazardHigh:
		return 93.0 // 1000 ft²
	case occupancy.HazardOrdinary:
		return 139.0 // 1500 ft²
	default:
		return 279.0 // 3000 ft²
	}
}

// SprinklerDesign holds the density/area design basis of NFPA 13 Figure 19.3.3.1.1
type SprinklerDesign struct {
	Density      float64 // mm/min
	DesignArea   float64 // m²
	HeadCoverage float64 // m² maximum per sprinkler
	HoseAllow    float64 // L/min inside + outside hose allowance
	Duration     int     // minutes
}

// Sprinkler returns the design basis for the hazard classification
func Sprinkler(h occupancy.Hazard) SprinklerDesign {
	switch h {
	case occupancy.HazardHigh:
		return SprinklerDesign{Density: 12.2, DesignArea: 232, HeadCoverage: 9.3, HoseAllow: 1893, Duration: 90}
	case occupancy.HazardOrdinary:
		return SprinklerDesign{Density: 6.1, DesignArea: 139, HeadCoverage: 12.1, HoseAllow: 946, Duration: 60}
	default:
		return SprinklerDesign{Density: 4.1, DesignArea: 139, HeadCoverage: 20.9, HoseAllow: 379, Duration: 30}
	}
}

// MinimumExits returns the minimum number of exits per story
// NFPA 101 Section 7.4.1.2
func MinimumExits(occupantLoad int) int {
	switch {
	case occupantLoad > 1000:
		return 4
	case occupantLoad > 500:
		return 3
	default:
		return 2
	}
}

// NextPumpCapacity returns the smallest standard rated capacity ≥ gpm.
// Flows beyond the table return the largest rating and false.
func NextPumpCapacity(gpm float64) (float64, bool) {
	for _, c := range StandardPumpCapacities {
		if c >= gpm {
			return c, true
		}
	}
	return StandardPumpCapacities[len(StandardPumpCapacities)-1], false
}

// EstimatedHeight returns the building height assumed for a number of stories
func EstimatedHeight(stories int) float64 {
	return float64(stories) * MetersPerStory
}
