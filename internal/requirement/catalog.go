package requirement

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofsi/internal/nfpa"
	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// Requirement ids referenced from code
const (
	ExtinguisherID = "fire-extinguishers"
	AlarmID        = "fire-detection-alarm-system"
	SprinklerID    = "automatic-sprinkler-system"
	StandpipeID    = "standpipe-system"
)

// Display categories
const (
	CategorySuppression = "Fire Suppression"
	CategoryDetection   = "Detection and Alarm"
	CategoryEgress      = "Means of Egress"
	CategoryConstruct   = "Construction and Compartmentation"
	CategoryUtilities   = "Building Services"
	CategoryAdmin       = "Administrative"
)

// catalog is append-only reference data. Order only affects display.
var catalog = []FireSafetyRequirement{
	{
		ID:          ExtinguisherID,
		Name:        "Portable Fire Extinguishers",
		Description: "Portable fire extinguishers sized and distributed for the occupancy hazard on every floor.",
		Category:    CategorySuppression,
		Code:        "NFPA 10",
		Occupancies: []string{AllOccupancies},
		Specific: Specifics{
			Quantity: Computed(func(p Params) string {
				coverage := math.Min(2*nfpa.ExtinguisherCoverage(p.Occupancy.Hazard), nfpa.ExtinguisherMaxCoverage)
				total := 0
				for _, area := range floorAreas(p) {
					total += atLeastOne(area / coverage)
				}
				return fmt.Sprintf("%d extinguishers minimum (one per %.0f m² of floor area, at least one per floor)", total, coverage)
			}),
			Type: Computed(func(p Params) string {
				switch p.Occupancy.Hazard {
				case occupancy.HazardHigh:
					return "4-A:80-B:C multipurpose dry chemical; add Class K units at commercial cooking appliances"
				case occupancy.HazardOrdinary:
					return "4-A:40-B:C multipurpose dry chemical"
				default:
					return nfpa.ExtinguisherMinRating + " multipurpose dry chemical"
				}
			}),
			Distribution: Literal(fmt.Sprintf("Travel distance to an extinguisher not more than %.1f m from any point on the floor", nfpa.ExtinguisherTravelLight)),
			Installation: Literal("Top of extinguisher not more than 1.53 m above the floor (units up to 18.14 kg); bottom at least 102 mm above the floor; visible and unobstructed"),
			Maintenance:  Literal("Monthly visual inspection, annual maintenance by a certified technician, hydrostatic test at 5 or 12 years depending on agent"),
		},
	},
	{
		ID:          "means-of-egress",
		Name:        "Means of Egress",
		Description: "Continuous and unobstructed exit paths with sufficient capacity for the occupant load of each story.",
		Category:    CategoryEgress,
		Code:        "NFPA 101",
		Occupancies: []string{AllOccupancies},
		Specific: Specifics{
			Quantity: Computed(func(p Params) string {
				load := maxFloorLoad(p)
				return fmt.Sprintf("%d exits per story (largest story occupant load %d)", nfpa.MinimumExits(load), load)
			}),
			Specifications: Computed(func(p Params) string {
				load := maxFloorLoad(p)
				stair := math.Max(math.Ceil(float64(load)*nfpa.StairCapacityFactor), nfpa.MinStairWidth)
				door := math.Max(math.Ceil(float64(load)*nfpa.LevelCapacityFactor), nfpa.MinDoorWidth)
				return fmt.Sprintf("Aggregate stair width at least %.0f mm; aggregate door/corridor width at least %.0f mm", stair, door)
			}),
			Distribution: Literal("Exits remotely located, separated by at least one-half of the overall diagonal of the area served (one-third where sprinklered)"),
			Maintenance:  Literal("Keep exits free of obstructions and locks that require a key or special knowledge from the egress side"),
		},
	},
	{
		ID:          "exit-signs",
		Name:        "Exit Signs",
		Description: "Illuminated exit signs marking every exit and every change of direction along the egress path.",
		Category:    CategoryEgress,
		Code:        "NFPA 101",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{OccupantLoad: minInt(50)},
		Specific: Specifics{
			Quantity: Computed(func(p Params) string {
				perFloor := nfpa.MinimumExits(maxFloorLoad(p))
				return fmt.Sprintf("At least %d signs (%d exits on each of %d floors) plus directional signs", perFloor*max(p.Stories, 1), perFloor, max(p.Stories, 1))
			}),
			Specifications: Literal("Letters at least 152 mm high with 19 mm strokes; internally or externally illuminated; connected to emergency power"),
			Installation:   Literal("Visible from any direction of egress travel; no point in the access corridor more than 30 m from the nearest visible sign"),
		},
	},
	{
		ID:          "emergency-lighting",
		Name:        "Emergency Lighting",
		Description: "Battery or generator-backed illumination of the egress path on loss of normal power.",
		Category:    CategoryEgress,
		Code:        "NFPA 101",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{OccupantLoad: minInt(50)},
		Specific: Specifics{
			Specifications: Literal("Average 10.8 lux and minimum 1.1 lux at floor level along the egress path for 90 minutes"),
			Distribution:   Literal("Stairs, corridors, exit discharge and any room with an occupant load above 50"),
			Maintenance:    Literal("30-second functional test monthly, 90-minute full-duration test annually"),
		},
	},
	{
		ID:          AlarmID,
		Name:        "Fire Detection and Alarm System",
		Description: "Automatic smoke detection and manual fire alarm system with audible and visible notification.",
		Category:    CategoryDetection,
		Code:        "NFPA 72",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{OccupantLoad: minInt(50), FloorArea: minFloat(1000)},
		Specific: Specifics{
			Quantity: Computed(func(p Params) string {
				detectors := 0
				for _, area := range floorAreas(p) {
					detectors += atLeastOne(area / nfpa.SmokeDetectorCoverage)
				}
				stations := nfpa.MinimumExits(maxFloorLoad(p)) * max(p.Stories, 1)
				return fmt.Sprintf("About %d smoke detectors and %d manual pull stations", detectors, stations)
			}),
			Type: Computed(func(p Params) string {
				if p.Stories >= 4 || p.OccupantLoad >= 1000 {
					return "Addressable system with emergency voice/alarm communication"
				}
				return "Conventional or addressable system"
			}),
			Specifications: Literal(fmt.Sprintf("Smoke detectors at %.1f m nominal spacing; notification at least 15 dB above average ambient sound", nfpa.SmokeDetectorSpacing)),
			Distribution:   Literal(fmt.Sprintf("Manual pull stations within 1.5 m of each exit doorway, travel to a station not more than %.0f m", nfpa.PullStationTravel)),
			Maintenance:    Literal("Semi-annual visual inspection, annual functional test of all initiating devices"),
		},
	},
	{
		ID:          SprinklerID,
		Name:        "Automatic Sprinkler System",
		Description: "Complete automatic sprinkler protection designed for the occupancy hazard classification.",
		Category:    CategorySuppression,
		Code:        "NFPA 13",
		Occupancies: []string{AllOccupancies},
		Thresholds: Thresholds{
			OccupantLoad:   minInt(500),
			Stories:        minInt(5),
			FloorArea:      minFloat(2000),
			BuildingHeight: minFloat(15),
		},
		Specific: Specifics{
			Quantity: Computed(func(p Params) string {
				design := nfpa.Sprinkler(p.Occupancy.Hazard)
				heads := 0
				for _, area := range floorAreas(p) {
					heads += atLeastOne(area / design.HeadCoverage)
				}
				return fmt.Sprintf("Approximately %d sprinkler heads (max %.1f m² per head)", heads, design.HeadCoverage)
			}),
			Type: Computed(func(p Params) string {
				return fmt.Sprintf("Wet pipe system, %s hazard design", hazardName(p.Occupancy.Hazard))
			}),
			Specifications: Computed(func(p Params) string {
				design := nfpa.Sprinkler(p.Occupancy.Hazard)
				demand := design.Density*design.DesignArea + design.HoseAllow
				return fmt.Sprintf("Density %.1f mm/min over %.0f m²; water supply about %.0f L/min for %d minutes (%.0f m³)",
					design.Density, design.DesignArea, demand, design.Duration, demand*float64(design.Duration)/1000)
			}),
			Installation: Literal("Listed sprinklers installed by a licensed contractor; fire department connection accessible from the street"),
			Maintenance:  Literal("Quarterly inspection of valves and gauges, annual main drain test, five-year internal pipe inspection"),
		},
	},
	{
		ID:          StandpipeID,
		Name:        "Standpipe System",
		Description: "Wet standpipes with hose connections in each required exit stair.",
		Category:    CategorySuppression,
		Code:        "NFPA 14",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{Stories: minInt(4), BuildingHeight: minFloat(12)},
		Specific: Specifics{
			Quantity: Computed(func(p Params) string {
				risers := nfpa.MinimumExits(maxFloorLoad(p))
				return fmt.Sprintf("%d risers with %d hose connections in total", risers, risers*max(p.Stories, 1))
			}),
			Type: Computed(func(p Params) string {
				if p.BuildingHeight >= 23 {
					return "Class III (65 mm and 40 mm outlets)"
				}
				return "Class I (65 mm outlets)"
			}),
			Specifications: Literal(fmt.Sprintf("%.0f L/min for the first standpipe plus %.0f L/min for each additional; %.1f bar residual at the remote outlet",
				nfpa.StandpipeClassIFlowFirst, nfpa.StandpipeClassIFlowAdded, nfpa.StandpipeResidualBar)),
			Distribution: Literal("Hose connection at each intermediate landing of every required exit stair"),
		},
	},
	{
		ID:          "fire-pump",
		Name:        "Fire Pump",
		Description: "Listed fire pump where the water supply cannot deliver the standpipe and sprinkler demand at the top story.",
		Category:    CategorySuppression,
		Code:        "NFPA 20",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{Stories: minInt(6), BuildingHeight: minFloat(18)},
		Specific: Specifics{
			Specifications: Computed(func(p Params) string {
				risers := nfpa.MinimumExits(maxFloorLoad(p))
				gpm := 500 + 250*float64(risers-1)
				psi := 100 + p.BuildingHeight*nfpa.FtPerM*0.433
				rated, ok := nfpa.NextPumpCapacity(gpm)
				if !ok {
					return fmt.Sprintf("Demand of %.0f gpm exceeds the largest %.0f gpm rating; pumps in parallel at approximately %.0f psi net pressure", gpm, rated, psi)
				}
				return fmt.Sprintf("Rated capacity %.0f gpm (%.0f L/min) at approximately %.0f psi net pressure", rated, rated*nfpa.LitersPerGal, psi)
			}),
			Installation: Literal("Dedicated pump room with 2-hour separation, direct outside access, and a listed controller"),
			Maintenance:  Literal("Weekly churn test (diesel) or monthly (electric); annual flow test"),
		},
	},
	{
		ID:          "emergency-power",
		Name:        "Emergency and Standby Power",
		Description: "Emergency power supply for life safety loads: egress lighting, exit signs, alarm system and fire pump.",
		Category:    CategoryUtilities,
		Code:        "NFPA 110",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{Stories: minInt(5), BuildingHeight: minFloat(15)},
		Specific: Specifics{
			Type:           Literal("Level 1 emergency power supply system"),
			Specifications: Literal("Transfer within 10 seconds; fuel for at least 2 hours at full load"),
			Maintenance:    Literal("Monthly 30-minute load test, annual 2-hour load test"),
		},
	},
	{
		ID:          "fire-rated-stair-enclosure",
		Name:        "Enclosed Exit Stairs",
		Description: "Exit stairs enclosed in fire-resistance-rated construction with self-closing fire doors.",
		Category:    CategoryConstruct,
		Code:        "NFPA 101",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{Stories: minInt(4)},
		Specific: Specifics{
			Quantity:       Computed(func(p Params) string { return fmt.Sprintf("%d enclosed stairs", nfpa.MinimumExits(maxFloorLoad(p))) }),
			Specifications: Literal("2-hour fire-resistance-rated enclosure; 90-minute self-closing, positive-latching fire doors"),
			Maintenance:    Literal("Annual fire door inspection; doors never wedged open"),
		},
	},
	{
		ID:          "smoke-control",
		Name:        "Smoke Control System",
		Description: "Stair pressurization and smoke management for high-rise buildings.",
		Category:    CategoryUtilities,
		Code:        "NFPA 92",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{BuildingHeight: minFloat(23)},
		Specific: Specifics{
			Specifications: Literal("Stair pressure difference of 12.5 Pa minimum (sprinklered) with door opening force not more than 133 N"),
			Maintenance:    Literal("Semi-annual test of dedicated systems, annual test of non-dedicated systems"),
		},
	},
	{
		ID:          "fire-command-center",
		Name:        "Fire Command Center",
		Description: "Room housing the fire alarm panel, voice communication, and building system status for fire service use.",
		Category:    CategoryDetection,
		Code:        "NFPA 72",
		Occupancies: []string{AllOccupancies},
		Thresholds:  Thresholds{BuildingHeight: minFloat(23)},
		Specific: Specifics{
			Installation: Literal("At the fire service access level, 1-hour separation, at least 9.3 m²"),
		},
	},
	{
		ID:          "voice-evacuation",
		Name:        "Emergency Voice/Alarm Communication",
		Description: "Voice evacuation messaging in occupancies where occupants are unfamiliar with the building or need assistance.",
		Category:    CategoryDetection,
		Code:        "NFPA 72",
		Occupancies: []string{"assembly-concentrated", "assembly-less-concentrated", "educational", "health-care", "residential-hotel"},
		Thresholds:  Thresholds{OccupantLoad: minInt(300)},
		Specific: Specifics{
			Specifications: Literal("Intelligible voice messages in every notification zone; prerecorded and live messaging"),
		},
	},
	{
		ID:          "kitchen-hood-suppression",
		Name:        "Commercial Kitchen Hood Suppression",
		Description: "Pre-engineered wet chemical suppression over grease-producing cooking appliances.",
		Category:    CategorySuppression,
		Code:        "NFPA 96",
		Occupancies: []string{"assembly-less-concentrated", "mercantile", "residential-hotel", "health-care"},
		Specific: Specifics{
			Type:        Literal("Listed wet chemical system with automatic fuel shut-off"),
			Maintenance: Literal("Semi-annual inspection; hood and duct cleaning frequency per cooking volume"),
		},
	},
	{
		ID:          "fire-safety-maintenance-report",
		Name:        "Fire Safety Maintenance Report",
		Description: "Annual report on the condition of fire protection features, submitted with the FSIC renewal.",
		Category:    CategoryAdmin,
		Code:        "RA 9514",
		Occupancies: []string{AllOccupancies},
		Specific: Specifics{
			Maintenance: Literal("Prepared annually by the owner or a fire safety practitioner and kept available for inspection"),
		},
	},
}

// Catalog returns a copy of the catalog in display order
func Catalog() []FireSafetyRequirement {
	out := make([]FireSafetyRequirement, len(catalog))
	for i, r := range catalog {
		out[i] = r.clone()
	}
	return out
}

// Lookup finds a catalog entry by id
func Lookup(id string) (FireSafetyRequirement, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r.clone(), true
		}
	}
	return FireSafetyRequirement{}, false
}

// floorAreas returns per-floor areas, falling back to the building total
func floorAreas(p Params) []float64 {
	if len(p.Floors) == 0 {
		if p.FloorArea > 0 {
			return []float64{p.FloorArea}
		}
		return nil
	}
	areas := make([]float64, len(p.Floors))
	for i, f := range p.Floors {
		areas[i] = f.Area
	}
	return areas
}

// maxFloorLoad is the occupant load of the most heavily loaded floor
func maxFloorLoad(p Params) int {
	if len(p.Floors) == 0 {
		return p.OccupantLoad
	}
	m := 0
	for _, f := range p.Floors {
		m = max(m, f.OccupantLoad)
	}
	return m
}

func atLeastOne(x float64) int {
	return max(int(math.Ceil(x)), 1)
}

func hazardName(h occupancy.Hazard) string {
	if h == "" {
		return string(occupancy.HazardLight)
	}
	return string(h)
}
