package calc

import (
	"fmt"

	"github.com/alexiusacademia/gofsi/internal/nfpa"
)

// Pump holds the duty point of a fire pump
type Pump struct {
	FlowGPM    float64
	HeadFt     float64
	Efficiency float64 // 0 < η <= 1
}

// PumpFromMetric converts a duty point given in L/min and meters of head
func PumpFromMetric(flowLPM, headM, efficiency float64) *Pump {
	return &Pump{
		FlowGPM:    flowLPM / nfpa.LitersPerGal,
		HeadFt:     headM * nfpa.FtPerM,
		Efficiency: efficiency,
	}
}

// PumpResult holds the power requirement
type PumpResult struct {
	WaterHP float64
	BrakeHP float64
	KW      float64 // driver power
	HeadPSI float64

	RatedCapacity  float64 // next NFPA 20 standard rating (gpm)
	WithinStandard bool    // false when the flow exceeds the largest rating
}

// Calculate computes water and brake horsepower: WHP = Q·H / 3960
func (p *Pump) Calculate() (*PumpResult, error) {
	if p.FlowGPM <= 0 || p.HeadFt <= 0 {
		return nil, fmt.Errorf("invalid duty point: flow=%.2f gpm, head=%.2f ft", p.FlowGPM, p.HeadFt)
	}
	if p.Efficiency <= 0 || p.Efficiency > 1 {
		return nil, fmt.Errorf("efficiency must be in (0, 1], got %.2f", p.Efficiency)
	}

	result := &PumpResult{}
	result.WaterHP = p.FlowGPM * p.HeadFt / nfpa.PumpHorsepowerFactor
	result.BrakeHP = result.WaterHP / p.Efficiency
	result.KW = result.BrakeHP * nfpa.KWPerHP
	result.HeadPSI = p.HeadFt * 0.433
	result.RatedCapacity, result.WithinStandard = nfpa.NextPumpCapacity(p.FlowGPM)

	return result, nil
}
