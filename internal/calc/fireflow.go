package calc

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofsi/internal/nfpa"
)

// FireFlow holds the inputs of the National Fire Academy needed fire flow formula
type FireFlow struct {
	// Fire area (m)
	Length float64
	Width  float64

	Stories int

	// Percent of the floor area involved, 0 < p <= 100
	InvolvementPercent float64

	// Number of exposed sides, 0..4
	Exposures int
}

// NewFireFlow creates a fire flow calculation assuming full involvement
func NewFireFlow(length, width float64, stories int) *FireFlow {
	return &FireFlow{
		Length:             length,
		Width:              width,
		Stories:            stories,
		InvolvementPercent: 100,
	}
}

// FireFlowResult holds the needed fire flow
type FireFlowResult struct {
	FloorAreaSqM   float64
	FloorAreaSqFt  float64
	InvolvedFloors int

	BaseGPM       float64 // area / 3 × floors × involvement
	ExposureShare float64 // fraction added for exposures
	ExposureGPM   float64
	RequiredGPM   float64
	RequiredLPM   float64

	HoseStreams int // 250 gpm handlines needed to deliver the flow
}

// Calculate computes the needed fire flow
func (f *FireFlow) Calculate() (*FireFlowResult, error) {
	if f.Length <= 0 || f.Width <= 0 {
		return nil, fmt.Errorf("invalid fire area dimensions: length=%.2f, width=%.2f", f.Length, f.Width)
	}
	if f.Stories < 1 {
		return nil, fmt.Errorf("stories must be at least 1, got %d", f.Stories)
	}
	if f.InvolvementPercent <= 0 || f.InvolvementPercent > 100 {
		return nil, fmt.Errorf("involvement must be in (0, 100] percent, got %.1f", f.InvolvementPercent)
	}
	if f.Exposures < 0 || f.Exposures > 4 {
		return nil, fmt.Errorf("exposures must be between 0 and 4, got %d", f.Exposures)
	}

	result := &FireFlowResult{}
	result.FloorAreaSqM = f.Length * f.Width
	result.FloorAreaSqFt = result.FloorAreaSqM * nfpa.SqFtPerSqM
	result.InvolvedFloors = min(f.Stories, nfpa.FireFlowMaxFloors)

	// NFF = (A / 3) × floors × involvement
	result.BaseGPM = result.FloorAreaSqFt / nfpa.FireFlowDivisor *
		float64(result.InvolvedFloors) * f.InvolvementPercent / 100

	result.ExposureShare = math.Min(float64(f.Exposures)*nfpa.FireFlowExposureShare, nfpa.FireFlowExposureCap)
	result.ExposureGPM = result.BaseGPM * result.ExposureShare

	result.RequiredGPM = result.BaseGPM + result.ExposureGPM
	result.RequiredLPM = result.RequiredGPM * nfpa.LitersPerGal
	result.HoseStreams = int(math.Ceil(result.RequiredGPM / nfpa.HoseStreamGPM))

	return result, nil
}

// InvolvementCurve returns the required flow (gpm) at 10 %, 20 % ... 100 % involvement
func (f *FireFlow) InvolvementCurve() ([]float64, error) {
	curve := make([]float64, 0, 10)
	for pct := 10; pct <= 100; pct += 10 {
		step := *f
		step.InvolvementPercent = float64(pct)
		r, err := step.Calculate()
		if err != nil {
			return nil, err
		}
		curve = append(curve, r.RequiredGPM)
	}
	return curve, nil
}
