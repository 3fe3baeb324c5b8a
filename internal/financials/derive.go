// Package financials derives the live figures shown while a pledge is
// being created or edited: processing fee, estimated valuation and the
// amount actually handed over. Derive is pure; callers re-run it after
// every input change instead of keeping incremental state.
package financials

import "math"

// JewelInput is the weight data of one jewel line item.
type JewelInput struct {
	Weight      float64
	StoneWeight float64
}

// Inputs is everything the derivation depends on. Missing or zero values
// are normal while the operator is still typing; they produce zero
// figures, never errors.
type Inputs struct {
	Amount               float64
	Jewels               []JewelInput
	IncludeProcessingFee bool
	InterestTaken        bool

	MonthlyRatePct float64 // from the selected interest tier
	EstimationPct  float64 // from the selected interest tier

	FeePct float64 // from the jewel type
	FeeCap float64 // from the jewel type; zero means no cap

	MetalRatePerGram float64 // today's rate for the first jewel's metal
}

// Figures are the derived amounts for display and for snapshotting onto
// the loan at submission.
type Figures struct {
	ProcessingFee   float64
	EstimatedAmount float64
	Disbursable     float64
	TotalNetWeight  float64
}

// NetWeight is the billable weight of a jewel: gross minus stone,
// floored at zero when the stone weight exceeds the gross.
func NetWeight(weight, stoneWeight float64) float64 {
	if n := weight - stoneWeight; n > 0 {
		return n
	}
	return 0
}

// Derive recomputes all figures from scratch.
func Derive(in Inputs) Figures {
	var f Figures

	for _, j := range in.Jewels {
		f.TotalNetWeight += NetWeight(j.Weight, j.StoneWeight)
	}

	if in.IncludeProcessingFee && in.Amount > 0 && in.FeePct > 0 {
		fee := in.Amount * in.FeePct / 100
		if in.FeeCap > 0 && fee > in.FeeCap {
			fee = in.FeeCap
		}
		f.ProcessingFee = math.Round(fee)
	}

	if f.TotalNetWeight > 0 && in.MetalRatePerGram > 0 && in.EstimationPct > 0 {
		f.EstimatedAmount = f.TotalNetWeight * in.MetalRatePerGram * in.EstimationPct / 100
	}

	disbursable := in.Amount - f.ProcessingFee
	if in.InterestTaken {
		disbursable -= in.Amount * in.MonthlyRatePct / 100
	}
	if disbursable < 0 {
		disbursable = 0
	}
	f.Disbursable = disbursable

	return f
}
