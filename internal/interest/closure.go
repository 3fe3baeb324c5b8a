package interest

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteInput carries everything a closure quote depends on. All fields
// come from the loan record except Method, AsOfDate and ManualReduction,
// which the caller chooses per request.
type QuoteInput struct {
	Method          Method
	Principal       float64
	MonthlyRatePct  float64
	StartDate       time.Time
	AsOfDate        time.Time
	ValidityMonths  int
	InterestTaken   bool
	ManualReduction float64
}

// Quote is a complete closure offer: billed duration, itemized
// reductions and the payable total. Identical inputs always produce an
// identical quote, so the HTTP layer can preview before committing.
type Quote struct {
	Method              Method    `json:"method"`
	BilledLabel         string    `json:"billed_duration"`
	RateDescription     string    `json:"rate"`
	ElapsedDays         int       `json:"elapsed_days"`
	ValidUntil          time.Time `json:"valid_until"`
	TotalInterest       float64   `json:"total_interest"`
	InterestReduction   float64   `json:"interest_reduction"`
	AdditionalReduction float64   `json:"additional_reduction"`
	ReductionShortfall  float64   `json:"reduction_shortfall"`
	TotalPayable        float64   `json:"total_payable"`
}

// QuoteClosure composes duration, scheme and reduction logic into one
// payable figure. The only rounding step is the final total, to the
// nearest whole currency unit.
func QuoteClosure(in QuoteInput) (Quote, error) {
	d, err := Elapsed(in.StartDate, in.AsOfDate)
	if err != nil {
		return Quote{}, err
	}
	b, err := Compute(in.Method, in.Principal, in.MonthlyRatePct, d)
	if err != nil {
		return Quote{}, err
	}
	r := ApplyReductions(b.Gross, in.InterestTaken, in.Principal, in.MonthlyRatePct, in.ManualReduction)

	payable := decimal.NewFromFloat(in.Principal).Add(r.Net).Round(0)

	return Quote{
		Method:              in.Method,
		BilledLabel:         b.Label,
		RateDescription:     fmt.Sprintf("%.2f%% per month", in.MonthlyRatePct),
		ElapsedDays:         d.Days,
		ValidUntil:          ValidUntil(in.StartDate, in.ValidityMonths),
		TotalInterest:       r.Net.InexactFloat64(),
		InterestReduction:   r.Upfront.InexactFloat64(),
		AdditionalReduction: r.Additional.InexactFloat64(),
		ReductionShortfall:  r.Shortfall.InexactFloat64(),
		TotalPayable:        payable.InexactFloat64(),
	}, nil
}
