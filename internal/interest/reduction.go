package interest

import "github.com/shopspring/decimal"

// Reductions itemizes what was taken off gross interest. Net never goes
// below zero; whatever part of a reduction the gross could not absorb is
// reported in Shortfall rather than silently dropped.
type Reductions struct {
	Net        decimal.Decimal
	Upfront    decimal.Decimal // one month's interest collected at disbursement
	Additional decimal.Decimal // manually granted discount
	Shortfall  decimal.Decimal
}

// ApplyReductions nets out interest that was already collected up front
// (when interestTaken is set, one month at the rate in force at issuance)
// and then any manual reduction, clamping at zero after each step.
func ApplyReductions(gross decimal.Decimal, interestTaken bool, principal, ratePctAtIssue, manualReduction float64) Reductions {
	r := Reductions{Net: gross}

	if interestTaken {
		r.Upfront = decimal.NewFromFloat(principal).
			Mul(decimal.NewFromFloat(ratePctAtIssue)).
			Div(decimal.NewFromInt(100))
		r.Net, r.Shortfall = subtractFloored(r.Net, r.Upfront, r.Shortfall)
	}
	if manualReduction > 0 {
		r.Additional = decimal.NewFromFloat(manualReduction)
		r.Net, r.Shortfall = subtractFloored(r.Net, r.Additional, r.Shortfall)
	}
	return r
}

func subtractFloored(net, cut, shortfall decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	next := net.Sub(cut)
	if next.IsNegative() {
		return decimal.Zero, shortfall.Sub(next)
	}
	return next, shortfall
}
