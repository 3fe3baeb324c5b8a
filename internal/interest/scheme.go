package interest

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Method selects one of the four interest-billing conventions.
type Method string

const (
	// MethodMaximum bills any started month in full.
	MethodMaximum Method = "method1"
	// MethodMinimum bills completed months only, never fewer than one.
	MethodMinimum Method = "method2"
	// MethodMedium bills the nearest whole month, half rounding up.
	MethodMedium Method = "method3"
	// MethodDayBasis accrues per elapsed day at rate/30.
	MethodDayBasis Method = "method4"
)

var (
	ErrUnknownMethod = errors.New("unknown interest method")
	ErrInvalidRate   = errors.New("monthly rate must not be negative")
)

// Billing is the outcome of applying one scheme to a duration. Gross is
// deliberately left unrounded; totals round once, at the payable amount.
type Billing struct {
	Method       Method
	BilledMonths int // zero for the day-basis scheme
	BilledDays   int // zero for the month-quantized schemes
	Label        string
	Gross        decimal.Decimal
}

// Compute derives gross interest for one scheme. monthlyRatePct is the
// nominal monthly rate in percent (1.5 means 1.5% per month).
func Compute(m Method, principal, monthlyRatePct float64, d Duration) (Billing, error) {
	if monthlyRatePct < 0 {
		return Billing{}, ErrInvalidRate
	}
	p := decimal.NewFromFloat(principal)
	rate := decimal.NewFromFloat(monthlyRatePct).Div(decimal.NewFromInt(100))

	switch m {
	case MethodMaximum:
		// math.Ceil leaves an exactly-integral month count alone, so a
		// closure on a 30-day boundary does not bill an extra month.
		return monthBilling(m, p, rate, int(math.Ceil(d.Months))), nil
	case MethodMinimum:
		months := int(math.Floor(d.Months))
		if months < 1 {
			// business policy: even a same-day closure owes one month
			months = 1
		}
		return monthBilling(m, p, rate, months), nil
	case MethodMedium:
		// math.Round is half-away-from-zero, i.e. half-up for the
		// non-negative month counts seen here.
		return monthBilling(m, p, rate, int(math.Round(d.Months))), nil
	case MethodDayBasis:
		perDay := rate.Div(decimal.NewFromInt(DaysPerMonth))
		return Billing{
			Method:     m,
			BilledDays: d.Days,
			Label:      fmt.Sprintf("%d day(s)", d.Days),
			Gross:      p.Mul(perDay).Mul(decimal.NewFromInt(int64(d.Days))),
		}, nil
	default:
		return Billing{}, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
}

func monthBilling(m Method, p, rate decimal.Decimal, months int) Billing {
	return Billing{
		Method:       m,
		BilledMonths: months,
		Label:        fmt.Sprintf("%d month(s)", months),
		Gross:        p.Mul(rate).Mul(decimal.NewFromInt(int64(months))),
	}
}
