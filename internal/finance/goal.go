package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// GoalFutureValue inflates a present-value target to its projected cost
// after the given number of years:
//
//	fv = pv * (1 + inflationPercent/100)^years
//
// The result is rounded to 2 decimal places. Zero years returns the
// present value unchanged; a negative present value is rejected.
func GoalFutureValue(presentValue decimal.Decimal, inflationPercent float64, years int) (decimal.Decimal, error) {
	if presentValue.IsNegative() || years < 0 || inflationPercent < 0 || math.IsNaN(inflationPercent) {
		return decimal.Zero, ErrInvalidInput
	}
	pv, _ := presentValue.Float64()
	fv := pv * math.Pow(1+inflationPercent/100, float64(years))
	return decimal.NewFromFloat(fv).Round(2), nil
}
