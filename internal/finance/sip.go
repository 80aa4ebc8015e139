package finance

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when a calculator receives a missing, zero or
// non-numeric required field. No partial result accompanies it; the caller
// prompts for re-entry.
var ErrInvalidInput = errors.New("all calculator fields must be valid positive numbers")

// SipInputs are the parameters for a plain SIP projection.
type SipInputs struct {
	MonthlyInvestment   float64 `json:"monthly_investment"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
	DurationYears       int     `json:"duration_years"`
}

// StepUpSipInputs are the parameters for a SIP whose contribution steps up
// by a fixed percentage every year.
type StepUpSipInputs struct {
	InitialMonthlySip   float64 `json:"initial_monthly_sip"`
	AnnualStepUpPercent float64 `json:"annual_step_up_percent"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
	DurationYears       int     `json:"duration_years"`
}

// SipResult holds a projection outcome, rounded to two decimal places.
type SipResult struct {
	FutureValue    decimal.Decimal `json:"future_value"`
	TotalInvested  decimal.Decimal `json:"total_invested"`
	InterestEarned decimal.Decimal `json:"interest_earned"`
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && v > 0
}

// ComputeSip projects the future value of a fixed monthly contribution P at
// monthly rate r over n months using the annuity-due closed form
// FV = P * ((1+r)^n - 1) * (1+r) / r.
func ComputeSip(in SipInputs) (SipResult, error) {
	if !isPositive(in.MonthlyInvestment) || !isPositive(in.AnnualReturnPercent) || in.DurationYears <= 0 {
		return SipResult{}, ErrInvalidInput
	}
	p := in.MonthlyInvestment
	r := in.AnnualReturnPercent / 100 / 12
	n := float64(in.DurationYears * 12)

	futureValue := p * ((math.Pow(1+r, n) - 1) * (1 + r)) / r
	totalInvested := p * n

	return SipResult{
		FutureValue:    round2(futureValue),
		TotalInvested:  round2(totalInvested),
		InterestEarned: round2(futureValue - totalInvested),
	}, nil
}

// ComputeStepUpSip projects a SIP whose contribution increases by the given
// percentage after every completed year. Because the contribution changes
// annually there is no closed form; each month's contribution is compounded
// individually to the investment horizon. With a zero step-up this agrees
// with ComputeSip up to rounding.
func ComputeStepUpSip(in StepUpSipInputs) (SipResult, error) {
	if !isPositive(in.InitialMonthlySip) || !isPositive(in.AnnualReturnPercent) || in.DurationYears <= 0 {
		return SipResult{}, ErrInvalidInput
	}
	if math.IsNaN(in.AnnualStepUpPercent) || in.AnnualStepUpPercent < 0 {
		return SipResult{}, ErrInvalidInput
	}

	r := in.AnnualReturnPercent / 100 / 12
	years := in.DurationYears

	var futureValue, totalInvested float64
	currentSip := in.InitialMonthlySip
	for year := 0; year < years; year++ {
		for month := 0; month < 12; month++ {
			remainingMonths := (years-year)*12 - month
			futureValue += currentSip * math.Pow(1+r, float64(remainingMonths))
			totalInvested += currentSip
		}
		// step up the contribution for the next year
		currentSip *= 1 + in.AnnualStepUpPercent/100
	}

	return SipResult{
		FutureValue:    round2(futureValue),
		TotalInvested:  round2(totalInvested),
		InterestEarned: round2(futureValue - totalInvested),
	}, nil
}
