package finance

import "math"

// Annotation marks a notable year in the retirement simulation.
type Annotation string

const (
	AnnotationNone          Annotation = ""
	AnnotationRetiredHere   Annotation = "retired_here"
	AnnotationFundsDepleted Annotation = "funds_depleted"
)

// Number of years the simulation keeps running past life expectancy, so the
// table shows whether the corpus would have outlived its owner.
const yearsPastLifeExpectancy = 20

// RetirementInputs drive a corpus simulation. The increase, return and
// inflation fields are annual fractions (0.06 for 6%), matching how the
// calculator has always taken them. CapitalGainTax is accepted for forward
// compatibility but does not affect the projection.
type RetirementInputs struct {
	CurrentAge                   int     `json:"current_age"`
	RetirementAge                int     `json:"retirement_age"`
	LifeExpectancy               int     `json:"life_expectancy"`
	CurrentSavings               float64 `json:"current_savings"`
	MonthlySaving                float64 `json:"monthly_saving"`
	AnnualSavingsIncrease        float64 `json:"annual_savings_increase"`
	AnnualReturn                 float64 `json:"annual_return"`
	CapitalGainTax               float64 `json:"capital_gain_tax"`
	PreRetirementMonthlyExpenses float64 `json:"pre_retirement_monthly_expenses"`
	HouseholdInflation           float64 `json:"household_inflation"`
}

// RetirementYearRow is one simulated year. Rows are emitted in ascending
// age order and each row's CorpusAtStart equals the previous row's
// end-of-year corpus.
type RetirementYearRow struct {
	Age                int        `json:"age"`
	CorpusAtStart      float64    `json:"corpus_at_start"`
	IncrementalSavings float64    `json:"incremental_savings"`
	ReturnEarned       float64    `json:"return_earned"`
	Withdrawals        float64    `json:"withdrawals"`
	WithdrawalRate     float64    `json:"withdrawal_rate"`
	IsAlive            bool       `json:"is_alive"`
	Annotation         Annotation `json:"annotation,omitempty"`
}

// PostRetirementMonthlyExpenses inflates today's monthly expenses to the
// retirement date: FV = PV * (1 + inflation)^yearsToRetire. It is computed
// once, before the simulation loop, from years-to-retirement.
func PostRetirementMonthlyExpenses(in RetirementInputs) float64 {
	yearsToRetire := in.RetirementAge - in.CurrentAge
	return in.PreRetirementMonthlyExpenses * math.Pow(1+in.HouseholdInflation, float64(yearsToRetire))
}

// SimulateRetirement runs the year-by-year corpus projection from the
// current age until twenty years past life expectancy, or until the corpus
// goes negative after retirement, whichever comes first. It is a pure
// function of its inputs and is simply re-run whenever they change.
//
// While accumulating, the annual saving starts at twelve monthly savings
// and steps up by the savings-increase fraction after each completed year.
// From the retirement age on, savings stop and withdrawals begin at twelve
// inflation-adjusted monthly expenses, themselves growing with inflation
// every subsequent year.
//
// Degenerate inputs (retirement age at or below the current age, life
// expectancy already passed) are not rejected; they simply produce an
// immediately-retired or trivial simulation.
func SimulateRetirement(in RetirementInputs) []RetirementYearRow {
	postRetirementExpenses := PostRetirementMonthlyExpenses(in)

	rows := []RetirementYearRow{}
	corpusAtStart := in.CurrentSavings
	annualSaving := in.MonthlySaving * 12

	for age := in.CurrentAge; age <= in.LifeExpectancy+yearsPastLifeExpectancy; age++ {
		retired := age >= in.RetirementAge
		returnEarned := corpusAtStart * in.AnnualReturn

		var withdrawals float64
		if retired {
			if age == in.RetirementAge || len(rows) == 0 {
				// first simulated retired year; when retirement is already in
				// the past, compound the expenses forward to the current age
				withdrawals = postRetirementExpenses * 12 * math.Pow(1+in.HouseholdInflation, float64(age-in.RetirementAge))
			} else {
				withdrawals = rows[len(rows)-1].Withdrawals * (1 + in.HouseholdInflation)
			}
		}

		var incrementalSavings float64
		if !retired {
			incrementalSavings = annualSaving
		}

		var withdrawalRate float64
		if retired && corpusAtStart > 0 {
			withdrawalRate = withdrawals / corpusAtStart
		}

		var annotation Annotation
		if age == in.RetirementAge {
			annotation = AnnotationRetiredHere
		}

		rows = append(rows, RetirementYearRow{
			Age:                age,
			CorpusAtStart:      corpusAtStart,
			IncrementalSavings: incrementalSavings,
			ReturnEarned:       returnEarned,
			Withdrawals:        withdrawals,
			WithdrawalRate:     withdrawalRate,
			IsAlive:            age <= in.LifeExpectancy,
			Annotation:         annotation,
		})

		corpusAtStart = corpusAtStart + incrementalSavings + returnEarned - withdrawals

		if !retired {
			annualSaving *= 1 + in.AnnualSavingsIncrease
		}

		// the only early exit: funds ran out while retired
		if corpusAtStart < 0 && retired {
			rows[len(rows)-1].Annotation = AnnotationFundsDepleted
			break
		}
	}
	return rows
}
