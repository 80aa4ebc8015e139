package finance

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// HealthMetrics are the four ratios the scorer bands. A NaN value marks a
// ratio whose denominator was zero; the scorer surfaces it as the NA
// sentinel rather than defaulting it into a numeric band.
type HealthMetrics struct {
	SavingsRatePercent     float64 `json:"savings_rate_percent"`
	DebtToIncomePercent    float64 `json:"debt_to_income_percent"`
	NetWorthToAnnualIncome float64 `json:"net_worth_to_annual_income"`
	EmergencyFundMonths    float64 `json:"emergency_fund_months"`
}

type healthMetricsJSON struct {
	SavingsRatePercent     *float64 `json:"savings_rate_percent"`
	DebtToIncomePercent    *float64 `json:"debt_to_income_percent"`
	NetWorthToAnnualIncome *float64 `json:"net_worth_to_annual_income"`
	EmergencyFundMonths    *float64 `json:"emergency_fund_months"`
}

// MarshalJSON renders an undefined (NaN) ratio as null, since NaN has no
// JSON representation.
func (m HealthMetrics) MarshalJSON() ([]byte, error) {
	opt := func(v float64) *float64 {
		if math.IsNaN(v) {
			return nil
		}
		return &v
	}
	return json.Marshal(healthMetricsJSON{
		SavingsRatePercent:     opt(m.SavingsRatePercent),
		DebtToIncomePercent:    opt(m.DebtToIncomePercent),
		NetWorthToAnnualIncome: opt(m.NetWorthToAnnualIncome),
		EmergencyFundMonths:    opt(m.EmergencyFundMonths),
	})
}

// UnmarshalJSON restores null ratios to the NaN sentinel.
func (m *HealthMetrics) UnmarshalJSON(data []byte) error {
	var aux healthMetricsJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	val := func(p *float64) float64 {
		if p == nil {
			return math.NaN()
		}
		return *p
	}
	m.SavingsRatePercent = val(aux.SavingsRatePercent)
	m.DebtToIncomePercent = val(aux.DebtToIncomePercent)
	m.NetWorthToAnnualIncome = val(aux.NetWorthToAnnualIncome)
	m.EmergencyFundMonths = val(aux.EmergencyFundMonths)
	return nil
}

// MetricScore is one banded sub-score. Score is 1-4, or 0 with NA set when
// the underlying ratio was undefined.
type MetricScore struct {
	Score  int    `json:"score"`
	NA     bool   `json:"na,omitempty"`
	Label  string `json:"label"`
	Remark string `json:"remark"`
}

// HealthScore is the full scoring table: four banded metrics plus the
// composite. Overall is the sum of the non-NA sub-scores (0-16).
type HealthScore struct {
	SavingsRate   MetricScore `json:"savings_rate"`
	DebtToIncome  MetricScore `json:"debt_to_income"`
	NetWorth      MetricScore `json:"net_worth"`
	EmergencyFund MetricScore `json:"emergency_fund"`
	Overall       int         `json:"overall_score"`
	OverallLabel  string      `json:"overall_label"`
	OverallRemark string      `json:"overall_remark"`
}

const naLabel = "ERROR"

func scoreLabel(score int) string {
	switch score {
	case 4:
		return "Excellent!"
	case 3:
		return "Good"
	case 2:
		return "Fair"
	default:
		return "Poor"
	}
}

// Remark copy per metric, indexed score-1.
var (
	savingsRateRemarks = [4]string{
		"Increase savings rate. Aim to reduce unnecessary expenses.",
		"Consider automating savings to consistently increase the rate.",
		"You are on the right track. Keep building on your current savings habits.",
		"Excellent savings discipline! Maintain and look for growth opportunities.",
	}
	debtToIncomeRemarks = [4]string{
		"Work on reducing debt. Consider debt consolidation or refinancing.",
		"Monitor debt levels closely. Aim to pay off high-interest debt first.",
		"Good balance. Keep debt low while focusing on other financial goals.",
		"Excellent control of debt. You have great financial flexibility!",
	}
	netWorthRemarks = [4]string{
		"Focus on growing your assets through savings and investments.",
		"Work on building assets and reducing liabilities for long-term security.",
		"You're on track. Continue growing your net worth.",
		"Excellent financial health! Consider diversifying your investments.",
	}
	emergencyFundRemarks = [4]string{
		"Critical! Try to save at least 3 months of expenses in safe assets.",
		"Build a stronger emergency fund for at least 6 months.",
		"Adequate safety cushion. Maintain and monitor your spending.",
		"You have excellent reserves! Consider longer-term investment vehicles.",
	}
)

func bandMetric(ratio float64, remarks [4]string, band func(float64) int) MetricScore {
	if math.IsNaN(ratio) {
		return MetricScore{NA: true, Label: naLabel, Remark: naLabel}
	}
	score := band(ratio)
	return MetricScore{
		Score:  score,
		Label:  scoreLabel(score),
		Remark: remarks[score-1],
	}
}

// ScoreFinancialHealth bands the four ratios and composes the overall
// score. The band thresholds are the canonical (table view) rule set:
//
//	savings rate (%)     1: <=10  2: <=20  3: <=30  4: >30
//	debt-to-income (%)   1: >=41  2: >=31  3: >=21  4: <21
//	net worth / income   1: <=1   2: <=2   3: <=5   4: >5
//	emergency fund (mo)  1: <=3   2: <=6   3: <=12  4: >12
func ScoreFinancialHealth(m HealthMetrics) HealthScore {
	hs := HealthScore{
		SavingsRate: bandMetric(m.SavingsRatePercent, savingsRateRemarks, func(r float64) int {
			switch {
			case r <= 10:
				return 1
			case r <= 20:
				return 2
			case r <= 30:
				return 3
			default:
				return 4
			}
		}),
		DebtToIncome: bandMetric(m.DebtToIncomePercent, debtToIncomeRemarks, func(r float64) int {
			switch {
			case r >= 41:
				return 1
			case r >= 31:
				return 2
			case r >= 21:
				return 3
			default:
				return 4
			}
		}),
		NetWorth: bandMetric(m.NetWorthToAnnualIncome, netWorthRemarks, func(r float64) int {
			switch {
			case r <= 1:
				return 1
			case r <= 2:
				return 2
			case r <= 5:
				return 3
			default:
				return 4
			}
		}),
		EmergencyFund: bandMetric(m.EmergencyFundMonths, emergencyFundRemarks, func(r float64) int {
			switch {
			case r <= 3:
				return 1
			case r <= 6:
				return 2
			case r <= 12:
				return 3
			default:
				return 4
			}
		}),
	}

	hs.Overall = hs.SavingsRate.Score + hs.DebtToIncome.Score + hs.NetWorth.Score + hs.EmergencyFund.Score
	switch {
	case hs.Overall >= 14:
		hs.OverallLabel = "Excellent!"
		hs.OverallRemark = "You're in great financial shape! Keep up the excellent work."
	case hs.Overall >= 10:
		hs.OverallLabel = "Good"
		hs.OverallRemark = "You're on the right track. Optimize where possible."
	case hs.Overall >= 6:
		hs.OverallLabel = "Fair"
		hs.OverallRemark = "Needs improvement in key areas like debt and savings."
	default:
		hs.OverallLabel = "Poor"
		hs.OverallRemark = "Focus on improving your savings, reducing debt, and building assets."
	}
	return hs
}

// Normalized is the dashboard presentation of the composite: the overall
// score scaled to 0-100.
func (h HealthScore) Normalized() int {
	return int(math.Round(float64(h.Overall) / 16 * 100))
}

// Grade maps the normalized score to a letter grade for the dashboard
// presentation. A zero normalized score carries no grade.
func (h HealthScore) Grade() string {
	n := h.Normalized()
	switch {
	case n == 0:
		return ""
	case n >= 90:
		return "A"
	case n >= 80:
		return "B"
	case n >= 70:
		return "C"
	case n >= 60:
		return "D"
	default:
		return "F"
	}
}

// IsFixedDeposit reports whether a category names a fixed-deposit style
// holding. Matching is a case-insensitive substring check, not an exact
// category match, since users name these freely ("Fixed Deposits(FDs)",
// "Bank FD", ...).
func IsFixedDeposit(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "fixed deposit") || strings.Contains(c, "fd")
}

// ratioOrNaN divides as float64, yielding NaN when the denominator is zero
// so the scorer can surface the NA sentinel.
func ratioOrNaN(numerator, denominator decimal.Decimal) float64 {
	if denominator.IsZero() {
		return math.NaN()
	}
	n, _ := numerator.Float64()
	d, _ := denominator.Float64()
	return n / d
}

// DeriveHealthMetrics computes the scorer's four ratios from aggregated
// ledger totals:
//
//	savings rate   = (income - expenses - investments) / income * 100
//	debt-to-income = monthly debt payments / income * 100
//	net worth      = (assets - liabilities) / (income * 12)
//	emergency fund = fixed-deposit assets / total expenses
func DeriveHealthMetrics(income, expenses, investments, assets, liabilities, fixedDeposits, monthlyDebt decimal.Decimal) HealthMetrics {
	savings := income.Sub(expenses).Sub(investments)
	netWorth := assets.Sub(liabilities)
	annualIncome := income.Mul(decimal.NewFromInt(12))

	return HealthMetrics{
		SavingsRatePercent:     ratioOrNaN(savings, income) * 100,
		DebtToIncomePercent:    ratioOrNaN(monthlyDebt, income) * 100,
		NetWorthToAnnualIncome: ratioOrNaN(netWorth, annualIncome),
		EmergencyFundMonths:    ratioOrNaN(fixedDeposits, expenses),
	}
}
