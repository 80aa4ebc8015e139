package finance

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestScoreFinancialHealth(t *testing.T) {
	type args struct {
		m HealthMetrics
	}
	tests := []struct {
		name             string
		args             args
		wantSavings      int
		wantDebt         int
		wantNetWorth     int
		wantEmergency    int
		wantOverall      int
		wantOverallLabel string
	}{
		{
			name: "All Excellent",
			args: args{m: HealthMetrics{
				SavingsRatePercent:     35,
				DebtToIncomePercent:    15,
				NetWorthToAnnualIncome: 6,
				EmergencyFundMonths:    13,
			}},
			wantSavings:      4,
			wantDebt:         4,
			wantNetWorth:     4,
			wantEmergency:    4,
			wantOverall:      16,
			wantOverallLabel: "Excellent!",
		},
		{
			name: "All Poor",
			args: args{m: HealthMetrics{
				SavingsRatePercent:     5,
				DebtToIncomePercent:    55,
				NetWorthToAnnualIncome: 0.5,
				EmergencyFundMonths:    1,
			}},
			wantSavings:      1,
			wantDebt:         1,
			wantNetWorth:     1,
			wantEmergency:    1,
			wantOverall:      4,
			wantOverallLabel: "Poor",
		},
		{
			name: "Band Boundaries Are Inclusive",
			args: args{m: HealthMetrics{
				SavingsRatePercent:     10,
				DebtToIncomePercent:    41,
				NetWorthToAnnualIncome: 1,
				EmergencyFundMonths:    3,
			}},
			wantSavings:      1,
			wantDebt:         1,
			wantNetWorth:     1,
			wantEmergency:    1,
			wantOverall:      4,
			wantOverallLabel: "Poor",
		},
		{
			name: "Just Past The Boundaries",
			args: args{m: HealthMetrics{
				SavingsRatePercent:     20,
				DebtToIncomePercent:    31,
				NetWorthToAnnualIncome: 2,
				EmergencyFundMonths:    6,
			}},
			wantSavings:      2,
			wantDebt:         2,
			wantNetWorth:     2,
			wantEmergency:    2,
			wantOverall:      8,
			wantOverallLabel: "Fair",
		},
		{
			name: "Mixed Good",
			args: args{m: HealthMetrics{
				SavingsRatePercent:     25,
				DebtToIncomePercent:    25,
				NetWorthToAnnualIncome: 3,
				EmergencyFundMonths:    8,
			}},
			wantSavings:      3,
			wantDebt:         3,
			wantNetWorth:     3,
			wantEmergency:    3,
			wantOverall:      12,
			wantOverallLabel: "Good",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreFinancialHealth(tt.args.m)
			if got.SavingsRate.Score != tt.wantSavings {
				t.Errorf("savings rate score = %d, want %d", got.SavingsRate.Score, tt.wantSavings)
			}
			if got.DebtToIncome.Score != tt.wantDebt {
				t.Errorf("debt-to-income score = %d, want %d", got.DebtToIncome.Score, tt.wantDebt)
			}
			if got.NetWorth.Score != tt.wantNetWorth {
				t.Errorf("net worth score = %d, want %d", got.NetWorth.Score, tt.wantNetWorth)
			}
			if got.EmergencyFund.Score != tt.wantEmergency {
				t.Errorf("emergency fund score = %d, want %d", got.EmergencyFund.Score, tt.wantEmergency)
			}
			if got.Overall != tt.wantOverall {
				t.Errorf("overall = %d, want %d", got.Overall, tt.wantOverall)
			}
			if got.OverallLabel != tt.wantOverallLabel {
				t.Errorf("overall label = %q, want %q", got.OverallLabel, tt.wantOverallLabel)
			}
		})
	}
}

func TestScoreFinancialHealth_UndefinedRatio(t *testing.T) {
	got := ScoreFinancialHealth(HealthMetrics{
		SavingsRatePercent:     math.NaN(),
		DebtToIncomePercent:    15,
		NetWorthToAnnualIncome: 6,
		EmergencyFundMonths:    13,
	})

	if !got.SavingsRate.NA {
		t.Error("savings rate should carry the NA sentinel")
	}
	if got.SavingsRate.Score != 0 {
		t.Errorf("NA metric score = %d, want 0", got.SavingsRate.Score)
	}
	if got.SavingsRate.Label != "ERROR" || got.SavingsRate.Remark != "ERROR" {
		t.Errorf("NA metric label/remark = %q/%q, want ERROR", got.SavingsRate.Label, got.SavingsRate.Remark)
	}
	if got.Overall != 12 {
		t.Errorf("overall = %d, want 12 (NA metric excluded)", got.Overall)
	}
}

func TestHealthMetrics_JSONRoundTrip(t *testing.T) {
	in := HealthMetrics{
		SavingsRatePercent:     math.NaN(),
		DebtToIncomePercent:    10,
		NetWorthToAnnualIncome: 4,
		EmergencyFundMonths:    math.NaN(),
	}

	payload, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out HealthMetrics
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !math.IsNaN(out.SavingsRatePercent) || !math.IsNaN(out.EmergencyFundMonths) {
		t.Errorf("undefined ratios did not survive the round trip: %+v", out)
	}
	if out.DebtToIncomePercent != in.DebtToIncomePercent || out.NetWorthToAnnualIncome != in.NetWorthToAnnualIncome {
		t.Errorf("defined ratios changed in the round trip: got %+v, want %+v", out, in)
	}
}

func TestHealthScore_Normalized(t *testing.T) {
	tests := []struct {
		name      string
		overall   int
		want      int
		wantGrade string
	}{
		{name: "Perfect", overall: 16, want: 100, wantGrade: "A"},
		{name: "Fourteen", overall: 14, want: 88, wantGrade: "B"},
		{name: "Twelve", overall: 12, want: 75, wantGrade: "C"},
		{name: "Ten", overall: 10, want: 63, wantGrade: "D"},
		{name: "Four", overall: 4, want: 25, wantGrade: "F"},
		{name: "Zero Carries No Grade", overall: 0, want: 0, wantGrade: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HealthScore{Overall: tt.overall}
			if got := h.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %d, want %d", got, tt.want)
			}
			if got := h.Grade(); got != tt.wantGrade {
				t.Errorf("Grade() = %q, want %q", got, tt.wantGrade)
			}
		})
	}
}

func TestDeriveHealthMetrics(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	t.Run("Typical Month", func(t *testing.T) {
		got := DeriveHealthMetrics(
			d("100000"), // income
			d("40000"),  // expenses
			d("20000"),  // investments
			d("5000000"),
			d("1000000"),
			d("240000"),
			d("10000"),
		)
		if !almostEqual(got.SavingsRatePercent, 40) {
			t.Errorf("savings rate = %v, want 40", got.SavingsRatePercent)
		}
		if !almostEqual(got.DebtToIncomePercent, 10) {
			t.Errorf("debt-to-income = %v, want 10", got.DebtToIncomePercent)
		}
		if !almostEqual(got.NetWorthToAnnualIncome, 4000000.0/1200000.0) {
			t.Errorf("net worth ratio = %v", got.NetWorthToAnnualIncome)
		}
		if !almostEqual(got.EmergencyFundMonths, 6) {
			t.Errorf("emergency fund months = %v, want 6", got.EmergencyFundMonths)
		}
	})

	t.Run("Zero Denominators Yield NaN", func(t *testing.T) {
		got := DeriveHealthMetrics(
			decimal.Zero, decimal.Zero, decimal.Zero,
			d("100"), d("50"), decimal.Zero, d("10"),
		)
		if !math.IsNaN(got.SavingsRatePercent) {
			t.Errorf("savings rate = %v, want NaN", got.SavingsRatePercent)
		}
		if !math.IsNaN(got.DebtToIncomePercent) {
			t.Errorf("debt-to-income = %v, want NaN", got.DebtToIncomePercent)
		}
		if !math.IsNaN(got.NetWorthToAnnualIncome) {
			t.Errorf("net worth ratio = %v, want NaN", got.NetWorthToAnnualIncome)
		}
		if !math.IsNaN(got.EmergencyFundMonths) {
			t.Errorf("emergency fund months = %v, want NaN", got.EmergencyFundMonths)
		}
	})
}

func TestIsFixedDeposit(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     bool
	}{
		{name: "Canonical", category: "Fixed Deposits(FDs)", want: true},
		{name: "Lowercase", category: "fixed deposit", want: true},
		{name: "Abbreviation", category: "Bank FD", want: true},
		{name: "Unrelated", category: "Stocks", want: false},
		{name: "Empty", category: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFixedDeposit(tt.category); got != tt.want {
				t.Errorf("IsFixedDeposit(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}
