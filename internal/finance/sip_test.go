package finance

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeSip(t *testing.T) {
	type args struct {
		in SipInputs
	}
	tests := []struct {
		name              string
		args              args
		wantFutureValue   string
		wantTotalInvested string
		wantErr           bool
	}{
		{
			name: "Standard Ten Year Projection",
			args: args{in: SipInputs{
				MonthlyInvestment:   5000,
				AnnualReturnPercent: 12,
				DurationYears:       10,
			}},
			wantFutureValue:   "1161695.38",
			wantTotalInvested: "600000",
		},
		{
			name: "Single Year",
			args: args{in: SipInputs{
				MonthlyInvestment:   1000,
				AnnualReturnPercent: 6,
				DurationYears:       1,
			}},
			wantFutureValue:   "12397.24",
			wantTotalInvested: "12000",
		},
		{
			name: "Zero Monthly Investment",
			args: args{in: SipInputs{
				MonthlyInvestment:   0,
				AnnualReturnPercent: 12,
				DurationYears:       10,
			}},
			wantErr: true,
		},
		{
			name: "Negative Return",
			args: args{in: SipInputs{
				MonthlyInvestment:   5000,
				AnnualReturnPercent: -3,
				DurationYears:       10,
			}},
			wantErr: true,
		},
		{
			name: "Zero Duration",
			args: args{in: SipInputs{
				MonthlyInvestment:   5000,
				AnnualReturnPercent: 12,
				DurationYears:       0,
			}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSip(tt.args.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputeSip() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ComputeSip() error = %v, want %v", err, ErrInvalidInput)
				}
				return
			}
			if got.FutureValue.String() != tt.wantFutureValue {
				t.Errorf("ComputeSip() future value = %v, want %v", got.FutureValue, tt.wantFutureValue)
			}
			if got.TotalInvested.String() != tt.wantTotalInvested {
				t.Errorf("ComputeSip() total invested = %v, want %v", got.TotalInvested, tt.wantTotalInvested)
			}
			wantInterest := got.FutureValue.Sub(got.TotalInvested)
			if !got.InterestEarned.Equal(wantInterest) {
				t.Errorf("ComputeSip() interest = %v, want %v", got.InterestEarned, wantInterest)
			}
		})
	}
}

func TestComputeStepUpSip(t *testing.T) {
	t.Run("Zero Step Up Matches Plain Sip", func(t *testing.T) {
		plain, err := ComputeSip(SipInputs{
			MonthlyInvestment:   5000,
			AnnualReturnPercent: 12,
			DurationYears:       10,
		})
		if err != nil {
			t.Fatalf("ComputeSip() error = %v", err)
		}
		stepped, err := ComputeStepUpSip(StepUpSipInputs{
			InitialMonthlySip:   5000,
			AnnualStepUpPercent: 0,
			AnnualReturnPercent: 12,
			DurationYears:       10,
		})
		if err != nil {
			t.Fatalf("ComputeStepUpSip() error = %v", err)
		}

		tolerance := decimal.RequireFromString("0.01")
		if stepped.FutureValue.Sub(plain.FutureValue).Abs().GreaterThan(tolerance) {
			t.Errorf("step-up future value = %v, plain = %v", stepped.FutureValue, plain.FutureValue)
		}
		if !stepped.TotalInvested.Equal(plain.TotalInvested) {
			t.Errorf("step-up total invested = %v, plain = %v", stepped.TotalInvested, plain.TotalInvested)
		}
	})

	t.Run("Step Up Grows The Contribution", func(t *testing.T) {
		got, err := ComputeStepUpSip(StepUpSipInputs{
			InitialMonthlySip:   5000,
			AnnualStepUpPercent: 10,
			AnnualReturnPercent: 12,
			DurationYears:       10,
		})
		if err != nil {
			t.Fatalf("ComputeStepUpSip() error = %v", err)
		}

		// invested = 5000 * 12 * (1.1^10 - 1) / 0.1
		wantInvested := decimal.RequireFromString("956245.48")
		if !got.TotalInvested.Equal(wantInvested) {
			t.Errorf("ComputeStepUpSip() total invested = %v, want %v", got.TotalInvested, wantInvested)
		}
		if !got.FutureValue.GreaterThan(got.TotalInvested) {
			t.Errorf("future value %v should exceed invested %v at a positive return", got.FutureValue, got.TotalInvested)
		}
	})

	t.Run("Negative Step Up Rejected", func(t *testing.T) {
		_, err := ComputeStepUpSip(StepUpSipInputs{
			InitialMonthlySip:   5000,
			AnnualStepUpPercent: -5,
			AnnualReturnPercent: 12,
			DurationYears:       10,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ComputeStepUpSip() error = %v, want %v", err, ErrInvalidInput)
		}
	})
}
