package main

import (
	"testing"

	"github.com/shopspring/decimal"
)

func Test_ledgerTotals_netWorth(t *testing.T) {
	tests := []struct {
		name   string
		totals *ledgerTotals
		want   string
	}{
		{
			name: "Assets Minus Liabilities",
			totals: &ledgerTotals{
				Assets:      decimal.NewFromInt(500000),
				Liabilities: decimal.NewFromInt(120000),
			},
			want: "380000",
		},
		{
			name: "Investments Do Not Raise Net Worth",
			totals: &ledgerTotals{
				Assets:      decimal.NewFromInt(500000),
				Investments: decimal.NewFromInt(250000),
				Liabilities: decimal.NewFromInt(120000),
			},
			want: "380000",
		},
		{
			name: "Negative Net Worth",
			totals: &ledgerTotals{
				Assets:      decimal.NewFromInt(50000),
				Liabilities: decimal.NewFromInt(80000),
			},
			want: "-30000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.totals.netWorth(); got.String() != tt.want {
				t.Errorf("ledgerTotals.netWorth() = %v, want %v", got, tt.want)
			}
		})
	}
}
