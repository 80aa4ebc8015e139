package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGoalFutureValue(t *testing.T) {
	type args struct {
		presentValue     string
		inflationPercent float64
		years            int
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "Five Years At Six Percent",
			args: args{presentValue: "100000", inflationPercent: 6, years: 5},
			want: "133822.56",
		},
		{
			name: "Zero Years Returns Present Value",
			args: args{presentValue: "50000", inflationPercent: 6, years: 0},
			want: "50000",
		},
		{
			name: "Zero Inflation",
			args: args{presentValue: "50000", inflationPercent: 0, years: 10},
			want: "50000",
		},
		{
			name:    "Negative Present Value",
			args:    args{presentValue: "-1", inflationPercent: 6, years: 5},
			wantErr: true,
		},
		{
			name:    "Negative Years",
			args:    args{presentValue: "100", inflationPercent: 6, years: -1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GoalFutureValue(decimal.RequireFromString(tt.args.presentValue), tt.args.inflationPercent, tt.args.years)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GoalFutureValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.String() != tt.want {
				t.Errorf("GoalFutureValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
