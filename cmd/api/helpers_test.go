package main

import (
	"testing"

	"github.com/SamruddhiShinde-hub/monivue/internal/data"
)

func Test_application_returnFormattedRedisKeys(t *testing.T) {
	type args struct {
		key    string
		userID int64
	}
	tests := []struct {
		name string
		app  *application
		args args
		want string
	}{
		{
			name: "Overview Summary Key",
			app:  &application{},
			args: args{
				key:    RedisOverviewSummaryPrefix,
				userID: 1,
			},
			want: "overview_summary:1",
		},
		{
			name: "Health Summary Key",
			app:  &application{},
			args: args{
				key:    RedisHealthSummaryPrefix,
				userID: 42,
			},
			want: "health_summary:42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.app.returnFormattedRedisKeys(tt.args.key, tt.args.userID); got != tt.want {
				t.Errorf("application.returnFormattedRedisKeys() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_exportableCollections(t *testing.T) {
	type args struct {
		collection string
	}
	tests := []struct {
		name   string
		args   args
		want   data.EntryKind
		wantOk bool
	}{
		{
			name:   "Income",
			args:   args{collection: "income"},
			want:   data.EntryKindIncome,
			wantOk: true,
		},
		{
			name:   "Monthly Debt",
			args:   args{collection: "monthly-debt"},
			want:   data.EntryKindMonthlyDebt,
			wantOk: true,
		},
		{
			name:   "Unknown Collection",
			args:   args{collection: "stocks"},
			want:   "",
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := exportableCollections[tt.args.collection]
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("exportableCollections[%v] = %v, %v, want %v, %v", tt.args.collection, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
