package finance

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name   string
		args   args
		want   string
		wantOk bool
	}{
		{
			name:   "Plain Integer",
			args:   args{s: "1200"},
			want:   "1200",
			wantOk: true,
		},
		{
			name:   "Decimal With Whitespace",
			args:   args{s: "  45.50"},
			want:   "45.5",
			wantOk: true,
		},
		{
			name:   "Negative Amount",
			args:   args{s: "-30"},
			want:   "-30",
			wantOk: true,
		},
		{
			name:   "Comma Truncates The Prefix",
			args:   args{s: "1,200"},
			want:   "1",
			wantOk: true,
		},
		{
			name:   "Trailing Garbage Ignored",
			args:   args{s: "99.9abc"},
			want:   "99.9",
			wantOk: true,
		},
		{
			name:   "Second Dot Stops The Scan",
			args:   args{s: "12.5.6"},
			want:   "12.5",
			wantOk: true,
		},
		{
			name:   "Fully Malformed",
			args:   args{s: "abc"},
			want:   "0",
			wantOk: false,
		},
		{
			name:   "Empty String",
			args:   args{s: ""},
			want:   "0",
			wantOk: false,
		},
		{
			name:   "Bare Sign",
			args:   args{s: "-"},
			want:   "0",
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.args.s)
			if got.String() != tt.want || ok != tt.wantOk {
				t.Errorf("ParseAmount() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	entries := []Entry{
		{Category: "Rent", Amount: "1200"},
		{Category: "Food", Amount: "450.75"},
		{Category: "Rent", Amount: "300"},
		{Category: "Travel", Amount: "abc"},
	}

	got := GroupByCategory(entries)
	want := []CategoryTotal{
		{Category: "Rent", Total: decimal.RequireFromString("1500")},
		{Category: "Food", Total: decimal.RequireFromString("450.75")},
		{Category: "Travel", Total: decimal.Zero},
	}

	if len(got) != len(want) {
		t.Fatalf("GroupByCategory() returned %d groups, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Category != want[i].Category || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("GroupByCategory()[%d] = %v/%v, want %v/%v",
				i, got[i].Category, got[i].Total, want[i].Category, want[i].Total)
		}
	}
}

// Grouping must conserve the total: summing the per-category totals
// gives the same number as summing all entries directly, malformed
// amounts included.
func TestGroupByCategory_ConservesTotal(t *testing.T) {
	entries := []Entry{
		{Category: "Rent", Amount: "1200"},
		{Category: "Food", Amount: "450.75"},
		{Category: "Rent", Amount: "300"},
		{Category: "Misc", Amount: "not-a-number"},
		{Category: "Food", Amount: "-30"},
		{Category: "Utilities", Amount: " 89.99"},
	}

	direct := SumAmounts(entries)
	grouped := decimal.Zero
	for _, categoryTotal := range GroupByCategory(entries) {
		grouped = grouped.Add(categoryTotal.Total)
	}

	if !direct.Equal(grouped) {
		t.Errorf("grouped total = %v, direct total = %v", grouped, direct)
	}
}

func TestBuildDistribution(t *testing.T) {
	entries := []Entry{
		{Category: "Stocks", Amount: "5000"},
		{Category: "Gold", Amount: "2000"},
		{Category: "Stocks", Amount: "1000"},
	}

	got := BuildDistribution(entries, DefaultPalette)

	wantLabels := []string{"Stocks", "Gold"}
	if !reflect.DeepEqual(got.Labels, wantLabels) {
		t.Errorf("BuildDistribution() labels = %v, want %v", got.Labels, wantLabels)
	}
	wantColors := []string{DefaultPalette[0], DefaultPalette[1]}
	if !reflect.DeepEqual(got.Colors, wantColors) {
		t.Errorf("BuildDistribution() colors = %v, want %v", got.Colors, wantColors)
	}
	if !got.Totals[0].Equal(decimal.RequireFromString("6000")) {
		t.Errorf("BuildDistribution() totals[0] = %v, want 6000", got.Totals[0])
	}
}

func TestBuildDistribution_PaletteWraps(t *testing.T) {
	entries := make([]Entry, 0, len(DefaultPalette)+2)
	for i := 0; i < len(DefaultPalette)+2; i++ {
		entries = append(entries, Entry{
			Category: string(rune('A' + i)),
			Amount:   "10",
		})
	}

	got := BuildDistribution(entries, DefaultPalette)

	if got.Colors[len(DefaultPalette)] != DefaultPalette[0] {
		t.Errorf("color after palette exhaustion = %v, want %v",
			got.Colors[len(DefaultPalette)], DefaultPalette[0])
	}
	if got.Colors[len(DefaultPalette)+1] != DefaultPalette[1] {
		t.Errorf("second wrapped color = %v, want %v",
			got.Colors[len(DefaultPalette)+1], DefaultPalette[1])
	}
}
