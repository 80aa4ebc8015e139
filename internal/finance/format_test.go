package finance

import (
	"math"
	"testing"
)

func TestFormatMagnitude(t *testing.T) {
	type args struct {
		amount float64
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "One Crore",
			args: args{amount: 10000000},
			want: "1.00 Cr",
		},
		{
			name: "Above One Crore",
			args: args{amount: 12345678},
			want: "1.23 Cr",
		},
		{
			name: "One Lakh",
			args: args{amount: 100000},
			want: "1.00 L",
		},
		{
			name: "Below One Lakh Uses Grouping",
			args: args{amount: 99999},
			want: "99,999",
		},
		{
			name: "Indian Grouping Five Digits",
			args: args{amount: 12345},
			want: "12,345",
		},
		{
			name: "Small Amount",
			args: args{amount: 950},
			want: "950",
		},
		{
			name: "Zero Renders Empty",
			args: args{amount: 0},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMagnitude(tt.args.amount); got != tt.want {
				t.Errorf("FormatMagnitude() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumberToWords(t *testing.T) {
	type args struct {
		amount float64
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "Zero Yields Empty",
			args: args{amount: 0},
			want: "",
		},
		{
			name: "NaN Yields Empty",
			args: args{amount: math.NaN()},
			want: "",
		},
		{
			name: "Non Integer Yields Empty",
			args: args{amount: 1500.50},
			want: "",
		},
		{
			name: "Single Digit",
			args: args{amount: 7},
			want: "seven",
		},
		{
			name: "Teens",
			args: args{amount: 14},
			want: "fourteen",
		},
		{
			name: "Tens With Units",
			args: args{amount: 42},
			want: "forty two",
		},
		{
			name: "Hundred With Trailing",
			args: args{amount: 101},
			want: "one hundred and one",
		},
		{
			name: "Exact Thousand",
			args: args{amount: 5000},
			want: "five thousand",
		},
		{
			name: "Thousand With Hundreds",
			args: args{amount: 1234},
			want: "one thousand two hundred and thirty four",
		},
		{
			name: "Lakh Scale",
			args: args{amount: 150000},
			want: "one lakh fifty thousand",
		},
		{
			name: "Crore Scale",
			args: args{amount: 12345678},
			want: "one crore twenty three lakh forty five thousand six hundred and seventy eight",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumberToWords(tt.args.amount); got != tt.want {
				t.Errorf("NumberToWords() = %v, want %v", got, tt.want)
			}
		})
	}
}
