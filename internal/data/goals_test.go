package data

import (
	"testing"

	"github.com/SamruddhiShinde-hub/monivue/internal/validator"
	"github.com/shopspring/decimal"
)

func TestGoal_FinalDescription(t *testing.T) {
	tests := []struct {
		name string
		goal *Goal
		want string
	}{
		{
			name: "Preset Goal",
			goal: &Goal{Description: "Retirement", CustomDescription: ""},
			want: "Retirement",
		},
		{
			name: "Custom Goal",
			goal: &Goal{Description: "Custom", CustomDescription: "Buy a boat"},
			want: "Buy a boat",
		},
		{
			name: "Custom Text Ignored For Presets",
			goal: &Goal{Description: "House", CustomDescription: "left over text"},
			want: "House",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.FinalDescription(); got != tt.want {
				t.Errorf("FinalDescription() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	validGoal := func() *Goal {
		return &Goal{
			Description:      "Education",
			Priority:         "High",
			PresentValue:     decimal.RequireFromString("100000"),
			TimeHorizonYears: 5,
			InflationPercent: 6,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Goal)
		wantValid bool
	}{
		{
			name:      "Valid Goal",
			mutate:    func(g *Goal) {},
			wantValid: true,
		},
		{
			name: "Custom Goal Needs Text",
			mutate: func(g *Goal) {
				g.Description = "Custom"
				g.CustomDescription = ""
			},
			wantValid: false,
		},
		{
			name: "Custom Goal With Text",
			mutate: func(g *Goal) {
				g.Description = "Custom"
				g.CustomDescription = "Wedding"
			},
			wantValid: true,
		},
		{
			name: "Unknown Description",
			mutate: func(g *Goal) {
				g.Description = "Yacht"
			},
			wantValid: false,
		},
		{
			name: "Unknown Priority",
			mutate: func(g *Goal) {
				g.Priority = "Urgent"
			},
			wantValid: false,
		},
		{
			name: "Negative Present Value",
			mutate: func(g *Goal) {
				g.PresentValue = decimal.RequireFromString("-1")
			},
			wantValid: false,
		},
		{
			name: "Negative Horizon",
			mutate: func(g *Goal) {
				g.TimeHorizonYears = -1
			},
			wantValid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := validGoal()
			tt.mutate(goal)
			v := validator.New()
			ValidateGoal(v, goal)
			if v.Valid() != tt.wantValid {
				t.Errorf("ValidateGoal() valid = %v, want %v (errors: %v)", v.Valid(), tt.wantValid, v.Errors)
			}
		})
	}
}
