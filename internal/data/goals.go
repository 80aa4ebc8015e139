package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SamruddhiShinde-hub/monivue/internal/finance"
	"github.com/SamruddhiShinde-hub/monivue/internal/validator"
	"github.com/shopspring/decimal"
)

type GoalModel struct {
	DB *sql.DB
}

var (
	DefaultGoalDBContextTimeout = 5 * time.Second
)

// The description preset a goal uses when it carries free-form text in
// CustomDescription instead.
const GoalDescriptionCustom = "Custom"

var (
	GoalDescriptionPresets = []string{"Retirement", "House", "Education", "Travel", GoalDescriptionCustom}
	GoalPriorities         = []string{"High", "Medium", "Low"}
)

// Goal is one savings target. FutureValue is derived once at creation from
// the present value, time horizon and assumed inflation; it is stored, not
// recomputed on read.
type Goal struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"user_id"`
	Description       string          `json:"description"`
	CustomDescription string          `json:"custom_description"`
	Priority          string          `json:"priority"`
	PresentValue      decimal.Decimal `json:"present_value"`
	TimeHorizonYears  int             `json:"time_horizon"`
	InflationPercent  float64         `json:"inflation"`
	FutureValue       decimal.Decimal `json:"future_value"`
	CreatedAt         time.Time       `json:"created_at"`
}

// FinalDescription resolves the display text: the free-form text for a
// Custom goal, the preset otherwise.
func (g *Goal) FinalDescription() string {
	if g.Description == GoalDescriptionCustom {
		return g.CustomDescription
	}
	return g.Description
}

// GoalCalculation is one saved plan for funding a goal. Calculations are
// append-only; saving a new plan never replaces an older one.
type GoalCalculation struct {
	ID             int64     `json:"id"`
	GoalID         int64     `json:"goal_id"`
	InitialAmount  float64   `json:"initial_amount"`
	MonthlyAmount  float64   `json:"monthly_amount"`
	YearlyIncrease float64   `json:"yearly_increase"`
	AnnualReturn   float64   `json:"annual_return"`
	CreatedAt      time.Time `json:"created_at"`
}

// validate a goal
func ValidateGoal(v *validator.Validator, goal *Goal) {
	v.Check(goal.Description != "", "description", "must be provided")
	v.Check(validator.PermittedValue(goal.Description, GoalDescriptionPresets...), "description", "must be a supported goal type")
	if goal.Description == GoalDescriptionCustom {
		v.Check(goal.CustomDescription != "", "custom_description", "must be provided for a custom goal")
	}
	v.Check(validator.PermittedValue(goal.Priority, GoalPriorities...), "priority", "must be High, Medium or Low")
	v.Check(!goal.PresentValue.IsNegative(), "present_value", "must not be negative")
	v.Check(goal.TimeHorizonYears >= 0, "time_horizon", "must not be negative")
	v.Check(goal.InflationPercent >= 0, "inflation", "must not be negative")
}

// validate a goal calculation
func ValidateGoalCalculation(v *validator.Validator, calculation *GoalCalculation) {
	v.Check(calculation.GoalID > 0, "goal_id", "must be provided")
	v.Check(calculation.InitialAmount >= 0, "initial_amount", "must not be negative")
	v.Check(calculation.MonthlyAmount >= 0, "monthly_amount", "must not be negative")
	v.Check(calculation.YearlyIncrease >= 0, "yearly_increase", "must not be negative")
	v.Check(calculation.AnnualReturn >= 0, "annual_return", "must not be negative")
}

// CreateNewGoal derives the goal's future value and saves it.
func (m GoalModel) CreateNewGoal(userID int64, goal *Goal) error {
	futureValue, err := finance.GoalFutureValue(goal.PresentValue, goal.InflationPercent, goal.TimeHorizonYears)
	if err != nil {
		return err
	}
	goal.FutureValue = futureValue

	ctx, cancel := contextGenerator(context.Background(), DefaultGoalDBContextTimeout)
	defer cancel()

	query := `
		INSERT INTO goals (user_id, description, custom_description, priority, present_value, time_horizon, inflation, future_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err = m.DB.QueryRowContext(ctx, query,
		userID,
		goal.Description,
		goal.CustomDescription,
		goal.Priority,
		goal.PresentValue,
		goal.TimeHorizonYears,
		goal.InflationPercent,
		goal.FutureValue,
	).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	goal.UserID = userID
	return nil
}

// GetAllGoalsForUser returns every goal for a user, newest first.
func (m GoalModel) GetAllGoalsForUser(userID int64) ([]*Goal, error) {
	ctx, cancel := contextGenerator(context.Background(), DefaultGoalDBContextTimeout)
	defer cancel()

	query := `
		SELECT id, user_id, description, custom_description, priority, present_value, time_horizon, inflation, future_value, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := m.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := []*Goal{}
	for rows.Next() {
		var goal Goal
		err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Description,
			&goal.CustomDescription,
			&goal.Priority,
			&goal.PresentValue,
			&goal.TimeHorizonYears,
			&goal.InflationPercent,
			&goal.FutureValue,
			&goal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, &goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}
	return goals, nil
}

// GetGoalByID retrieves a single goal, scoped to its owner.
func (m GoalModel) GetGoalByID(userID, goalID int64) (*Goal, error) {
	ctx, cancel := contextGenerator(context.Background(), DefaultGoalDBContextTimeout)
	defer cancel()

	var goal Goal
	query := `
		SELECT id, user_id, description, custom_description, priority, present_value, time_horizon, inflation, future_value, created_at
		FROM goals
		WHERE id = $1 AND user_id = $2`
	err := m.DB.QueryRowContext(ctx, query, goalID, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Description,
		&goal.CustomDescription,
		&goal.Priority,
		&goal.PresentValue,
		&goal.TimeHorizonYears,
		&goal.InflationPercent,
		&goal.FutureValue,
		&goal.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrGeneralRecordNotFound
		default:
			return nil, fmt.Errorf("failed to get goal: %w", err)
		}
	}
	return &goal, nil
}

// DeleteGoalByID removes a goal and, through the cascade, its saved
// calculations.
func (m GoalModel) DeleteGoalByID(userID, goalID int64) error {
	ctx, cancel := contextGenerator(context.Background(), DefaultGoalDBContextTimeout)
	defer cancel()

	query := `
		DELETE FROM goals
		WHERE id = $1 AND user_id = $2`
	result, err := m.DB.ExecContext(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if affected == 0 {
		return ErrGeneralRecordNotFound
	}
	return nil
}

// CreateNewGoalCalculation appends a funding plan to a goal.
func (m GoalModel) CreateNewGoalCalculation(calculation *GoalCalculation) error {
	ctx, cancel := contextGenerator(context.Background(), DefaultGoalDBContextTimeout)
	defer cancel()

	query := `
		INSERT INTO goal_calculations (goal_id, initial_amount, monthly_amount, yearly_increase, annual_return)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := m.DB.QueryRowContext(ctx, query,
		calculation.GoalID,
		calculation.InitialAmount,
		calculation.MonthlyAmount,
		calculation.YearlyIncrease,
		calculation.AnnualReturn,
	).Scan(&calculation.ID, &calculation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal calculation: %w", err)
	}
	return nil
}

// GetAllCalculationsForGoal returns the saved plans for one goal, newest
// first.
func (m GoalModel) GetAllCalculationsForGoal(goalID int64) ([]*GoalCalculation, error) {
	ctx, cancel := contextGenerator(context.Background(), DefaultGoalDBContextTimeout)
	defer cancel()

	query := `
		SELECT id, goal_id, initial_amount, monthly_amount, yearly_increase, annual_return, created_at
		FROM goal_calculations
		WHERE goal_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := m.DB.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal calculations: %w", err)
	}
	defer rows.Close()

	calculations := []*GoalCalculation{}
	for rows.Next() {
		var calculation GoalCalculation
		err := rows.Scan(
			&calculation.ID,
			&calculation.GoalID,
			&calculation.InitialAmount,
			&calculation.MonthlyAmount,
			&calculation.YearlyIncrease,
			&calculation.AnnualReturn,
			&calculation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal calculation: %w", err)
		}
		calculations = append(calculations, &calculation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan goal calculations: %w", err)
	}
	return calculations, nil
}
