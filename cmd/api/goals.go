package main

import (
	"errors"
	"net/http"

	"github.com/SamruddhiShinde-hub/monivue/internal/data"
	"github.com/SamruddhiShinde-hub/monivue/internal/finance"
	"github.com/SamruddhiShinde-hub/monivue/internal/validator"
	"github.com/shopspring/decimal"
)

// getGoalsForUserHandler() lists the user's goals with their resolved
// display descriptions.
func (app *application) getGoalsForUserHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	goals, err := app.models.Goals.GetAllGoalsForUser(user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// pair each goal with its resolved description for the client table
	type goalWithDescription struct {
		*data.Goal
		FinalDescription string `json:"final_description"`
	}
	response := make([]goalWithDescription, 0, len(goals))
	for _, goal := range goals {
		response = append(response, goalWithDescription{Goal: goal, FinalDescription: goal.FinalDescription()})
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"goals": response}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createNewGoalHandler() saves a goal, deriving its inflation-adjusted
// future value from the present value and time horizon.
func (app *application) createNewGoalHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	var input struct {
		Description       string          `json:"description"`
		CustomDescription string          `json:"custom_description"`
		Priority          string          `json:"priority"`
		PresentValue      decimal.Decimal `json:"present_value"`
		TimeHorizonYears  int             `json:"time_horizon"`
		InflationPercent  float64         `json:"inflation"`
	}
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	goal := &data.Goal{
		Description:       input.Description,
		CustomDescription: input.CustomDescription,
		Priority:          input.Priority,
		PresentValue:      input.PresentValue,
		TimeHorizonYears:  input.TimeHorizonYears,
		InflationPercent:  input.InflationPercent,
	}

	v := validator.New()
	if data.ValidateGoal(v, goal); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Goals.CreateNewGoal(user.ID, goal)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"goal": goal}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteGoalByIDHandler() removes a goal and its saved calculations.
func (app *application) deleteGoalByIDHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	goalID, err := app.readIDParam(r, "goalID")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Goals.DeleteGoalByID(user.ID, goalID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrGeneralRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "goal successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createNewGoalCalculationHandler() appends a funding plan to one of the
// user's goals. Plans accumulate; they are never overwritten.
func (app *application) createNewGoalCalculationHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	var input struct {
		GoalID         int64   `json:"goal_id"`
		InitialAmount  float64 `json:"initial_amount"`
		MonthlyAmount  float64 `json:"monthly_amount"`
		YearlyIncrease float64 `json:"yearly_increase"`
		AnnualReturn   float64 `json:"annual_return"`
	}
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	calculation := &data.GoalCalculation{
		GoalID:         input.GoalID,
		InitialAmount:  input.InitialAmount,
		MonthlyAmount:  input.MonthlyAmount,
		YearlyIncrease: input.YearlyIncrease,
		AnnualReturn:   input.AnnualReturn,
	}

	v := validator.New()
	if data.ValidateGoalCalculation(v, calculation); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// verify the goal belongs to the requesting user before attaching a plan
	_, err = app.models.Goals.GetGoalByID(user.ID, calculation.GoalID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrGeneralRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.models.Goals.CreateNewGoalCalculation(calculation)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"goal_calculation": calculation}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// getGoalCalculationsHandler() lists the saved funding plans for a goal.
func (app *application) getGoalCalculationsHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	goalID, err := app.readIDParam(r, "goalID")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.models.Goals.GetGoalByID(user.ID, goalID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrGeneralRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	calculations, err := app.models.Goals.GetAllCalculationsForGoal(goalID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"goal_calculations": calculations}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
