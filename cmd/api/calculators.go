package main

import (
	"errors"
	"net/http"

	"github.com/SamruddhiShinde-hub/monivue/internal/finance"
)

// sipCalculatorHandler() projects a fixed monthly contribution.
func (app *application) sipCalculatorHandler(w http.ResponseWriter, r *http.Request) {
	var input finance.SipInputs
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	result, err := finance.ComputeSip(input)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"sip_projection": result}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// stepUpSipCalculatorHandler() projects a contribution that steps up
// annually.
func (app *application) stepUpSipCalculatorHandler(w http.ResponseWriter, r *http.Request) {
	var input finance.StepUpSipInputs
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	result, err := finance.ComputeStepUpSip(input)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"step_up_sip_projection": result}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// retirementCalculatorHandler() runs the year-by-year corpus simulation.
// Results are computed fresh on every request and never persisted.
func (app *application) retirementCalculatorHandler(w http.ResponseWriter, r *http.Request) {
	var input finance.RetirementInputs
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rows := finance.SimulateRetirement(input)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"post_retirement_monthly_expenses": finance.PostRetirementMonthlyExpenses(input),
		"projection":                       rows,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
