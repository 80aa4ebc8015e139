package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/SamruddhiShinde-hub/monivue/internal/data"
	"github.com/SamruddhiShinde-hub/monivue/internal/validator"
)

// createAuthenticationApiKeyHandler() exchanges an email and password for a
// bearer token.
func (app *application) createAuthenticationApiKeyHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateEmail(v, input.Email)
	data.ValidatePasswordPlaintext(v, input.Password)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := app.models.Users.GetByEmail(input.Email)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrGeneralRecordNotFound):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !match {
		app.invalidCredentialsResponse(w, r)
		return
	}

	app.generateAuthenticationTokenAndLogin(user, data.DefaultTokenExpiryTime, data.ScopeAuthentication, w, r)
}

// generateAuthenticationTokenAndLogin() is a helper that generates a new authentication token
// with a specific expiry time and scope, and then sends it to the user in the response.
// This function serves as the final actor in the login process.
func (app *application) generateAuthenticationTokenAndLogin(user *data.User, timeToLeave time.Duration, scope string, w http.ResponseWriter, r *http.Request) {
	bearerToken, err := app.models.Tokens.New(user.ID, timeToLeave, scope)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	// Encode the authentication token to JSON and send it in the response.
	err = app.writeJSON(w, http.StatusCreated, envelope{
		"authentication_token": bearerToken,
		"user":                 user,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
