package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/SamruddhiShinde-hub/monivue/internal/data"
	"github.com/SamruddhiShinde-hub/monivue/internal/finance"
	"github.com/SamruddhiShinde-hub/monivue/internal/validator"
)

// listLedgerEntriesHandler() returns every entry of the mounted kind for the
// authenticated user, along with its aggregate total and per-category
// distribution so list pages render without a second round trip.
func (app *application) listLedgerEntriesHandler(kind data.EntryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)

		entries, err := app.models.Ledger.GetAllLedgerEntriesByKind(user.ID, kind)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		financeEntries := data.ToFinanceEntries(entries)
		total := finance.SumAmounts(financeEntries)
		totalValue, _ := total.Float64()
		palette := finance.DefaultPalette
		if kind == data.EntryKindInvestment {
			palette = finance.NavyPalette
		}

		err = app.writeJSON(w, http.StatusOK, envelope{
			string(kind) + "_entries": entries,
			"total":                   total,
			"total_formatted":         finance.FormatMagnitude(totalValue),
			"total_in_words":          finance.NumberToWords(totalValue),
			"distribution":            finance.BuildDistribution(financeEntries, palette),
		}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

// createLedgerEntryHandler() saves a new entry of the mounted kind.
func (app *application) createLedgerEntryHandler(kind data.EntryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)

		var input struct {
			Category string    `json:"category"`
			Amount   string    `json:"amount"`
			Date     time.Time `json:"date"`
		}
		err := app.readJSON(w, r, &input)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		entry := &data.LedgerEntry{
			Kind:      kind,
			Category:  input.Category,
			Amount:    input.Amount,
			EntryDate: input.Date,
		}

		v := validator.New()
		if data.ValidateLedgerEntry(v, entry); !v.Valid() {
			app.failedValidationResponse(w, r, v.Errors)
			return
		}

		err = app.models.Ledger.CreateNewLedgerEntry(user.ID, entry)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		app.invalidateUserSummaries(r.Context(), user.ID)

		err = app.writeJSON(w, http.StatusCreated, envelope{string(kind) + "_entry": entry}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

// updateLedgerEntryHandler() applies partial changes to an existing entry.
func (app *application) updateLedgerEntryHandler(kind data.EntryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)

		entryID, err := app.readIDParam(r, "entryID")
		if err != nil {
			app.notFoundResponse(w, r)
			return
		}

		entry, err := app.models.Ledger.GetLedgerEntryByID(user.ID, entryID)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrGeneralRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}
		// a mismatched kind means the entry exists under another collection
		if entry.Kind != kind {
			app.notFoundResponse(w, r)
			return
		}

		var input struct {
			Category *string    `json:"category"`
			Amount   *string    `json:"amount"`
			Date     *time.Time `json:"date"`
		}
		err = app.readJSON(w, r, &input)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		if input.Category != nil {
			entry.Category = *input.Category
		}
		if input.Amount != nil {
			entry.Amount = *input.Amount
		}
		if input.Date != nil {
			entry.EntryDate = *input.Date
		}

		v := validator.New()
		if data.ValidateLedgerEntry(v, entry); !v.Valid() {
			app.failedValidationResponse(w, r, v.Errors)
			return
		}

		err = app.models.Ledger.UpdateLedgerEntry(user.ID, entry)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrGeneralRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}
		app.invalidateUserSummaries(r.Context(), user.ID)

		err = app.writeJSON(w, http.StatusOK, envelope{string(kind) + "_entry": entry}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

// deleteLedgerEntryHandler() removes an entry of the mounted kind.
func (app *application) deleteLedgerEntryHandler(kind data.EntryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)

		entryID, err := app.readIDParam(r, "entryID")
		if err != nil {
			app.notFoundResponse(w, r)
			return
		}

		entry, err := app.models.Ledger.GetLedgerEntryByID(user.ID, entryID)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrGeneralRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}
		if entry.Kind != kind {
			app.notFoundResponse(w, r)
			return
		}

		err = app.models.Ledger.DeleteLedgerEntryByID(user.ID, entryID)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrGeneralRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}
		app.invalidateUserSummaries(r.Context(), user.ID)

		err = app.writeJSON(w, http.StatusOK, envelope{"message": "entry successfully deleted"}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}
