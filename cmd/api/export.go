package main

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/SamruddhiShinde-hub/monivue/internal/data"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// exportableCollections maps URL collection segments to the ledger kind
// they export. Anything else is a 404.
var exportableCollections = map[string]data.EntryKind{
	"income":       data.EntryKindIncome,
	"expenses":     data.EntryKindExpense,
	"assets":       data.EntryKindAsset,
	"investments":  data.EntryKindInvestment,
	"liabilities":  data.EntryKindLiability,
	"monthly-debt": data.EntryKindMonthlyDebt,
}

// exportCollectionHandler() streams a user's entries for one collection
// as a CSV attachment.
func (app *application) exportCollectionHandler(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	kind, ok := exportableCollections[collection]
	if !ok {
		app.notFoundResponse(w, r)
		return
	}

	user := app.contextGetUser(r)
	entries, err := app.models.Ledger.GetAllLedgerEntriesByKind(user.ID, kind)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, collection))

	writer := csv.NewWriter(w)
	err = writer.Write([]string{"Category", "Amount", "Date"})
	if err != nil {
		app.logger.Error("unable to write csv header", zap.String("collection", collection), zap.Error(err))
		return
	}
	for _, entry := range entries {
		err = writer.Write([]string{entry.Category, entry.Amount, entry.EntryDate.Format("2006-01-02")})
		if err != nil {
			app.logger.Error("unable to write csv row", zap.String("collection", collection), zap.Error(err))
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		app.logger.Error("unable to flush csv export", zap.String("collection", collection), zap.Error(err))
	}
}
