package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SamruddhiShinde-hub/monivue/internal/data"
	"github.com/SamruddhiShinde-hub/monivue/internal/finance"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const recentActivityLimit = 5

// ledgerTotals holds the per-collection aggregates the summary endpoints
// are built from.
type ledgerTotals struct {
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Assets        decimal.Decimal
	Investments   decimal.Decimal
	Liabilities   decimal.Decimal
	MonthlyDebt   decimal.Decimal
	FixedDeposits decimal.Decimal
}

// overviewSummary is the cached overview payload.
type overviewSummary struct {
	TotalIncome           decimal.Decimal      `json:"total_income"`
	TotalExpenses         decimal.Decimal      `json:"total_expenses"`
	TotalAssets           decimal.Decimal      `json:"total_assets"`
	TotalInvestments      decimal.Decimal      `json:"total_investments"`
	TotalLiabilities      decimal.Decimal      `json:"total_liabilities"`
	NetWorth              decimal.Decimal      `json:"net_worth"`
	NetWorthFormatted     string               `json:"net_worth_formatted"`
	NetWorthInWords       string               `json:"net_worth_in_words"`
	ExpenseDistribution   finance.Distribution `json:"expense_distribution"`
	RecentActivity        []*data.LedgerEntry  `json:"recent_activity"`
	GeneratedAt           time.Time            `json:"generated_at"`
}

// netWorth() is assets minus liabilities. Investment holdings are tracked
// as their own collection and do not feed the net worth figure.
func (t *ledgerTotals) netWorth() decimal.Decimal {
	return t.Assets.Sub(t.Liabilities)
}

// gatherLedgerTotals() sums every collection for a user in one pass over the
// ledger. Asset entries in fixed-deposit style categories are totalled
// separately for the emergency fund ratio.
func (app *application) gatherLedgerTotals(userID int64) (*ledgerTotals, error) {
	totals := &ledgerTotals{
		Income:        decimal.Zero,
		Expenses:      decimal.Zero,
		Assets:        decimal.Zero,
		Investments:   decimal.Zero,
		Liabilities:   decimal.Zero,
		MonthlyDebt:   decimal.Zero,
		FixedDeposits: decimal.Zero,
	}
	kinds := map[data.EntryKind]*decimal.Decimal{
		data.EntryKindIncome:      &totals.Income,
		data.EntryKindExpense:     &totals.Expenses,
		data.EntryKindAsset:       &totals.Assets,
		data.EntryKindInvestment:  &totals.Investments,
		data.EntryKindLiability:   &totals.Liabilities,
		data.EntryKindMonthlyDebt: &totals.MonthlyDebt,
	}
	for kind, total := range kinds {
		entries, err := app.models.Ledger.GetAllLedgerEntriesByKind(userID, kind)
		if err != nil {
			return nil, err
		}
		*total = finance.SumAmounts(data.ToFinanceEntries(entries))
		if kind == data.EntryKindAsset {
			for _, entry := range entries {
				if finance.IsFixedDeposit(entry.Category) {
					amount, _ := finance.ParseAmount(entry.Amount)
					totals.FixedDeposits = totals.FixedDeposits.Add(amount)
				}
			}
		}
	}
	return totals, nil
}

// getOverviewHandler() serves the dashboard summary: collection totals, net
// worth with its Indian-format renderings, the expense distribution and the
// latest activity. The computed payload is cached per user.
func (app *application) getOverviewHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	redisKey := app.returnFormattedRedisKeys(RedisOverviewSummaryPrefix, user.ID)

	cached, err := getFromCache[overviewSummary](r.Context(), app.RedisDB, redisKey)
	if err == nil {
		err = app.writeJSON(w, http.StatusOK, envelope{"overview": cached}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if !errors.Is(err, ErrNoDataFoundInRedis) {
		// a cache failure should not take the overview down
		app.logger.Error("failed to read overview summary from cache", zap.Error(err))
	}

	totals, err := app.gatherLedgerTotals(user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	expenseEntries, err := app.models.Ledger.GetAllLedgerEntriesByKind(user.ID, data.EntryKindExpense)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	recent, err := app.models.Ledger.GetRecentLedgerEntries(user.ID, recentActivityLimit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	netWorth := totals.netWorth()
	netWorthValue, _ := netWorth.Float64()

	summary := &overviewSummary{
		TotalIncome:         totals.Income,
		TotalExpenses:       totals.Expenses,
		TotalAssets:         totals.Assets,
		TotalInvestments:    totals.Investments,
		TotalLiabilities:    totals.Liabilities,
		NetWorth:            netWorth,
		NetWorthFormatted:   finance.FormatMagnitude(netWorthValue),
		NetWorthInWords:     finance.NumberToWords(netWorthValue),
		ExpenseDistribution: finance.BuildDistribution(data.ToFinanceEntries(expenseEntries), finance.DefaultPalette),
		RecentActivity:      recent,
		GeneratedAt:         time.Now(),
	}

	app.background(func() {
		err := saveToCache(context.Background(), app.RedisDB, redisKey, summary, app.config.cache.summaryTTL)
		if err != nil {
			app.logger.Error("failed to cache overview summary", zap.Error(err))
		}
	})

	err = app.writeJSON(w, http.StatusOK, envelope{"overview": summary}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// getNetWorthHandler() serves the asset-side breakdown used by the net
// worth page: assets grouped by category, investments grouped separately
// with the navy palette.
func (app *application) getNetWorthHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	assetEntries, err := app.models.Ledger.GetAllLedgerEntriesByKind(user.ID, data.EntryKindAsset)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	investmentEntries, err := app.models.Ledger.GetAllLedgerEntriesByKind(user.ID, data.EntryKindInvestment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	liabilityEntries, err := app.models.Ledger.GetAllLedgerEntriesByKind(user.ID, data.EntryKindLiability)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	assets := finance.SumAmounts(data.ToFinanceEntries(assetEntries))
	investments := finance.SumAmounts(data.ToFinanceEntries(investmentEntries))
	liabilities := finance.SumAmounts(data.ToFinanceEntries(liabilityEntries))
	netWorth := assets.Sub(liabilities)
	netWorthValue, _ := netWorth.Float64()

	err = app.writeJSON(w, http.StatusOK, envelope{
		"net_worth":               netWorth,
		"net_worth_formatted":     finance.FormatMagnitude(netWorthValue),
		"net_worth_in_words":      finance.NumberToWords(netWorthValue),
		"asset_distribution":      finance.BuildDistribution(data.ToFinanceEntries(assetEntries), finance.DefaultPalette),
		"investment_distribution": finance.BuildDistribution(data.ToFinanceEntries(investmentEntries), finance.NavyPalette),
		"total_investments":       investments,
		"total_liabilities":       liabilities,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
