package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SamruddhiShinde-hub/monivue/internal/finance"
	"go.uber.org/zap"
)

// healthSummary is the cached financial health payload: the derived ratios,
// the banded score table and the normalized dashboard presentation.
type healthSummary struct {
	Metrics     finance.HealthMetrics `json:"metrics"`
	Score       finance.HealthScore   `json:"score"`
	Normalized  int                   `json:"normalized_score"`
	Grade       string                `json:"grade"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// getFinancialHealthHandler() derives the four health ratios from the
// user's ledger, bands them and serves both the detailed table and the
// dashboard score. An undefined ratio (for example a savings rate with no
// recorded income) is surfaced as an NA metric rather than a zero.
func (app *application) getFinancialHealthHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	redisKey := app.returnFormattedRedisKeys(RedisHealthSummaryPrefix, user.ID)

	cached, err := getFromCache[healthSummary](r.Context(), app.RedisDB, redisKey)
	if err == nil {
		err = app.writeJSON(w, http.StatusOK, envelope{"financial_health": cached}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if !errors.Is(err, ErrNoDataFoundInRedis) {
		app.logger.Error("failed to read health summary from cache", zap.Error(err))
	}

	totals, err := app.gatherLedgerTotals(user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	metrics := finance.DeriveHealthMetrics(
		totals.Income,
		totals.Expenses,
		totals.Investments,
		totals.Assets,
		totals.Liabilities,
		totals.FixedDeposits,
		totals.MonthlyDebt,
	)
	score := finance.ScoreFinancialHealth(metrics)

	summary := &healthSummary{
		Metrics:     metrics,
		Score:       score,
		Normalized:  score.Normalized(),
		Grade:       score.Grade(),
		GeneratedAt: time.Now(),
	}

	app.background(func() {
		err := saveToCache(context.Background(), app.RedisDB, redisKey, summary, app.config.cache.summaryTTL)
		if err != nil {
			app.logger.Error("failed to cache health summary", zap.Error(err))
		}
	})

	err = app.writeJSON(w, http.StatusOK, envelope{"financial_health": summary}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
