package main

import (
	"expvar"
	"net/http"

	"github.com/SamruddhiShinde-hub/monivue/internal/data"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/justinas/alice"
)

// routes() is a method that returns a http.Handler that contains all the routes for the application
func (app *application) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.cors.trustedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	//Use alice to make a global middleware chain.
	globalMiddleware := alice.New(app.metrics, app.recoverPanic, app.rateLimit, app.authenticate).Then

	// dynamic protected middleware
	dynamicMiddleware := alice.New(app.requireAuthenticatedUser)

	// Apply the global middleware to the router
	router.Use(globalMiddleware)

	// Make our categorized routes
	v1Router := chi.NewRouter()

	v1Router.Mount("/users", app.userRoutes(&dynamicMiddleware))
	v1Router.Mount("/api", app.apiKeyRoutes())
	v1Router.With(dynamicMiddleware.Then).Mount("/income", app.ledgerRoutes(data.EntryKindIncome))
	v1Router.With(dynamicMiddleware.Then).Mount("/expenses", app.ledgerRoutes(data.EntryKindExpense))
	v1Router.With(dynamicMiddleware.Then).Mount("/assets", app.assetRoutes())
	v1Router.With(dynamicMiddleware.Then).Mount("/liabilities", app.liabilityRoutes())
	v1Router.With(dynamicMiddleware.Then).Mount("/goals", app.goalRoutes())
	v1Router.With(dynamicMiddleware.Then).Mount("/overview", app.overviewRoutes())
	v1Router.With(dynamicMiddleware.Then).Mount("/health-score", app.healthScoreRoutes())
	v1Router.With(dynamicMiddleware.Then).Mount("/calculators", app.calculatorRoutes())
	v1Router.With(dynamicMiddleware.Then).Get("/export/{collection}", app.exportCollectionHandler)
	// expose our expvar metrics
	v1Router.Method(http.MethodGet, "/debug/vars", expvar.Handler())

	// Mount the v1Router to the main base router
	router.Mount("/v1", v1Router)
	return router
}

// userRoutes() is a method that returns a chi.Router that contains all the routes for the users
func (app *application) userRoutes(dynamicMiddleware *alice.Chain) chi.Router {
	userRoutes := chi.NewRouter()
	userRoutes.Post("/", app.registerUserHandler)
	// account
	userRoutes.With(dynamicMiddleware.Then).Get("/account", app.getUserInformationHandler)
	userRoutes.With(dynamicMiddleware.Then).Patch("/account", app.updateUserInformationHandler)
	// /logout : for logging out
	userRoutes.With(dynamicMiddleware.Then).Post("/logout", app.logoutUserHandler)
	return userRoutes
}

// apiKeyRoutes() is a method that returns a chi.Router that contains all the routes for the api keys
func (app *application) apiKeyRoutes() chi.Router {
	apiKeyRoutes := chi.NewRouter()
	// initial request for token
	apiKeyRoutes.Post("/authentication", app.createAuthenticationApiKeyHandler)
	return apiKeyRoutes
}

// ledgerRoutes() builds the CRUD routes shared by every tracked collection.
// Each mount point pins one entry kind.
func (app *application) ledgerRoutes(kind data.EntryKind) chi.Router {
	ledgerRoutes := chi.NewRouter()
	ledgerRoutes.Get("/", app.listLedgerEntriesHandler(kind))
	ledgerRoutes.Post("/", app.createLedgerEntryHandler(kind))
	ledgerRoutes.Patch("/{entryID}", app.updateLedgerEntryHandler(kind))
	ledgerRoutes.Delete("/{entryID}", app.deleteLedgerEntryHandler(kind))
	return ledgerRoutes
}

// assetRoutes() nests the investment holdings under the asset collection
func (app *application) assetRoutes() chi.Router {
	assetRoutes := app.ledgerRoutes(data.EntryKindAsset)
	assetRoutes.Mount("/investments", app.ledgerRoutes(data.EntryKindInvestment))
	return assetRoutes
}

// liabilityRoutes() nests the monthly debt payments under the liability collection
func (app *application) liabilityRoutes() chi.Router {
	liabilityRoutes := app.ledgerRoutes(data.EntryKindLiability)
	liabilityRoutes.Mount("/monthly-debt", app.ledgerRoutes(data.EntryKindMonthlyDebt))
	return liabilityRoutes
}

// goalRoutes() is a method that returns a chi.Router that contains all the routes for the goals
func (app *application) goalRoutes() chi.Router {
	goalRoutes := chi.NewRouter()
	goalRoutes.Get("/", app.getGoalsForUserHandler)
	goalRoutes.Post("/", app.createNewGoalHandler)
	goalRoutes.Delete("/{goalID}", app.deleteGoalByIDHandler)
	goalRoutes.Post("/calculation", app.createNewGoalCalculationHandler)
	goalRoutes.Get("/{goalID}/calculations", app.getGoalCalculationsHandler)
	return goalRoutes
}

// overviewRoutes() serves the aggregated dashboard payloads
func (app *application) overviewRoutes() chi.Router {
	overviewRoutes := chi.NewRouter()
	overviewRoutes.Get("/", app.getOverviewHandler)
	overviewRoutes.Get("/net-worth", app.getNetWorthHandler)
	return overviewRoutes
}

// healthScoreRoutes() serves the financial health scorer
func (app *application) healthScoreRoutes() chi.Router {
	healthScoreRoutes := chi.NewRouter()
	healthScoreRoutes.Get("/", app.getFinancialHealthHandler)
	return healthScoreRoutes
}

// calculatorRoutes() serves the stateless projection calculators
func (app *application) calculatorRoutes() chi.Router {
	calculatorRoutes := chi.NewRouter()
	calculatorRoutes.Post("/sip", app.sipCalculatorHandler)
	calculatorRoutes.Post("/step-up-sip", app.stepUpSipCalculatorHandler)
	calculatorRoutes.Post("/retirement", app.retirementCalculatorHandler)
	return calculatorRoutes
}
