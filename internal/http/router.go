package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	billHandler "github.com/mpessoa/budgeter/internal/http/bill"
	budgetHandler "github.com/mpessoa/budgeter/internal/http/budget"
	categoryHandler "github.com/mpessoa/budgeter/internal/http/category"
	dashboardHandler "github.com/mpessoa/budgeter/internal/http/dashboard"
	paymentHandler "github.com/mpessoa/budgeter/internal/http/payment"
	reportHandler "github.com/mpessoa/budgeter/internal/http/report"
	txHandler "github.com/mpessoa/budgeter/internal/http/transaction"
)

func New(
	categoriesV1 *categoryHandler.Handler,
	transactionsV1 *txHandler.Handler,
	billsV1 *billHandler.Handler,
	paymentsV1 *paymentHandler.Handler,
	budgetsV1 *budgetHandler.Handler,
	reportsV1 *reportHandler.Handler,
	dashboardV1 *dashboardHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	router.Use(middleware.Heartbeat("/api/health"))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/bills", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			billsV1.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/dashboard", dashboardV1.Routes)
	})

	return router
}
