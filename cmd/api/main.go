package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mpessoa/budgeter/internal/bill"
	billStore "github.com/mpessoa/budgeter/internal/bill/store"
	"github.com/mpessoa/budgeter/internal/budget"
	budgetStore "github.com/mpessoa/budgeter/internal/budget/store"
	"github.com/mpessoa/budgeter/internal/category"
	categoryStore "github.com/mpessoa/budgeter/internal/category/store"
	"github.com/mpessoa/budgeter/internal/config"
	"github.com/mpessoa/budgeter/internal/dashboard"
	"github.com/mpessoa/budgeter/internal/database"
	budgeterHttp "github.com/mpessoa/budgeter/internal/http"
	billHandler "github.com/mpessoa/budgeter/internal/http/bill"
	budgetHandler "github.com/mpessoa/budgeter/internal/http/budget"
	categoryHandler "github.com/mpessoa/budgeter/internal/http/category"
	dashboardHandler "github.com/mpessoa/budgeter/internal/http/dashboard"
	paymentHandler "github.com/mpessoa/budgeter/internal/http/payment"
	reportHandler "github.com/mpessoa/budgeter/internal/http/report"
	txHandler "github.com/mpessoa/budgeter/internal/http/transaction"
	"github.com/mpessoa/budgeter/internal/report"
	reportStore "github.com/mpessoa/budgeter/internal/report/store"
	"github.com/mpessoa/budgeter/internal/transaction"
	txStore "github.com/mpessoa/budgeter/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		billService        = bill.NewService(billStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		reportService      = report.NewService(reportStore.New(db))
		dashboardService   = dashboard.NewService(transactionService, billService, budgetService)
	)

	var (
		categoryH    = categoryHandler.NewHandler(categoryService)
		transactionH = txHandler.NewHandler(transactionService)
		billH        = billHandler.NewHandler(billService)
		paymentH     = paymentHandler.NewHandler(billService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		reportH      = reportHandler.NewHandler(reportService, billService)
		dashboardH   = dashboardHandler.NewHandler(dashboardService)
	)

	router := budgeterHttp.New(categoryH, transactionH, billH, paymentH, budgetH, reportH, dashboardH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
