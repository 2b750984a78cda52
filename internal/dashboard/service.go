package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/mpessoa/budgeter/internal/bill"
	"github.com/mpessoa/budgeter/internal/budget"
	"github.com/mpessoa/budgeter/internal/dateutil"
	"github.com/mpessoa/budgeter/internal/transaction"
)

const (
	upcomingWindowDays = 7
	recentLimit        = 5
)

// Summary is the dashboard payload for the current month. It is assembled
// from the other services and holds no logic of its own.
type Summary struct {
	TotalIncome        int64
	TotalExpenses      int64
	Savings            int64
	UpcomingBills      []*bill.Bill
	RecentTransactions []*transaction.Transaction
	BudgetStatus       []budget.Summary
}

type Service struct {
	transactions *transaction.Service
	bills        *bill.Service
	budgets      *budget.Service
	now          func() time.Time
}

func NewService(transactions *transaction.Service, bills *bill.Service, budgets *budget.Service) *Service {
	return &Service{
		transactions: transactions,
		bills:        bills,
		budgets:      budgets,
		now:          time.Now,
	}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	month := dateutil.FormatMonth(s.now())

	totals, err := s.transactions.MonthlyTotals(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	upcoming, err := s.bills.Upcoming(ctx, upcomingWindowDays)
	if err != nil {
		return nil, fmt.Errorf("upcoming bills: %w", err)
	}

	recent, err := s.transactions.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}

	budgetStatus, err := s.budgets.Summary(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("budget summary: %w", err)
	}

	return &Summary{
		TotalIncome:        totals.Income,
		TotalExpenses:      totals.Expenses,
		Savings:            totals.Income - totals.Expenses,
		UpcomingBills:      upcoming,
		RecentTransactions: recent,
		BudgetStatus:       budgetStatus,
	}, nil
}
