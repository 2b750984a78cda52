package report

import (
	"context"
	"time"

	"github.com/mpessoa/budgeter/internal/dateutil"
	"github.com/mpessoa/budgeter/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// SpendingByCategory sums expense transactions per expense category over
	// the inclusive range, dropping zero totals, ordered by total descending.
	SpendingByCategory(ctx context.Context, from, to time.Time) ([]SpendingRow, error)
	SumByTypeInRange(ctx context.Context, typ transaction.Type, from, to time.Time) (int64, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SpendingByCategory reports each category's expense total in the range and
// its percentage of the grand total across the returned categories.
func (s *Service) SpendingByCategory(ctx context.Context, from, to time.Time) ([]Spending, error) {
	rows, err := s.repo.SpendingByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return applyShares(rows), nil
}

func applyShares(rows []SpendingRow) []Spending {
	var grandTotal int64
	for _, row := range rows {
		grandTotal += row.Total
	}

	reports := make([]Spending, len(rows))
	for i, row := range rows {
		var pct float64
		if grandTotal > 0 {
			pct = float64(row.Total) / float64(grandTotal) * 100
		}

		reports[i] = Spending{
			Category:   row.Category,
			Total:      row.Total,
			Percentage: pct,
		}
	}

	return reports
}

// MonthlyTrends returns one entry per month for the n months ending with the
// current one, oldest first. Each month is summed independently over its true
// calendar bounds.
func (s *Service) MonthlyTrends(ctx context.Context, months int) ([]Trend, error) {
	trends := make([]Trend, 0, months)

	for _, key := range monthKeys(s.now(), months) {
		from, to, err := dateutil.MonthBounds(key)
		if err != nil {
			return nil, err
		}

		income, err := s.repo.SumByTypeInRange(ctx, transaction.TypeIncome, from, to)
		if err != nil {
			return nil, err
		}

		expenses, err := s.repo.SumByTypeInRange(ctx, transaction.TypeExpense, from, to)
		if err != nil {
			return nil, err
		}

		trends = append(trends, Trend{
			Month:    key,
			Income:   income,
			Expenses: expenses,
			Savings:  income - expenses,
		})
	}

	return trends, nil
}

// monthKeys lists the n month keys ending with ref's month, oldest first.
func monthKeys(ref time.Time, n int) []string {
	keys := make([]string, 0, n)

	for i := n - 1; i >= 0; i-- {
		m := time.Date(ref.Year(), ref.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		keys = append(keys, dateutil.FormatMonth(m))
	}

	return keys
}
