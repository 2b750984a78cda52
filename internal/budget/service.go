package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	// SetOrReplaceBudget upserts on the (category, month) key and fills in
	// the stored row, including the id of a previously existing budget.
	SetOrReplaceBudget(ctx context.Context, b *Budget) error
	ListByMonth(ctx context.Context, month string) ([]*Budget, error)
	MonthSummary(ctx context.Context, month string, from, to time.Time) ([]SummaryRow, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetBudget stores the target amount for (categoryID, month), replacing any
// previous amount for the same pair.
func (s *Service) SetBudget(ctx context.Context, categoryID uuid.UUID, amount int64, month string) (*Budget, error) {
	if _, err := dateutil.ParseMonth(month); err != nil {
		return nil, err
	}

	b := &Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
	}
	if err := s.repo.SetOrReplaceBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) ByMonth(ctx context.Context, month string) ([]*Budget, error) {
	if _, err := dateutil.ParseMonth(month); err != nil {
		return nil, err
	}

	return s.repo.ListByMonth(ctx, month)
}

// Summary pairs every expense category's spend for the month with its budget.
// Categories with neither a budget nor any spending are omitted.
func (s *Service) Summary(ctx context.Context, month string) ([]Summary, error) {
	from, to, err := dateutil.MonthBounds(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.MonthSummary(ctx, month, from, to)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(rows))
	for i, row := range rows {
		summaries[i] = Summary{
			Category:     row.Category,
			BudgetAmount: row.BudgetAmount,
			Spent:        row.Spent,
			Remaining:    row.BudgetAmount - row.Spent,
			Percentage:   percentage(row.Spent, row.BudgetAmount),
		}
	}

	return summaries, nil
}

// percentage is spent over budget, with a zero budget pinned to 0 rather
// than dividing by zero.
func percentage(spent, budget int64) float64 {
	if budget <= 0 {
		return 0
	}

	return float64(spent) / float64(budget) * 100
}
