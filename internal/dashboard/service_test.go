package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mpessoa/budgeter/internal/bill"
	"github.com/mpessoa/budgeter/internal/budget"
	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/transaction"
)

func newTestService(t *testing.T) (*Service, *transaction.MockRepository, *bill.MockRepository, *budget.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)

	txRepo := transaction.NewMockRepository(ctrl)
	billRepo := bill.NewMockRepository(ctrl)
	budgetRepo := budget.NewMockRepository(ctrl)

	svc := NewService(
		transaction.NewService(txRepo),
		bill.NewService(billRepo),
		budget.NewService(budgetRepo),
	)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	}

	return svc, txRepo, billRepo, budgetRepo
}

func TestService_Summary(t *testing.T) {
	svc, txRepo, billRepo, budgetRepo := newTestService(t)

	txRepo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeIncome, gomock.Any(), gomock.Any()).
		Return(int64(500000), nil)
	txRepo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeExpense, gomock.Any(), gomock.Any()).
		Return(int64(320000), nil)

	billRepo.EXPECT().ListBills(gomock.Any()).Return(nil, nil)

	recent := []*transaction.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}
	txRepo.EXPECT().RecentTransactions(gomock.Any(), recentLimit).Return(recent, nil)

	budgetRepo.EXPECT().
		MonthSummary(gomock.Any(), "2024-06", gomock.Any(), gomock.Any()).
		Return([]budget.SummaryRow{
			{Category: category.Category{Name: "Groceries"}, BudgetAmount: 30000, Spent: 12500},
		}, nil)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(500000), got.TotalIncome)
	assert.Equal(t, int64(320000), got.TotalExpenses)
	assert.Equal(t, int64(180000), got.Savings)
	assert.Empty(t, got.UpcomingBills)
	assert.Equal(t, recent, got.RecentTransactions)
	require.Len(t, got.BudgetStatus, 1)
	assert.Equal(t, int64(17500), got.BudgetStatus[0].Remaining)
}

func TestService_Summary_SkipsInactiveBills(t *testing.T) {
	svc, txRepo, billRepo, budgetRepo := newTestService(t)

	txRepo.EXPECT().
		SumByTypeInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		Times(2)
	txRepo.EXPECT().RecentTransactions(gomock.Any(), recentLimit).Return(nil, nil)
	budgetRepo.EXPECT().
		MonthSummary(gomock.Any(), "2024-06", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	inactive := &bill.Bill{ID: uuid.New(), DueDay: 1, Frequency: bill.FrequencyMonthly, IsActive: false}
	billRepo.EXPECT().ListBills(gomock.Any()).Return([]*bill.Bill{inactive}, nil)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.UpcomingBills)
}

func TestService_Summary_TotalsError(t *testing.T) {
	svc, txRepo, _, _ := newTestService(t)

	txRepo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeIncome, gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db error"))

	got, err := svc.Summary(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}
