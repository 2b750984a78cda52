package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/transaction"
)

func TestApplyShares(t *testing.T) {
	groceries := category.Category{ID: uuid.New(), Name: "Groceries"}
	fun := category.Category{ID: uuid.New(), Name: "Fun"}

	got := applyShares([]SpendingRow{
		{Category: groceries, Total: 7500},
		{Category: fun, Total: 2500},
	})

	require.Len(t, got, 2)
	assert.InDelta(t, 75.0, got[0].Percentage, 0.001)
	assert.InDelta(t, 25.0, got[1].Percentage, 0.001)

	var sum float64
	for _, r := range got {
		sum += r.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestApplyShares_Empty(t *testing.T) {
	got := applyShares(nil)
	assert.Empty(t, got)
}

func TestSpendingByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := &Service{repo: repo, now: time.Now}

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		SpendingByCategory(gomock.Any(), from, to).
		Return([]SpendingRow{
			{Category: category.Category{Name: "Rent"}, Total: 120000},
		}, nil)

	got, err := svc.SpendingByCategory(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(120000), got[0].Total)
	assert.InDelta(t, 100.0, got[0].Percentage, 0.001)
}

func TestMonthKeys(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	got := monthKeys(ref, 4)
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02", "2024-03"}, got)
}

func TestMonthlyTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := &Service{
		repo: repo,
		now: func() time.Time {
			return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		},
	}

	// Only June has activity; April and May sum to zero but still appear.
	repo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeIncome, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ transaction.Type, from, _ time.Time) (int64, error) {
			if from.Month() == time.June {
				return 500000, nil
			}
			return 0, nil
		}).
		Times(3)
	repo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeExpense, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ transaction.Type, from, _ time.Time) (int64, error) {
			if from.Month() == time.June {
				return 320000, nil
			}
			return 0, nil
		}).
		Times(3)

	got, err := svc.MonthlyTrends(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "2024-04", got[0].Month)
	assert.Zero(t, got[0].Income)
	assert.Zero(t, got[0].Savings)

	assert.Equal(t, "2024-05", got[1].Month)

	assert.Equal(t, "2024-06", got[2].Month)
	assert.Equal(t, int64(500000), got[2].Income)
	assert.Equal(t, int64(320000), got[2].Expenses)
	assert.Equal(t, int64(180000), got[2].Savings)
}

func TestMonthlyTrends_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := &Service{repo: repo, now: time.Now}

	repo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeIncome, gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db error"))

	got, err := svc.MonthlyTrends(context.Background(), 2)
	assert.Error(t, err)
	assert.Nil(t, got)
}
