package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mpessoa/budgeter/internal/budget"
	"github.com/mpessoa/budgeter/internal/category"
)

func TestService_SetBudget(t *testing.T) {
	type args struct {
		categoryID uuid.UUID
		amount     int64
		month      string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *budget.MockRepository)
		wantErr   bool
	}

	categoryID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			args: args{categoryID: categoryID, amount: 30000, month: "2024-06"},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					SetOrReplaceBudget(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *budget.Budget) error {
						b.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "InvalidMonth",
			args:    args{categoryID: categoryID, amount: 30000, month: "June 2024"},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{categoryID: categoryID, amount: 30000, month: "2024-06"},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					SetOrReplaceBudget(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := budget.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := budget.NewService(repo)
			got, err := svc.SetBudget(context.Background(), tt.args.categoryID, tt.args.amount, tt.args.month)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.args.categoryID, got.CategoryID)
			assert.Equal(t, tt.args.amount, got.Amount)
			assert.Equal(t, tt.args.month, got.Month)
		})
	}
}

func TestService_ByMonth_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := budget.NewService(budget.NewMockRepository(ctrl))

	got, err := svc.ByMonth(context.Background(), "2024-6")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo)

	groceries := category.Category{ID: uuid.New(), Name: "Groceries", Type: category.TypeExpense}
	fun := category.Category{ID: uuid.New(), Name: "Fun", Type: category.TypeExpense}

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		MonthSummary(gomock.Any(), "2024-06", from, to).
		Return([]budget.SummaryRow{
			{Category: groceries, BudgetAmount: 30000, Spent: 12500},
			{Category: fun, BudgetAmount: 0, Spent: 8000},
		}, nil)

	got, err := svc.Summary(context.Background(), "2024-06")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(17500), got[0].Remaining)
	assert.InDelta(t, 41.67, got[0].Percentage, 0.01)

	// Spending without a budget must not divide by zero.
	assert.Equal(t, int64(-8000), got[1].Remaining)
	assert.Zero(t, got[1].Percentage)
}

func TestService_Summary_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo)

	repo.EXPECT().
		MonthSummary(gomock.Any(), "2024-06", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db error"))

	got, err := svc.Summary(context.Background(), "2024-06")
	assert.Error(t, err)
	assert.Nil(t, got)
}
