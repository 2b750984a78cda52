package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mpessoa/budgeter/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					Amount:      1000,
					Type:        transaction.TypeExpense,
					Description: "Coffee",
					CategoryID:  uuid.New(),
					Date:        time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{
					Amount: 500,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			// Timestamps are stored date-only.
			assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got.Date)
		})
	}
}

func TestService_List(t *testing.T) {
	type args struct {
		filter transaction.ListFilter
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "Error",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantLen: 0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.List(context.Background(), tt.args.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_MonthlyTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeIncome, from, to).
		Return(int64(500000), nil)
	repo.EXPECT().
		SumByTypeInRange(gomock.Any(), transaction.TypeExpense, from, to).
		Return(int64(275000), nil)

	got, err := svc.MonthlyTotals(context.Background(), "2024-02")
	require.NoError(t, err)
	assert.Equal(t, int64(500000), got.Income)
	assert.Equal(t, int64(275000), got.Expenses)
}

func TestService_MonthlyTotals_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl))

	_, err := svc.MonthlyTotals(context.Background(), "02-2024")
	assert.Error(t, err)
}

func TestService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	repo.EXPECT().
		RecentTransactions(gomock.Any(), 5).
		Return([]*transaction.Transaction{{ID: uuid.New()}}, nil)

	got, err := svc.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
