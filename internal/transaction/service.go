package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	RecentTransactions(ctx context.Context, limit int) ([]*Transaction, error)
	SumByTypeInRange(ctx context.Context, typ Type, from, to time.Time) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount      int64
	Description string
	CategoryID  uuid.UUID
	Date        time.Time
	Type        Type
}

type ListFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *Type
}

// Totals holds a month's income and expense sums in cents.
type Totals struct {
	Income   int64
	Expenses int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		Amount:      params.Amount,
		Description: params.Description,
		CategoryID:  params.CategoryID,
		Date:        dateutil.Date(params.Date),
		Type:        params.Type,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// Recent returns the most recent transactions ordered by date descending,
// ties broken by most recently created.
func (s *Service) Recent(ctx context.Context, limit int) ([]*Transaction, error) {
	return s.repo.RecentTransactions(ctx, limit)
}

func (s *Service) SumByTypeInRange(ctx context.Context, typ Type, from, to time.Time) (int64, error) {
	return s.repo.SumByTypeInRange(ctx, typ, from, to)
}

// MonthlyTotals sums income and expenses over the month's true calendar bounds.
func (s *Service) MonthlyTotals(ctx context.Context, month string) (Totals, error) {
	from, to, err := dateutil.MonthBounds(month)
	if err != nil {
		return Totals{}, err
	}

	income, err := s.repo.SumByTypeInRange(ctx, TypeIncome, from, to)
	if err != nil {
		return Totals{}, err
	}

	expenses, err := s.repo.SumByTypeInRange(ctx, TypeExpense, from, to)
	if err != nil {
		return Totals{}, err
	}

	return Totals{Income: income, Expenses: expenses}, nil
}
