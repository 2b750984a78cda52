package bill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	CreateBill(ctx context.Context, b *Bill) error
	GetBill(ctx context.Context, id uuid.UUID) (*Bill, error)
	ListBills(ctx context.Context) ([]*Bill, error)
	UpdateBill(ctx context.Context, b *Bill) error
	DeleteBill(ctx context.Context, id uuid.UUID) error

	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]*Payment, error)
	UpdatePayment(ctx context.Context, p *Payment) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Name       string
	Amount     int64
	CategoryID uuid.UUID
	Frequency  Frequency
	DueDay     int
	IsActive   bool
}

type PaymentFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type PaymentParams struct {
	RecurringBillID *uuid.UUID
	Amount          int64
	PaidDate        time.Time
	DueDate         time.Time
	Status          PaymentStatus
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Bill, error) {
	b := &Bill{
		Name:       params.Name,
		Amount:     params.Amount,
		CategoryID: params.CategoryID,
		Frequency:  params.Frequency,
		DueDay:     params.DueDay,
		IsActive:   params.IsActive,
	}
	if err := s.repo.CreateBill(ctx, b); err != nil {
		return nil, err
	}

	b.NextDueDate = NextDueDate(b.DueDay, b.Frequency, s.now())

	return b, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	b, err := s.repo.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	b.NextDueDate = NextDueDate(b.DueDay, b.Frequency, s.now())

	return b, nil
}

func (s *Service) List(ctx context.Context) ([]*Bill, error) {
	bills, err := s.repo.ListBills(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, b := range bills {
		b.NextDueDate = NextDueDate(b.DueDay, b.Frequency, now)
	}

	return bills, nil
}

func (s *Service) Update(ctx context.Context, b *Bill) error {
	if err := s.repo.UpdateBill(ctx, b); err != nil {
		return err
	}

	b.NextDueDate = NextDueDate(b.DueDay, b.Frequency, s.now())

	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBill(ctx, id)
}

// Upcoming returns active bills due within the next windowDays days, today
// included.
func (s *Service) Upcoming(ctx context.Context, windowDays int) ([]*Bill, error) {
	bills, err := s.repo.ListBills(ctx)
	if err != nil {
		return nil, err
	}

	return upcomingWithin(bills, dateutil.Date(s.now()), windowDays), nil
}

// Pay records a paid payment against the bill. The due date is the bill's
// current derived next due date; the bill row itself is never touched, so
// paying early or late does not shift future occurrences.
func (s *Service) Pay(ctx context.Context, billID uuid.UUID, amount int64, paidDate time.Time) (*Payment, error) {
	b, err := s.repo.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	p := &Payment{
		RecurringBillID: &b.ID,
		Amount:          amount,
		PaidDate:        dateutil.Date(paidDate),
		DueDate:         NextDueDate(b.DueDay, b.Frequency, s.now()),
		Status:          PaymentStatusPaid,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Payments(ctx context.Context, filter PaymentFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

func (s *Service) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) CreatePayment(ctx context.Context, params PaymentParams) (*Payment, error) {
	if params.Status == "" {
		params.Status = PaymentStatusPaid
	}

	p := &Payment{
		RecurringBillID: params.RecurringBillID,
		Amount:          params.Amount,
		PaidDate:        dateutil.Date(params.PaidDate),
		DueDate:         dateutil.Date(params.DueDate),
		Status:          params.Status,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) UpdatePayment(ctx context.Context, p *Payment) error {
	return s.repo.UpdatePayment(ctx, p)
}
