package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/bill"
	"github.com/mpessoa/budgeter/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBillColumns = `
	b.id, b.name, b.amount, b.category_id, b.frequency, b.due_day, b.is_active,
	c.name, c.type, c.color
`

func scanBill(s scanner) (*bill.Bill, error) {
	var b bill.Bill

	var freqStr string

	var catName, catType, catColor sql.NullString

	if err := s.Scan(
		&b.ID, &b.Name, &b.Amount, &b.CategoryID, &freqStr, &b.DueDay, &b.IsActive,
		&catName, &catType, &catColor,
	); err != nil {
		return nil, err
	}

	b.Frequency = bill.Frequency(freqStr)

	if catName.Valid {
		b.Category = &category.Category{
			ID:    b.CategoryID,
			Name:  catName.String,
			Type:  category.Type(catType.String),
			Color: catColor.String,
		}
	}

	return &b, nil
}

func (s *Store) CreateBill(ctx context.Context, b *bill.Bill) error {
	b.ID = uuid.New()

	query := `
		INSERT INTO recurring_bills (id, name, amount, category_id, frequency, due_day, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.Amount,
		b.CategoryID,
		b.Frequency,
		b.DueDay,
		b.IsActive,
	)
	if err != nil {
		return fmt.Errorf("creating bill: %w", err)
	}

	return nil
}

func (s *Store) GetBill(ctx context.Context, id uuid.UUID) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM recurring_bills b
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE b.id = ?`

	b, err := scanBill(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return b, nil
}

func (s *Store) ListBills(ctx context.Context) ([]*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM recurring_bills b
		LEFT JOIN categories c ON b.category_id = c.id
		ORDER BY b.due_day`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill rows: %w", err)
	}

	return bills, nil
}

func (s *Store) UpdateBill(ctx context.Context, b *bill.Bill) error {
	query := `
		UPDATE recurring_bills
		SET name = ?, amount = ?, category_id = ?, frequency = ?, due_day = ?, is_active = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		b.Name,
		b.Amount,
		b.CategoryID,
		b.Frequency,
		b.DueDay,
		b.IsActive,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating bill: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return bill.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteBill(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recurring_bills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return bill.ErrNotFound
	}

	return nil
}

const selectPaymentColumns = `
	p.id, p.recurring_bill_id, p.amount, p.paid_date, p.due_date, p.status,
	b.name, b.amount, b.frequency, b.due_day
`

func scanPayment(s scanner) (*bill.Payment, error) {
	var p bill.Payment

	var billID uuid.NullUUID

	var statusStr, paidStr, dueStr string

	var billName, billFreq sql.NullString

	var billAmount, billDueDay sql.NullInt64

	if err := s.Scan(
		&p.ID, &billID, &p.Amount, &paidStr, &dueStr, &statusStr,
		&billName, &billAmount, &billFreq, &billDueDay,
	); err != nil {
		return nil, err
	}

	p.Status = bill.PaymentStatus(statusStr)

	paid, err := time.Parse(time.DateOnly, paidStr)
	if err != nil {
		return nil, fmt.Errorf("parsing paid_date: %w", err)
	}

	p.PaidDate = paid

	due, err := time.Parse(time.DateOnly, dueStr)
	if err != nil {
		return nil, fmt.Errorf("parsing due_date: %w", err)
	}

	p.DueDate = due

	if billID.Valid {
		p.RecurringBillID = &billID.UUID

		if billName.Valid {
			p.Bill = &bill.Bill{
				ID:        billID.UUID,
				Name:      billName.String,
				Amount:    billAmount.Int64,
				Frequency: bill.Frequency(billFreq.String),
				DueDay:    int(billDueDay.Int64),
			}
		}
	}

	return &p, nil
}

func (s *Store) CreatePayment(ctx context.Context, p *bill.Payment) error {
	p.ID = uuid.New()

	query := `
		INSERT INTO bill_payments (id, recurring_bill_id, amount, paid_date, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		uuid.NullUUID{UUID: deref(p.RecurringBillID), Valid: p.RecurringBillID != nil},
		p.Amount,
		p.PaidDate.Format(time.DateOnly),
		p.DueDate.Format(time.DateOnly),
		p.Status,
	)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func deref(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.UUID{}
	}

	return *id
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*bill.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + `
		FROM bill_payments p
		LEFT JOIN recurring_bills b ON p.recurring_bill_id = b.id
		WHERE p.id = ?`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrPaymentNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter bill.PaymentFilter) ([]*bill.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + `
		FROM bill_payments p
		LEFT JOIN recurring_bills b ON p.recurring_bill_id = b.id
		WHERE 1=1`

	var args []any

	if filter.StartDate != nil {
		query += " AND p.paid_date >= ?"

		args = append(args, filter.StartDate.Format(time.DateOnly))
	}

	if filter.EndDate != nil {
		query += " AND p.paid_date <= ?"

		args = append(args, filter.EndDate.Format(time.DateOnly))
	}

	query += " ORDER BY p.paid_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*bill.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}

func (s *Store) UpdatePayment(ctx context.Context, p *bill.Payment) error {
	query := `
		UPDATE bill_payments
		SET recurring_bill_id = ?, amount = ?, paid_date = ?, due_date = ?, status = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		uuid.NullUUID{UUID: deref(p.RecurringBillID), Valid: p.RecurringBillID != nil},
		p.Amount,
		p.PaidDate.Format(time.DateOnly),
		p.DueDate.Format(time.DateOnly),
		p.Status,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return bill.ErrPaymentNotFound
	}

	return nil
}
