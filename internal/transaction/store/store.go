package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/transaction"
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

const selectTransactionColumns = `
	t.id, t.amount, t.description, t.category_id, t.date, t.type, t.created_at,
	c.name, c.type, c.color
`

// scanTransaction reads a flat joined row and rebuilds the nested category value.
// Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, dateStr, createdStr string

	var catName, catType, catColor sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Amount, &tx.Description, &tx.CategoryID, &dateStr, &typeStr, &createdStr,
		&catName, &catType, &catColor,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing transaction date: %w", err)
	}

	tx.Date = date

	created, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	tx.CreatedAt = created

	// A deleted category leaves the reference orphaned; the join comes back empty.
	if catName.Valid {
		tx.Category = &category.Category{
			ID:    tx.CategoryID,
			Name:  catName.String,
			Type:  category.Type(catType.String),
			Color: catColor.String,
		}
	}

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	tx.ID = uuid.New()
	tx.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO transactions (id, amount, description, category_id, date, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		tx.Amount,
		tx.Description,
		tx.CategoryID,
		tx.Date.Format(time.DateOnly),
		tx.Type,
		tx.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = ?`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE 1=1`

	var args []any

	if filter.StartDate != nil {
		query += " AND t.date >= ?"

		args = append(args, filter.StartDate.Format(time.DateOnly))
	}

	if filter.EndDate != nil {
		query += " AND t.date <= ?"

		args = append(args, filter.EndDate.Format(time.DateOnly))
	}

	if filter.CategoryID != nil {
		query += " AND t.category_id = ?"

		args = append(args, *filter.CategoryID)
	}

	if filter.Type != nil {
		query += " AND t.type = ?"

		args = append(args, *filter.Type)
	}

	query += " ORDER BY t.date DESC, t.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = ?, description = ?, category_id = ?, date = ?, type = ?
		WHERE id = ?
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.Amount,
		tx.Description,
		tx.CategoryID,
		tx.Date.Format(time.DateOnly),
		tx.Type,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) RecentTransactions(ctx context.Context, limit int) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) SumByTypeInRange(ctx context.Context, typ transaction.Type, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = ? AND date >= ? AND date <= ?
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, query,
		typ,
		from.Format(time.DateOnly),
		to.Format(time.DateOnly),
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing transactions: %w", err)
	}

	return total, nil
}
