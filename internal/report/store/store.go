package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mpessoa/budgeter/internal/category"
	"github.com/mpessoa/budgeter/internal/report"
	"github.com/mpessoa/budgeter/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SpendingByCategory(ctx context.Context, from, to time.Time) ([]report.SpendingRow, error) {
	query := `
		SELECT
			c.id, c.name, c.type, c.color,
			COALESCE(SUM(t.amount), 0) AS total
		FROM categories c
		LEFT JOIN transactions t ON c.id = t.category_id
			AND t.date >= ? AND t.date <= ?
			AND t.type = 'expense'
		WHERE c.type = 'expense'
		GROUP BY c.id
		HAVING total > 0
		ORDER BY total DESC
	`

	rows, err := s.db.QueryContext(ctx, query, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("querying spending by category: %w", err)
	}
	defer rows.Close()

	var spending []report.SpendingRow

	for rows.Next() {
		var row report.SpendingRow

		var typeStr string

		if err := rows.Scan(
			&row.Category.ID, &row.Category.Name, &typeStr, &row.Category.Color,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("scanning spending row: %w", err)
		}

		row.Category.Type = category.Type(typeStr)

		spending = append(spending, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spending rows: %w", err)
	}

	return spending, nil
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
