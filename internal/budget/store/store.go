package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpessoa/budgeter/internal/budget"
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

const selectBudgetColumns = `
	b.id, b.category_id, b.amount, b.month,
	c.name, c.type, c.color
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	var catName, catType, catColor sql.NullString

	if err := s.Scan(
		&b.ID, &b.CategoryID, &b.Amount, &b.Month,
		&catName, &catType, &catColor,
	); err != nil {
		return nil, err
	}

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

// SetOrReplaceBudget inserts the budget or, when the (category_id, month)
// key already exists, replaces its amount. The stored row is read back so
// the caller sees the surviving id and the joined category.
func (s *Store) SetOrReplaceBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (id, category_id, amount, month)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (category_id, month) DO UPDATE SET amount = excluded.amount
	`

	if _, err := s.db.ExecContext(ctx, query, uuid.New(), b.CategoryID, b.Amount, b.Month); err != nil {
		return fmt.Errorf("upserting budget: %w", err)
	}

	selectQuery := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE b.category_id = ? AND b.month = ?`

	stored, err := scanBudget(s.db.QueryRowContext(ctx, selectQuery, b.CategoryID, b.Month))
	if err != nil {
		return fmt.Errorf("reading back budget: %w", err)
	}

	*b = *stored

	return nil
}

func (s *Store) ListByMonth(ctx context.Context, month string) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE b.month = ?`

	rows, err := s.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}

// MonthSummary returns, for every expense category with a budget or spending
// in the month, the budget amount and the sum of expense transactions inside
// [from, to].
func (s *Store) MonthSummary(ctx context.Context, month string, from, to time.Time) ([]budget.SummaryRow, error) {
	query := `
		SELECT
			c.id, c.name, c.type, c.color,
			COALESCE(b.amount, 0) AS budget_amount,
			COALESCE(SUM(t.amount), 0) AS spent
		FROM categories c
		LEFT JOIN budgets b ON c.id = b.category_id AND b.month = ?
		LEFT JOIN transactions t ON c.id = t.category_id AND t.date >= ? AND t.date <= ? AND t.type = 'expense'
		WHERE c.type = 'expense'
		GROUP BY c.id
		HAVING budget_amount > 0 OR spent > 0
	`

	rows, err := s.db.QueryContext(ctx, query, month, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("querying month summary: %w", err)
	}
	defer rows.Close()

	var summaries []budget.SummaryRow

	for rows.Next() {
		var row budget.SummaryRow

		var typeStr string

		if err := rows.Scan(
			&row.Category.ID, &row.Category.Name, &typeStr, &row.Category.Color,
			&row.BudgetAmount, &row.Spent,
		); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}

		row.Category.Type = category.Type(typeStr)

		summaries = append(summaries, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating summary rows: %w", err)
	}

	return summaries, nil
}
