package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

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

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr string

	if err := s.Scan(&c.ID, &c.Name, &typeStr, &c.Color); err != nil {
		return nil, err
	}

	c.Type = category.Type(typeStr)

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	c.ID = uuid.New()

	query := `
		INSERT INTO categories (id, name, type, color)
		VALUES (?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.Type, c.Color); err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT id, name, type, color FROM categories WHERE id = ?`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	query := `SELECT id, name, type, color FROM categories ORDER BY type, name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET name = ?, type = ?, color = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, c.Name, c.Type, c.Color, c.ID)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}
