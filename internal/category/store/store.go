package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/category"
	"github.com/MrJamesThe3rd/cardledger/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCategory = `
	SELECT cat.id, cat.name, cat.display_order, cat.created_at, cat.updated_at, COUNT(s.id)
	FROM categories cat
	LEFT JOIN payment_sources s ON s.category_id = cat.id
`

const groupCategory = " GROUP BY cat.id, cat.name, cat.display_order, cat.created_at, cat.updated_at"

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category
	if err := s.Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt, &c.SourceCount); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	query := selectCategory + groupCategory + " ORDER BY cat.display_order ASC, cat.name ASC"

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
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return cats, nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := selectCategory + " WHERE cat.id = $1" + groupCategory

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO categories (id, name, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
	`

	if _, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.DisplayOrder, now); err != nil {
		if database.IsUniqueViolation(err) {
			return category.ErrDuplicateName
		}

		return fmt.Errorf("creating category: %w", err)
	}

	c.CreatedAt, c.UpdatedAt = now, now

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	now := time.Now().UTC()

	query := `UPDATE categories SET name = $1, display_order = $2, updated_at = $3 WHERE id = $4`

	res, err := s.db.ExecContext(ctx, query, c.Name, c.DisplayOrder, now, c.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return category.ErrDuplicateName
		}

		return fmt.Errorf("updating category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	if n == 0 {
		return category.ErrNotFound
	}

	c.UpdatedAt = now

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if n == 0 {
		return category.ErrNotFound
	}

	return nil
}

func (s *Store) CountSources(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payment_sources WHERE category_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sources: %w", err)
	}

	return n, nil
}

func (s *Store) AssignSources(ctx context.Context, sourceIDs []uuid.UUID, categoryID *uuid.UUID) (int64, error) {
	if len(sourceIDs) == 0 {
		return 0, nil
	}

	args := []any{categoryID}
	placeholders := make([]string, 0, len(sourceIDs))

	for i, id := range sourceIDs {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		args = append(args, id)
	}

	query := `UPDATE payment_sources SET category_id = $1 WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("assigning sources: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("assigning sources: %w", err)
	}

	return n, nil
}
