package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/seed"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertCardType(ctx context.Context, ct seed.CardType) error {
	query := `
		INSERT INTO card_types (id, code, name, display_order)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, display_order = EXCLUDED.display_order
	`

	if _, err := s.db.ExecContext(ctx, query, uuid.New(), ct.Code, ct.Name, ct.DisplayOrder); err != nil {
		return fmt.Errorf("upserting card type: %w", err)
	}

	return nil
}

func (s *Store) EnsureCategory(ctx context.Context, c seed.Category) (bool, error) {
	query := `
		INSERT INTO categories (id, name, display_order)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`

	res, err := s.db.ExecContext(ctx, query, uuid.New(), c.Name, c.DisplayOrder)
	if err != nil {
		return false, fmt.Errorf("creating category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("creating category: %w", err)
	}

	return n > 0, nil
}
