package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cardledger/internal/database/databasetest"
	"github.com/MrJamesThe3rd/cardledger/internal/seed"
	"github.com/MrJamesThe3rd/cardledger/internal/seed/store"
)

func TestStore_ApplyTwice(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()

	data, err := seed.Load()
	require.NoError(t, err)

	svc := seed.NewService(store.New(db), data)
	require.NoError(t, svc.Apply(ctx))
	require.NoError(t, svc.Apply(ctx))

	var cardTypes, categories int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM card_types`).Scan(&cardTypes))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&categories))

	assert.Equal(t, 1, cardTypes)
	assert.Equal(t, 7, categories)
}

func TestStore_UpsertCardTypeRefreshesName(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	s := store.New(db)

	require.NoError(t, s.UpsertCardType(ctx, seed.CardType{Code: "yodobashi", Name: "Old", DisplayOrder: 1}))
	require.NoError(t, s.UpsertCardType(ctx, seed.CardType{Code: "yodobashi", Name: "New", DisplayOrder: 2}))

	var name string

	var order int

	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT name, display_order FROM card_types WHERE code = $1`, "yodobashi",
	).Scan(&name, &order))

	assert.Equal(t, "New", name)
	assert.Equal(t, 2, order)
}

func TestStore_EnsureCategory(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	s := store.New(db)

	created, err := s.EnsureCategory(ctx, seed.Category{Name: "食費", DisplayOrder: 1})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureCategory(ctx, seed.Category{Name: "食費", DisplayOrder: 5})
	require.NoError(t, err)
	assert.False(t, created)
}
