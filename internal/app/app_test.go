package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cardledger/internal/app"
	"github.com/MrJamesThe3rd/cardledger/internal/database"
	"github.com/MrJamesThe3rd/cardledger/internal/database/databasetest"
)

func TestNew(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()

	a, err := app.New(ctx, db, database.DriverSQLite, 0)
	require.NoError(t, err)

	cts, err := a.Imports.CardTypes(ctx)
	require.NoError(t, err)
	require.Len(t, cts, 1)
	assert.True(t, cts[0].Supported)

	cats, err := a.Categories.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cats)

	// Bootstrapping an existing database is a no-op.
	_, err = app.New(ctx, db, database.DriverSQLite, 0)
	require.NoError(t, err)

	again, err := a.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(cats))
}
