package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cardledger/internal/importer"
	"github.com/MrJamesThe3rd/cardledger/internal/importer/yodobashi"
)

func TestRegistry(t *testing.T) {
	r := importer.NewRegistry()
	assert.Empty(t, r.Codes())

	_, err := r.Get("yodobashi")
	assert.ErrorIs(t, err, importer.ErrUnsupportedCardType)

	p := yodobashi.New()
	r.Register("yodobashi", p)
	r.Register("another", p)

	got, err := r.Get("yodobashi")
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Equal(t, []string{"another", "yodobashi"}, r.Codes())
}

func TestBuiltin(t *testing.T) {
	r := importer.Builtin()

	p, err := r.Get(yodobashi.Code)
	require.NoError(t, err)
	assert.True(t, p.IsValidFileName("202501.csv"))
}
