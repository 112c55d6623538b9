package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cardledger/cmd/cardledger/internal/commands"
	"github.com/MrJamesThe3rd/cardledger/internal/app"
	"github.com/MrJamesThe3rd/cardledger/internal/config"
)

const statementCSV = "header,,,,,\n" +
	"2025/01/05,Coffee Shop,500,1,1,500\n" +
	"2025/01/20,Bookstore,3200,2,2,3200\n" +
	",,,,,3700\n"

func opener(t *testing.T) commands.Opener {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Mode = config.ModeEmbedded
	cfg.DB.Path = filepath.Join(t.TempDir(), "ledger.db")

	return func(ctx context.Context) (*app.App, error) {
		return app.Open(ctx, cfg)
	}
}

func run(t *testing.T, open commands.Opener, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := commands.NewRootCommand(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeStatement(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(statementCSV), 0o600))

	return path
}

func TestImportCommands(t *testing.T) {
	open := opener(t)
	dir := t.TempDir()

	path := writeStatement(t, dir, "202501.csv")

	out, err := run(t, open, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "202501.csv: imported (2 payments)")

	out, err = run(t, open, "import", path)
	assert.ErrorIs(t, err, commands.ErrFailed)
	assert.Contains(t, out, "202501.csv: already imported")

	writeStatement(t, dir, "202502.csv")

	out, err = run(t, open, "import-dir", dir)
	assert.ErrorIs(t, err, commands.ErrFailed)
	assert.Contains(t, out, "already imported")
	assert.Contains(t, out, "imported (2 payments)")

	out, err = run(t, open, "import", filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, commands.ErrFailed)
	assert.Contains(t, out, "missing.csv: reading file")

	// An unreadable path does not stop the rest of the batch.
	next := writeStatement(t, dir, "202503.csv")

	out, err = run(t, open, "import", filepath.Join(dir, "missing.csv"), next)
	assert.ErrorIs(t, err, commands.ErrFailed)
	assert.Contains(t, out, "missing.csv: reading file")
	assert.Contains(t, out, "202503.csv: imported (2 payments)")
}

func TestHistoryAndDelete(t *testing.T) {
	open := opener(t)

	out, err := run(t, open, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "no imported files")

	_, err = run(t, open, "import", writeStatement(t, t.TempDir(), "202501.csv"))
	require.NoError(t, err)

	out, err = run(t, open, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "202501.csv")
	assert.Contains(t, out, "2 payments")

	id := regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f-]{27}`).FindString(out)
	require.NotEmpty(t, id)

	out, err = run(t, open, "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	out, err = run(t, open, "delete", id)
	assert.ErrorIs(t, err, commands.ErrFailed)
	assert.Contains(t, out, "imported file not found")

	_, err = run(t, open, "delete", "nope")
	assert.Error(t, err)
}

func TestCardTypesCommand(t *testing.T) {
	out, err := run(t, opener(t), "card-types")
	require.NoError(t, err)
	assert.Contains(t, out, "yodobashi")
	assert.Contains(t, out, "supported")
}

func TestExportCommand(t *testing.T) {
	open := opener(t)

	_, err := run(t, open, "import", writeStatement(t, t.TempDir(), "202501.csv"))
	require.NoError(t, err)

	out, err := run(t, open, "export", "202501")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,source,category,amount,quantity,year_month", lines[0])

	file := filepath.Join(t.TempDir(), "out.csv")

	out, err = run(t, open, "export", "202501", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 payments")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "date,source"))

	_, err = run(t, open, "export", "2025-01")
	assert.Error(t, err)
}
