package statement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cardledger/internal/statement"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "Padded", in: "2025/01/05", want: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "Unpadded", in: "2025/1/5", want: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "Surrounding whitespace", in: " 2025/12/31 ", want: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "Day overflow normalizes", in: "2025/02/31", want: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Dash separated", in: "2025-01-05", wantErr: true},
		{name: "Two parts", in: "2025/01", wantErr: true},
		{name: "Four parts", in: "2025/01/05/1", wantErr: true},
		{name: "Month out of range", in: "2025/13/01", wantErr: true},
		{name: "Day zero", in: "2025/01/00", wantErr: true},
		{name: "Not numeric", in: "yyyy/mm/dd", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := statement.ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, statement.ErrMalformedDate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "Thousands separator", in: "1,234", want: 1234},
		{name: "Yen glyph", in: "¥1,234", want: 1234},
		{name: "Fullwidth yen glyph", in: "￥1,234", want: 1234},
		{name: "Shift_JIS yen", in: `\1,234`, want: 1234},
		{name: "Plain", in: "1234", want: 1234},
		{name: "Whitespace", in: "  1 234\t", want: 1234},
		{name: "Negative refund", in: "-500", want: -500},
		{name: "Text", in: "abc", wantErr: true},
		{name: "Decimal", in: "12.50", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := statement.ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, statement.ErrMalformedAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"2", 2},
		{" 3 ", 3},
		{"", 1},
		{"x", 1},
		{"0", 1},
		{"1.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, statement.ParseQuantity(tt.in))
		})
	}
}

func TestResult_Sum(t *testing.T) {
	res := statement.Result{
		Payments: []statement.Payment{{Amount: 500}, {Amount: 3200}},
		// Footer totals are never reconciled.
		DeclaredTotal: 9999,
	}

	assert.Equal(t, int64(3700), res.Sum())
}
