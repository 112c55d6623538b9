package yodobashi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/MrJamesThe3rd/cardledger/internal/importer/yodobashi"
	"github.com/MrJamesThe3rd/cardledger/internal/statement"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Statement(t *testing.T) {
	csv := "TARO YAMADA,1234-****-****-5678,GOLD POINT CARD,,,\r\n" +
		"2025/01/05,Coffee Shop,500,1,1,500\r\n" +
		"2025/01/20,Bookstore,3200,2,2,3200\r\n" +
		",,,,,3700\r\n"

	p := yodobashi.New()
	res, err := p.Parse([]byte(csv), "202501.csv")
	require.NoError(t, err)

	assert.Equal(t, "202501", res.YearMonth)
	assert.Equal(t, int64(3700), res.DeclaredTotal)
	require.Len(t, res.Payments, 2)

	assert.Equal(t, statement.Payment{Date: date(2025, 1, 5), PayeeName: "Coffee Shop", Amount: 500, Quantity: 1}, res.Payments[0])
	assert.Equal(t, statement.Payment{Date: date(2025, 1, 20), PayeeName: "Bookstore", Amount: 3200, Quantity: 2}, res.Payments[1])
	assert.Equal(t, int64(3700), res.Sum())
}

func TestParser_ShiftJIS(t *testing.T) {
	text := "氏名,カード番号,カード名,,,\n" +
		"2025/02/01,ヨドバシカメラ,\"12,800\",1,1,\"12,800\"\n" +
		",,,,,\"12,800\"\n"

	data, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	res, err := yodobashi.New().Parse(data, "202502-2.csv")
	require.NoError(t, err)

	assert.Equal(t, "202502", res.YearMonth)
	require.Len(t, res.Payments, 1)
	assert.Equal(t, "ヨドバシカメラ", res.Payments[0].PayeeName)
	assert.Equal(t, int64(12800), res.Payments[0].Amount)
	assert.Equal(t, int64(12800), res.DeclaredTotal)
}

func TestParser_TolerantRows(t *testing.T) {
	csv := "header,,,,,\n" +
		"\n" +
		"2025/03/01,Valid,1000,,,\n" +
		"2025/03/02,Bad Amount,abc,1,1,abc\n" +
		"2025/13/40,Bad Date,100,1,1,100\n" +
		"2025/03/03,   ,200,1,1,200\n" +
		"2025/03/04,Short row\n" +
		"2025/03/05,Zero qty,300,0,0,300\n" +
		",,,,,not-a-number\n"

	res, err := yodobashi.New().Parse([]byte(csv), "202503.csv")
	require.NoError(t, err)

	require.Len(t, res.Payments, 2)
	assert.Equal(t, "Valid", res.Payments[0].PayeeName)
	assert.Equal(t, 1, res.Payments[0].Quantity)
	assert.Equal(t, "Zero qty", res.Payments[1].PayeeName)
	assert.Equal(t, 1, res.Payments[1].Quantity)
	assert.Zero(t, res.DeclaredTotal)
}

func TestParser_FooterWithoutDateShape(t *testing.T) {
	csv := "header,,,,,\n" +
		"2025/04/01,Shop,100,1,1,100\n" +
		"合計,,,,,100\n"

	res, err := yodobashi.New().Parse([]byte(csv), "202504.csv")
	require.NoError(t, err)

	require.Len(t, res.Payments, 1)
	assert.Equal(t, int64(100), res.DeclaredTotal)
}

func TestParser_EmptyStatement(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{name: "Empty", csv: ""},
		{name: "Blank lines", csv: "\r\n\r\n   \n"},
		{name: "Header only", csv: "header,,,,,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yodobashi.New().Parse([]byte(tt.csv), "202501.csv")
			assert.ErrorIs(t, err, statement.ErrEmptyStatement)
		})
	}
}

func TestParser_InvalidFileName(t *testing.T) {
	csv := "header,,,,,\n2025/01/05,Coffee Shop,500,1,1,500\n"

	_, err := yodobashi.New().Parse([]byte(csv), "january.csv")
	assert.ErrorIs(t, err, statement.ErrInvalidFileName)
}

func TestParser_FileNames(t *testing.T) {
	tests := []struct {
		name      string
		valid     bool
		yearMonth string
	}{
		{name: "202501.csv", valid: true, yearMonth: "202501"},
		{name: "202501-2.csv", valid: true, yearMonth: "202501"},
		{name: "202501-10.csv", valid: true, yearMonth: "202501"},
		{name: "20250.csv"},
		{name: "2025011.csv"},
		{name: "202501.CSV"},
		{name: "202501-.csv"},
		{name: "202501.txt"},
		{name: "not-a-statement.txt"},
		{name: "dir/202501.csv"},
	}

	p := yodobashi.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, p.IsValidFileName(tt.name))

			ym, err := p.ExtractYearMonth(tt.name)
			if !tt.valid {
				assert.ErrorIs(t, err, statement.ErrInvalidFileName)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.yearMonth, ym)
		})
	}
}

func TestParser_YearMonthMatchesFileName(t *testing.T) {
	csv := []byte("header,,,,,\n2024/12/28,Shop,100,1,1,100\n")

	for _, name := range []string{"202412.csv", "202501-1.csv", "199901.csv"} {
		res, err := yodobashi.New().Parse(csv, name)
		require.NoError(t, err)
		assert.Equal(t, name[:6], res.YearMonth)
	}
}

func TestParser_QuotedFields(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		wantPayee string
	}{
		{
			name:      "Embedded comma",
			row:       `2025/01/05,"Joe's Cafe, Ginza",500,1,1,500`,
			wantPayee: "Joe's Cafe, Ginza",
		},
		{
			name:      "Escaped quote",
			row:       `2025/01/05,"The ""Book"" Store",500,1,1,500`,
			wantPayee: `The "Book" Store`,
		},
		{
			name:      "Unterminated quote",
			row:       `2025/01/05,"Joe's Cafe,500,1,1,500`,
			wantPayee: `"Joe's Cafe`,
		},
		{
			name:      "Bare quote",
			row:       `2025/01/05,Book"store,500,1,1,500`,
			wantPayee: `Book"store`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "header,,,,,\n" + tt.row + "\n,,,,,500\n"

			res, err := yodobashi.New().Parse([]byte(csv), "202501.csv")
			require.NoError(t, err)

			require.Len(t, res.Payments, 1)
			assert.Equal(t, tt.wantPayee, res.Payments[0].PayeeName)
			assert.Equal(t, int64(500), res.Payments[0].Amount)
			assert.Equal(t, date(2025, 1, 5), res.Payments[0].Date)
			assert.Equal(t, int64(500), res.DeclaredTotal)
		})
	}
}

func TestParser_StrayQuoteKeepsFollowingRows(t *testing.T) {
	csv := "h,,,,,\n" +
		"2025/01/05,\"Joe's Cafe,500,1,1,500\n" +
		"2025/01/06,Book\"store,700,1,1,700\n" +
		",,,,,1200\n"

	res, err := yodobashi.New().Parse([]byte(csv), "202501.csv")
	require.NoError(t, err)

	require.Len(t, res.Payments, 2)
	assert.Equal(t, int64(500), res.Payments[0].Amount)
	assert.Equal(t, int64(700), res.Payments[1].Amount)
	assert.Equal(t, int64(1200), res.DeclaredTotal)
	assert.Equal(t, res.DeclaredTotal, res.Sum())
}
