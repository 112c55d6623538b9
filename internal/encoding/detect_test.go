package encoding_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/MrJamesThe3rd/cardledger/internal/encoding"
)

func shiftJIS(t *testing.T, s string) []byte {
	t.Helper()

	b, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)

	return b
}

func TestDecode_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("利用日,利用店名\n")...)

	got := encoding.Decode(input)
	assert.Equal(t, encoding.CharsetUTF8BOM, got.Charset)
	assert.Equal(t, "利用日,利用店名\n", got.Text)
	assert.False(t, got.Lossy)
}

func TestDecode_ShiftJIS(t *testing.T) {
	input := shiftJIS(t, "2025/01/05,コーヒーショップ,500,1,1,500\n")

	got := encoding.Decode(input)
	assert.Equal(t, encoding.CharsetShiftJIS, got.Charset)
	assert.Equal(t, "2025/01/05,コーヒーショップ,500,1,1,500\n", got.Text)
	assert.False(t, got.Lossy)
}

func TestDecode_PlainASCII(t *testing.T) {
	got := encoding.Decode([]byte("2025/01/05,Coffee Shop,500,1,1,500\n"))
	assert.Equal(t, encoding.CharsetUTF8, got.Charset)
	assert.Equal(t, "2025/01/05,Coffee Shop,500,1,1,500\n", got.Text)
}

func TestDecode_LeadByteOutsideSniffWindow(t *testing.T) {
	input := append(bytes.Repeat([]byte("a"), 1000), shiftJIS(t, "カ")...)

	got := encoding.Decode(input)
	assert.Equal(t, encoding.CharsetUTF8, got.Charset)
	assert.True(t, got.Lossy)
	assert.True(t, strings.HasPrefix(got.Text, strings.Repeat("a", 1000)))
}

func TestDecode_UTF8WithoutBOMIsTreatedAsShiftJIS(t *testing.T) {
	// Known limitation: UTF-8 lead bytes 0xE0-0xEF fall in the Shift_JIS range.
	got := encoding.Decode([]byte("コーヒー"))
	assert.Equal(t, encoding.CharsetShiftJIS, got.Charset)
	assert.NotEqual(t, "コーヒー", got.Text)
}

func TestDecode_Empty(t *testing.T) {
	got := encoding.Decode(nil)
	assert.Equal(t, encoding.CharsetUTF8, got.Charset)
	assert.Empty(t, got.Text)
}

func TestGuess(t *testing.T) {
	input := shiftJIS(t, strings.Repeat("ヨドバシカメラで買い物をしました。支払いは来月です。\n", 20))
	assert.NotEmpty(t, encoding.Guess(input))
}
