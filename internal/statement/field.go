package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ParseDate parses a "YYYY/M/D" token. Month and day are range checked but
// not validated against the month length; overflow normalizes forward.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	var nums [3]int

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}

		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseAmount parses an integer amount such as "1,234", "¥1,234" or " 1234 ".
// A backslash is treated as a yen glyph since Shift_JIS maps 0x5C to it.
func ParseAmount(s string) (int64, error) {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == ',', r == '¥', r == '￥', r == '\\':
			return -1
		case unicode.IsSpace(r):
			return -1
		}

		return r
	}, s)

	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}

	return n, nil
}

// ParseQuantity parses an item count. Unparsable or zero counts yield 1 and
// never fail the row.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return 1
	}

	return n
}
