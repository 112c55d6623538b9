// Package statement holds the parsed form of a card statement and the
// field parsers shared by every card-type parser.
package statement

import (
	"errors"
	"time"
)

var (
	ErrMalformedDate   = errors.New("malformed date")
	ErrMalformedAmount = errors.New("malformed amount")
	ErrInvalidFileName = errors.New("invalid file name")
	ErrEmptyStatement  = errors.New("statement has no data rows")
)

// Payment is one line item read from a statement.
type Payment struct {
	Date      time.Time
	PayeeName string
	Amount    int64
	Quantity  int
}

// Result is a fully parsed statement file.
type Result struct {
	YearMonth string
	Payments  []Payment
	// DeclaredTotal is the footer total printed by the issuer, 0 when absent.
	// It is informational and never reconciled against Payments.
	DeclaredTotal int64
}

// Sum returns the total amount of all parsed payments.
func (r *Result) Sum() int64 {
	var sum int64
	for _, p := range r.Payments {
		sum += p.Amount
	}

	return sum
}
