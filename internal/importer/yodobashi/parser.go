// Package yodobashi parses Yodobashi Gold Point Card statement exports.
package yodobashi

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	enc "github.com/MrJamesThe3rd/cardledger/internal/encoding"
	"github.com/MrJamesThe3rd/cardledger/internal/statement"
)

// Code is the card type code this parser is registered under.
const Code = "yodobashi"

// fileNamePattern matches "YYYYMM.csv" and "YYYYMM-N.csv".
var fileNamePattern = regexp.MustCompile(`^(\d{6})(-\d+)?\.csv$`)

type Parser struct {
	layout layout
}

func New() *Parser {
	return &Parser{layout: standard}
}

func (p *Parser) IsValidFileName(name string) bool {
	return fileNamePattern.MatchString(name)
}

func (p *Parser) ExtractYearMonth(name string) (string, error) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", fmt.Errorf("%w: %q must be YYYYMM.csv or YYYYMM-N.csv", statement.ErrInvalidFileName, name)
	}

	return m[1], nil
}

func (p *Parser) Parse(data []byte, fileName string) (*statement.Result, error) {
	decoded := enc.Decode(data)
	if decoded.Lossy {
		slog.Warn("statement contains undecodable bytes",
			"file", fileName,
			"charset", decoded.Charset,
			"guess", enc.Guess(data),
		)
	}

	lines := splitLines(decoded.Text)
	if len(lines) < 2 {
		return nil, statement.ErrEmptyStatement
	}

	yearMonth, err := p.ExtractYearMonth(fileName)
	if err != nil {
		return nil, err
	}

	res := &statement.Result{YearMonth: yearMonth}

	// Line 0 is the header.
	for i, line := range lines[1:] {
		lineNum := i + 2

		cols := splitColumns(line)
		if len(cols) < p.layout.MinColumns {
			if p.layout.DateCol < len(cols) && isDate(cols[p.layout.DateCol]) {
				slog.Warn("skipping short row", "file", fileName, "line", lineNum, "columns", len(cols))
			}

			continue
		}

		if p.layout.isFooter(cols) {
			if total, err := statement.ParseAmount(cols[len(cols)-1]); err == nil {
				res.DeclaredTotal = total
			}

			continue
		}

		payment, ok, err := p.parseRow(cols)
		if err != nil {
			slog.Warn("skipping malformed row", "file", fileName, "line", lineNum, "error", err)
			continue
		}

		if !ok {
			continue
		}

		res.Payments = append(res.Payments, payment)
	}

	return res, nil
}

// parseRow reads a data row. ok is false for rows without a payee.
func (p *Parser) parseRow(cols []string) (statement.Payment, bool, error) {
	l := p.layout

	date, err := statement.ParseDate(cols[l.DateCol])
	if err != nil {
		return statement.Payment{}, false, err
	}

	amount, err := statement.ParseAmount(cols[l.AmountCol])
	if err != nil {
		return statement.Payment{}, false, err
	}

	payee := strings.TrimSpace(cols[l.PayeeCol])
	if payee == "" {
		return statement.Payment{}, false, nil
	}

	return statement.Payment{
		Date:      date,
		PayeeName: payee,
		Amount:    amount,
		Quantity:  statement.ParseQuantity(cols[l.QuantityCol]),
	}, true, nil
}

func isDate(s string) bool {
	_, err := statement.ParseDate(s)
	return err == nil
}

// splitLines splits on any CR/LF run and drops blank lines.
func splitLines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool { return r == '\r' || r == '\n' })

	lines := raw[:0]
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	return lines
}

// splitColumns reads one line as CSV so quoted payees keep embedded commas.
// Lines with stray quotes are not valid CSV and fall back to a plain comma split.
func splitColumns(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1

	cols, err := r.Read()
	if err != nil {
		return strings.Split(line, ",")
	}

	return cols
}
