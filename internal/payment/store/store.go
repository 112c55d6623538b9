package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectPaymentColumns = `
	p.id, p.imported_file_id, p.payment_date, p.amount, p.quantity, p.year_month,
	s.id, s.name, s.category_id, cat.name, c.code, c.name
`

const paymentJoins = `
	FROM payments p
	JOIN payment_sources s ON s.id = p.payment_source_id
	LEFT JOIN categories cat ON cat.id = s.category_id
	JOIN card_types c ON c.id = p.card_type_id
`

// scanPayment expects the selectPaymentColumns order.
func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment

	var categoryName sql.NullString

	if err := s.Scan(
		&p.ID, &p.ImportedFileID, &p.Date, &p.Amount, &p.Quantity, &p.YearMonth,
		&p.SourceID, &p.SourceName, &p.CategoryID, &categoryName, &p.CardTypeCode, &p.CardTypeName,
	); err != nil {
		return nil, err
	}

	p.CategoryName = categoryName.String

	return &p, nil
}

func (s *Store) queryPayments(ctx context.Context, query string, args ...any) ([]*payment.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*payment.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}

	return payments, nil
}

func (s *Store) ListByMonth(ctx context.Context, yearMonth, cardType string) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + paymentJoins + `WHERE p.year_month = $1`
	args := []any{yearMonth}

	if cardType != "" {
		query += " AND c.code = $2"

		args = append(args, cardType)
	}

	query += " ORDER BY p.payment_date DESC, s.name ASC"

	return s.queryPayments(ctx, query, args...)
}

func (s *Store) ListBySource(ctx context.Context, sourceID uuid.UUID, cardType string) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + paymentJoins + `WHERE p.payment_source_id = $1`
	args := []any{sourceID}

	if cardType != "" {
		query += " AND c.code = $2"

		args = append(args, cardType)
	}

	query += " ORDER BY p.payment_date DESC"

	return s.queryPayments(ctx, query, args...)
}

func (s *Store) YearMonths(ctx context.Context, cardType string) ([]string, error) {
	query := `SELECT DISTINCT p.year_month FROM payments p JOIN card_types c ON c.id = p.card_type_id`

	var args []any

	if cardType != "" {
		query += " WHERE c.code = $1"

		args = append(args, cardType)
	}

	query += " ORDER BY p.year_month DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing year-months: %w", err)
	}
	defer rows.Close()

	var months []string

	for rows.Next() {
		var ym string
		if err := rows.Scan(&ym); err != nil {
			return nil, fmt.Errorf("scanning year-month: %w", err)
		}

		months = append(months, ym)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating year-months: %w", err)
	}

	return months, nil
}

// rangeWhere builds the WHERE clause for r, numbering placeholders from argIdx.
func rangeWhere(r payment.Range, argIdx int) (string, []any, int) {
	where := " WHERE 1 = 1"

	var args []any

	if r.From != "" {
		where += fmt.Sprintf(" AND p.year_month >= $%d", argIdx)

		args = append(args, r.From)
		argIdx++
	}

	if r.To != "" {
		where += fmt.Sprintf(" AND p.year_month <= $%d", argIdx)

		args = append(args, r.To)
		argIdx++
	}

	if r.CardType != "" {
		where += fmt.Sprintf(" AND c.code = $%d", argIdx)

		args = append(args, r.CardType)
		argIdx++
	}

	return where, args, argIdx
}

func (s *Store) MonthlyTotals(ctx context.Context, r payment.Range) ([]*payment.MonthlyTotal, error) {
	where, args, _ := rangeWhere(r, 1)

	query := `
		SELECT p.year_month, CAST(SUM(p.amount) AS BIGINT), COUNT(*)
		FROM payments p
		JOIN card_types c ON c.id = p.card_type_id` + where + `
		GROUP BY p.year_month
		ORDER BY p.year_month ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []*payment.MonthlyTotal

	for rows.Next() {
		var t payment.MonthlyTotal
		if err := rows.Scan(&t.YearMonth, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning monthly total: %w", err)
		}

		totals = append(totals, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly totals: %w", err)
	}

	return totals, nil
}

func (s *Store) SourceTotals(ctx context.Context, r payment.Range, limit int) ([]*payment.SourceTotal, error) {
	where, args, argIdx := rangeWhere(r, 1)

	query := `
		SELECT s.id, s.name, cat.name, CAST(SUM(p.amount) AS BIGINT) AS total, COUNT(*)` +
		paymentJoins + where + `
		GROUP BY s.id, s.name, cat.name
		ORDER BY total DESC, s.name ASC` +
		fmt.Sprintf(" LIMIT $%d", argIdx)

	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("source totals: %w", err)
	}
	defer rows.Close()

	var totals []*payment.SourceTotal

	for rows.Next() {
		var t payment.SourceTotal

		var categoryName sql.NullString

		if err := rows.Scan(&t.SourceID, &t.Name, &categoryName, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning source total: %w", err)
		}

		t.CategoryName = categoryName.String
		totals = append(totals, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source totals: %w", err)
	}

	return totals, nil
}

func (s *Store) CategoryTotals(ctx context.Context, r payment.Range) ([]*payment.CategoryTotal, error) {
	where, args, _ := rangeWhere(r, 1)

	query := `
		SELECT cat.id, cat.name, CAST(SUM(p.amount) AS BIGINT) AS total, COUNT(*)` +
		paymentJoins + where + `
		GROUP BY cat.id, cat.name
		ORDER BY total DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	defer rows.Close()

	var totals []*payment.CategoryTotal

	for rows.Next() {
		var t payment.CategoryTotal

		var name sql.NullString

		if err := rows.Scan(&t.CategoryID, &name, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		t.Name = name.String
		totals = append(totals, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category totals: %w", err)
	}

	return totals, nil
}

const selectSourceColumns = `
	s.id, s.name, s.category_id, cat.name, s.created_at,
	COUNT(p.id), CAST(COALESCE(SUM(p.amount), 0) AS BIGINT), MAX(p.payment_date)
`

const sourceJoins = `
	FROM payment_sources s
	LEFT JOIN categories cat ON cat.id = s.category_id
	LEFT JOIN payments p ON p.payment_source_id = s.id
`

const sourceGroupBy = " GROUP BY s.id, s.name, s.category_id, cat.name, s.created_at"

func scanSource(sc scanner) (*payment.Source, error) {
	var src payment.Source

	var categoryName sql.NullString

	var last nullDate

	if err := sc.Scan(
		&src.ID, &src.Name, &src.CategoryID, &categoryName, &src.CreatedAt,
		&src.PaymentCount, &src.Total, &last,
	); err != nil {
		return nil, err
	}

	src.CategoryName = categoryName.String

	if last.Valid {
		src.LastPaymentDate = &last.Time
	}

	return &src, nil
}

func (s *Store) ListSources(ctx context.Context, filter payment.SourceFilter) ([]*payment.Source, error) {
	query := `SELECT ` + selectSourceColumns + sourceJoins + ` WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.NamePrefix != "" {
		query += fmt.Sprintf(" AND LOWER(s.name) LIKE LOWER($%d) || '%%'", argIdx)

		args = append(args, filter.NamePrefix)
		argIdx++
	}

	switch {
	case filter.Uncategorized:
		query += " AND s.category_id IS NULL"
	case filter.CategoryID != nil:
		query += fmt.Sprintf(" AND s.category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
	}

	query += sourceGroupBy + " ORDER BY s.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	var sources []*payment.Source

	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}

		sources = append(sources, src)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", err)
	}

	return sources, nil
}

func (s *Store) GetSource(ctx context.Context, id uuid.UUID) (*payment.Source, error) {
	query := `SELECT ` + selectSourceColumns + sourceJoins + ` WHERE s.id = $1` + sourceGroupBy

	src, err := scanSource(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting source: %w", err)
	}

	return src, nil
}

func (s *Store) RecentImports(ctx context.Context, limit int) ([]*payment.RecentImport, error) {
	query := `
		SELECT f.id, f.file_name, f.year_month, c.name, f.imported_at,
			(SELECT COUNT(*) FROM payments p WHERE p.imported_file_id = f.id)
		FROM imported_files f
		JOIN card_types c ON c.id = f.card_type_id
		ORDER BY f.imported_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent imports: %w", err)
	}
	defer rows.Close()

	var imports []*payment.RecentImport

	for rows.Next() {
		var ri payment.RecentImport
		if err := rows.Scan(&ri.ID, &ri.FileName, &ri.YearMonth, &ri.CardTypeName, &ri.ImportedAt, &ri.PaymentCount); err != nil {
			return nil, fmt.Errorf("scanning recent import: %w", err)
		}

		imports = append(imports, &ri)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent imports: %w", err)
	}

	return imports, nil
}

// nullDate scans aggregated dates, which SQLite returns as text and
// PostgreSQL as a time.
type nullDate struct {
	Time  time.Time
	Valid bool
}

var dateLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.DateTime,
	time.DateOnly,
}

func (d *nullDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Valid = false
		return nil
	case time.Time:
		d.Time, d.Valid = v, true
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("unsupported date value %T", src)
	}
}

func (d *nullDate) parse(s string) error {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time, d.Valid = t, true
			return nil
		}
	}

	return fmt.Errorf("unrecognized date %q", s)
}
