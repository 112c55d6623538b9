package payment

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidYearMonth = errors.New("year-month must be YYYYMM")
)

const (
	DefaultSourceLimit = 10
	dashboardTopN      = 5
	recentImportsN     = 5
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])$`)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	ListByMonth(ctx context.Context, yearMonth, cardType string) ([]*Payment, error)
	YearMonths(ctx context.Context, cardType string) ([]string, error)
	MonthlyTotals(ctx context.Context, r Range) ([]*MonthlyTotal, error)
	SourceTotals(ctx context.Context, r Range, limit int) ([]*SourceTotal, error)
	CategoryTotals(ctx context.Context, r Range) ([]*CategoryTotal, error)

	ListSources(ctx context.Context, filter SourceFilter) ([]*Source, error)
	GetSource(ctx context.Context, id uuid.UUID) (*Source, error)
	ListBySource(ctx context.Context, sourceID uuid.UUID, cardType string) ([]*Payment, error)

	RecentImports(ctx context.Context, limit int) ([]*RecentImport, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ValidYearMonth reports whether s is a "YYYYMM" period.
func ValidYearMonth(s string) bool {
	return yearMonthPattern.MatchString(s)
}

// YearMonthOf formats t as "YYYYMM".
func YearMonthOf(t time.Time) string {
	return t.Format("200601")
}

// ListByMonth returns the month's payments, newest first, with their total.
func (s *Service) ListByMonth(ctx context.Context, yearMonth, cardType string) (*MonthPayments, error) {
	if !ValidYearMonth(yearMonth) {
		return nil, ErrInvalidYearMonth
	}

	payments, err := s.repo.ListByMonth(ctx, yearMonth, cardType)
	if err != nil {
		return nil, err
	}

	res := &MonthPayments{YearMonth: yearMonth, Payments: payments}
	for _, p := range payments {
		res.Total += p.Amount
	}

	return res, nil
}

// YearMonths lists the periods that have payments, newest first.
func (s *Service) YearMonths(ctx context.Context, cardType string) ([]string, error) {
	return s.repo.YearMonths(ctx, cardType)
}

func (s *Service) MonthlyTotals(ctx context.Context, r Range) ([]*MonthlyTotal, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	return s.repo.MonthlyTotals(ctx, r)
}

// SourceTotals returns the sources with the highest spend. A limit of 0 uses DefaultSourceLimit.
func (s *Service) SourceTotals(ctx context.Context, r Range, limit int) ([]*SourceTotal, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultSourceLimit
	}

	return s.repo.SourceTotals(ctx, r, limit)
}

// CategoryTotals groups spend by category, largest first. Sources without a
// category are reported under UncategorizedName.
func (s *Service) CategoryTotals(ctx context.Context, r Range) ([]*CategoryTotal, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	totals, err := s.repo.CategoryTotals(ctx, r)
	if err != nil {
		return nil, err
	}

	for _, t := range totals {
		if t.CategoryID == nil {
			t.Name = UncategorizedName
		}
	}

	slices.SortStableFunc(totals, func(a, b *CategoryTotal) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		default:
			return 0
		}
	})

	return totals, nil
}

func (s *Service) Sources(ctx context.Context, filter SourceFilter) ([]*Source, error) {
	return s.repo.ListSources(ctx, filter)
}

// SourceDetail returns one source with its payments and yearly totals, newest year first.
func (s *Service) SourceDetail(ctx context.Context, id uuid.UUID, cardType string) (*SourceDetail, error) {
	src, err := s.repo.GetSource(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.ListBySource(ctx, id, cardType)
	if err != nil {
		return nil, err
	}

	detail := &SourceDetail{Source: src, Payments: payments, Count: len(payments)}

	byYear := make(map[int]*YearlyTotal)

	for _, p := range payments {
		detail.Total += p.Amount

		y := p.Date.Year()
		if byYear[y] == nil {
			byYear[y] = &YearlyTotal{Year: y}
		}

		byYear[y].Total += p.Amount
		byYear[y].Count++
	}

	detail.Average = average(detail.Total, detail.Count)

	for _, yt := range byYear {
		detail.Yearly = append(detail.Yearly, *yt)
	}

	slices.SortFunc(detail.Yearly, func(a, b YearlyTotal) int { return b.Year - a.Year })

	return detail, nil
}

// Dashboard summarizes the calendar month containing now against the month before it.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	current := YearMonthOf(now)
	previous := YearMonthOf(time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location()))

	monthly, err := s.repo.MonthlyTotals(ctx, Range{From: previous, To: current})
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	d := &Dashboard{
		Current:  MonthSummary{YearMonth: current},
		Previous: MonthSummary{YearMonth: previous},
	}

	for _, m := range monthly {
		switch m.YearMonth {
		case current:
			d.Current.Total, d.Current.Count = m.Total, m.Count
		case previous:
			d.Previous.Total, d.Previous.Count = m.Total, m.Count
		}
	}

	d.ChangePercent = changePercent(d.Previous.Total, d.Current.Total)
	d.AveragePayment = average(d.Current.Total, d.Current.Count)

	if d.RecentImports, err = s.repo.RecentImports(ctx, recentImportsN); err != nil {
		return nil, fmt.Errorf("recent imports: %w", err)
	}

	thisMonth := Range{From: current, To: current}

	if d.TopSources, err = s.repo.SourceTotals(ctx, thisMonth, dashboardTopN); err != nil {
		return nil, fmt.Errorf("top sources: %w", err)
	}

	if d.Categories, err = s.CategoryTotals(ctx, thisMonth); err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}

	return d, nil
}

func (r Range) validate() error {
	if r.From != "" && !ValidYearMonth(r.From) {
		return fmt.Errorf("from: %w", ErrInvalidYearMonth)
	}

	if r.To != "" && !ValidYearMonth(r.To) {
		return fmt.Errorf("to: %w", ErrInvalidYearMonth)
	}

	return nil
}

// changePercent is the month-over-month change rounded to one decimal place.
func changePercent(prev, cur int64) *decimal.Decimal {
	if prev == 0 {
		return nil
	}

	p := decimal.NewFromInt(cur - prev).
		Div(decimal.NewFromInt(prev)).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	return &p
}

func average(total int64, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(count))).Round(0)
}
