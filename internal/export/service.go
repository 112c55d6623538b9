package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/MrJamesThe3rd/cardledger/internal/payment"
)

// Row is one exported payment.
type Row struct {
	Date      string `csv:"date"`
	Source    string `csv:"source"`
	Category  string `csv:"category"`
	Amount    int64  `csv:"amount"`
	Quantity  int    `csv:"quantity"`
	YearMonth string `csv:"year_month"`
}

// Service writes stored payments out as CSV.
type Service struct {
	payments *payment.Service
}

func NewService(payments *payment.Service) *Service {
	return &Service{payments: payments}
}

// WriteMonth writes the payments of yearMonth to w, header first, and
// returns the number of rows written.
func (s *Service) WriteMonth(ctx context.Context, w io.Writer, yearMonth, cardType string) (int, error) {
	month, err := s.payments.ListByMonth(ctx, yearMonth, cardType)
	if err != nil {
		return 0, fmt.Errorf("listing payments: %w", err)
	}

	rows := make([]*Row, 0, len(month.Payments))
	for _, p := range month.Payments {
		rows = append(rows, &Row{
			Date:      p.Date.Format(time.DateOnly),
			Source:    p.SourceName,
			Category:  p.CategoryName,
			Amount:    p.Amount,
			Quantity:  p.Quantity,
			YearMonth: p.YearMonth,
		})
	}

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csv.NewWriter(w))); err != nil {
		return 0, fmt.Errorf("writing csv: %w", err)
	}

	return len(rows), nil
}

// FileName is the suggested download name for a month's export.
func FileName(yearMonth, cardType string) string {
	if cardType == "" {
		return fmt.Sprintf("payments-%s.csv", yearMonth)
	}

	return fmt.Sprintf("payments-%s-%s.csv", cardType, yearMonth)
}
