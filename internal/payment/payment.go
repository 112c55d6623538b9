package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedName labels totals for sources without a category.
const UncategorizedName = "Uncategorized"

// Payment is a stored statement line with its source and category resolved.
type Payment struct {
	ID             uuid.UUID
	ImportedFileID uuid.UUID
	Date           time.Time
	Amount         int64
	Quantity       int
	YearMonth      string
	SourceID       uuid.UUID
	SourceName     string
	CategoryID     *uuid.UUID
	CategoryName   string
	CardTypeCode   string
	CardTypeName   string
}

type MonthPayments struct {
	YearMonth string
	Payments  []*Payment
	Total     int64
}

// Range bounds analytics by inclusive year-months ("YYYYMM") and card type code.
// Empty fields are unbounded.
type Range struct {
	From     string
	To       string
	CardType string
}

type MonthlyTotal struct {
	YearMonth string
	Total     int64
	Count     int
}

type SourceTotal struct {
	SourceID     uuid.UUID
	Name         string
	CategoryName string
	Total        int64
	Count        int
}

type CategoryTotal struct {
	CategoryID *uuid.UUID // nil for the uncategorized bucket
	Name       string
	Total      int64
	Count      int
}

// Source is a payment source with its usage summary.
type Source struct {
	ID              uuid.UUID
	Name            string
	CategoryID      *uuid.UUID
	CategoryName    string
	PaymentCount    int
	Total           int64
	LastPaymentDate *time.Time
	CreatedAt       time.Time
}

type SourceFilter struct {
	// NamePrefix matches case-insensitively.
	NamePrefix    string
	CategoryID    *uuid.UUID
	Uncategorized bool
}

type YearlyTotal struct {
	Year  int
	Total int64
	Count int
}

type SourceDetail struct {
	Source   *Source
	Payments []*Payment
	Total    int64
	Count    int
	Average  decimal.Decimal
	Yearly   []YearlyTotal
}

type RecentImport struct {
	ID           uuid.UUID
	FileName     string
	YearMonth    string
	CardTypeName string
	ImportedAt   time.Time
	PaymentCount int
}

type MonthSummary struct {
	YearMonth string
	Total     int64
	Count     int
}

type Dashboard struct {
	Current  MonthSummary
	Previous MonthSummary
	// ChangePercent is nil when the previous month has no spending.
	ChangePercent  *decimal.Decimal
	AveragePayment decimal.Decimal
	RecentImports  []*RecentImport
	TopSources     []*SourceTotal
	Categories     []*CategoryTotal
}
