package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cardledger/internal/statement"
)

// Parser reads one card issuer's statement format.
type Parser interface {
	IsValidFileName(name string) bool
	ExtractYearMonth(name string) (string, error)
	Parse(data []byte, fileName string) (*statement.Result, error)
}

// CardType is a supported statement issuer.
type CardType struct {
	ID           uuid.UUID
	Code         string
	Name         string
	DisplayOrder int
	// Supported is true when a parser is registered for Code.
	Supported bool
}

// ImportedFile records one successfully ingested statement.
type ImportedFile struct {
	ID         uuid.UUID
	FileName   string
	CardTypeID uuid.UUID
	YearMonth  string
	ImportedAt time.Time

	// Loaded via JOIN when listing.
	CardTypeName string
	PaymentCount int
}

// Payment is a statement line persisted against its file and source.
type Payment struct {
	ID              uuid.UUID
	ImportedFileID  uuid.UUID
	PaymentSourceID uuid.UUID
	CardTypeID      uuid.UUID
	Date            time.Time
	Amount          int64
	Quantity        int
	YearMonth       string
}
