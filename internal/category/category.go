package category

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID
	Name         string
	DisplayOrder int
	// SourceCount is the number of payment sources filed under the category.
	SourceCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
