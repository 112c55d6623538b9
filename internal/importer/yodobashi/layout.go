package yodobashi

import (
	"regexp"
	"strings"
)

// layout describes where fields live in a statement export.
// A new export revision is a new layout value.
type layout struct {
	MinColumns  int
	DateCol     int
	PayeeCol    int
	AmountCol   int
	QuantityCol int
	// DateShape decides whether a row is a data row or the footer.
	DateShape *regexp.Regexp
}

var standard = layout{
	MinColumns:  6,
	DateCol:     0,
	PayeeCol:    1,
	AmountCol:   2,
	QuantityCol: 3,
	DateShape:   regexp.MustCompile(`^\d{4}/`),
}

// isFooter reports whether cols is the trailing total row.
func (l layout) isFooter(cols []string) bool {
	first := strings.TrimSpace(cols[0])
	return first == "" || !l.DateShape.MatchString(first)
}
