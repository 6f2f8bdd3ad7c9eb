package dataset

import (
	"fmt"
	"strings"
)

// dateLayout is the canonical on-disk date format.
const dateLayout = "2006-01-02"

// FormatFloat formats a float64 value for CSV output with up to six decimal
// places and trailing zeros removed, so whole numbers round-trip as integers.
func FormatFloat(f float64) string {
	s := fmt.Sprintf("%.6f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}

// FormatCell renders a cell for CSV output. Null cells render as the empty
// string regardless of kind.
func FormatCell(c Cell, kind Kind) string {
	if c.Null {
		return ""
	}
	switch kind {
	case KindNumber:
		return FormatFloat(c.Num)
	case KindDate:
		return c.Date.Format(dateLayout)
	default:
		return c.Str
	}
}
