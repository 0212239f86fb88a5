package seat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"flightbooking/internal/domain"
)

const (
	// FirstRow is the first row number handed out to passengers.
	FirstRow    = 12
	SeatsPerRow = 4
)

// Columns are the seat letters of every row.
var Columns = []string{"A", "B", "C", "D"}

// Layout is the inclusive row range valid for a flight.
type Layout struct {
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
}

// LayoutFor derives the row range from a seat capacity: ceil(capacity/4)
// rows starting at FirstRow, never fewer than one.
func LayoutFor(capacity int) Layout {
	rows := (capacity + SeatsPerRow - 1) / SeatsPerRow
	if rows < 1 {
		rows = 1
	}
	return Layout{StartRow: FirstRow, EndRow: FirstRow + rows - 1}
}

func (l Layout) Rows() int { return l.EndRow - l.StartRow + 1 }

var patternCache sync.Map // Layout -> *regexp.Regexp

// Pattern matches a normalized seat code: every row of the layout spelled
// out, followed by one column letter.
func (l Layout) Pattern() *regexp.Regexp {
	if re, ok := patternCache.Load(l); ok {
		return re.(*regexp.Regexp)
	}

	rows := make([]string, 0, l.Rows())
	for r := l.StartRow; r <= l.EndRow; r++ {
		rows = append(rows, strconv.Itoa(r))
	}
	re := regexp.MustCompile("^(" + strings.Join(rows, "|") + ")[" + strings.Join(Columns, "") + "]$")

	actual, _ := patternCache.LoadOrStore(l, re)
	return actual.(*regexp.Regexp)
}

// Valid reports whether code, after normalization, names a seat in the layout.
func (l Layout) Valid(code string) bool {
	return l.Pattern().MatchString(NormalizeCode(code))
}

// AllowedMessage describes the valid range, e.g.
// "Allowed rows 12–23 and columns A–D (e.g., 14C)".
func (l Layout) AllowedMessage() string {
	example := l.StartRow + 2
	if example > l.EndRow {
		example = l.EndRow
	}
	return fmt.Sprintf("Allowed rows %d–%d and columns %s–%s (e.g., %d%s)",
		l.StartRow, l.EndRow, Columns[0], Columns[len(Columns)-1], example, Columns[2])
}

// Codes lists every seat of the layout in row-major order.
func (l Layout) Codes() []string {
	out := make([]string, 0, l.Rows()*len(Columns))
	for r := l.StartRow; r <= l.EndRow; r++ {
		for _, col := range Columns {
			out = append(out, strconv.Itoa(r)+col)
		}
	}
	return out
}

// NormalizeCode trims and upper-cases a seat code (" 14c " -> "14C").
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks code against the layout for capacity. The returned
// ValidationError carries the allowed-range message.
func Validate(code string, capacity int) error {
	l := LayoutFor(capacity)
	if l.Valid(code) {
		return nil
	}
	return domain.ValidationError{Field: "seat", Msg: l.AllowedMessage()}
}
