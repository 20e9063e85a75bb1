// Package numbering formats and parses the per-month document numbers
// (BOL-YYMM##### for invoices, ORC-YYMM##### for quotes, CTR-YYMM##### for
// contracts and CHM-YYMM##### for tickets).
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	InvoicePrefix  = "BOL-"
	QuotePrefix    = "ORC-"
	ContractPrefix = "CTR-"
	TicketPrefix   = "CHM-"

	sequenceDigits = 5
)

// ParseMonth validates a YYYY-MM reference month.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference month %q: %w", month, err)
	}
	return t, nil
}

// MonthKey returns the YYMM part used in numbers.
func MonthKey(month time.Time) string {
	return month.Format("0601")
}

// Format builds prefix + YYMM + zero padded sequence.
func Format(prefix string, month time.Time, seq int) string {
	return fmt.Sprintf("%s%s%0*d", prefix, MonthKey(month), sequenceDigits, seq)
}

// Sequence extracts the sequence from a number of the given prefix and month.
// ok is false when the number belongs to another prefix or month.
func Sequence(number, prefix string, month time.Time) (int, bool) {
	head := prefix + MonthKey(month)
	if !strings.HasPrefix(number, head) {
		return 0, false
	}
	n, err := strconv.Atoi(number[len(head):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MaxSequence returns the highest sequence among numbers of the month.
func MaxSequence(numbers []string, prefix string, month time.Time) int {
	max := 0
	for _, n := range numbers {
		if seq, ok := Sequence(n, prefix, month); ok && seq > max {
			max = seq
		}
	}
	return max
}

// LastDayOfMonth returns the last calendar day of month.
func LastDayOfMonth(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DueDate returns day of the reference month, clamped to the month end.
func DueDate(month time.Time, day int) time.Time {
	last := LastDayOfMonth(month)
	if day <= 0 || day > last {
		day = last
	}
	return time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
}
