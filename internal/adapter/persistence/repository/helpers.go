package repository

import (
	"encoding/json"
	"errors"
	"gestao_comercial/internal/usecase/interfaces"
	"time"

	"github.com/shopspring/decimal"
)

// Timestamps are stored as RFC3339Nano strings and money as decimal strings.

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func stringToTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := stringToTime(s)
	return &t
}

func decimalToString(d decimal.Decimal) string {
	return d.String()
}

func stringToDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Nested values (snapshots, line items, audit trail) are kept as JSON strings.
func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func fromJSON(s string, v any) {
	if s == "" {
		return
	}
	_ = json.Unmarshal([]byte(s), v)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conflict maps a failed create condition to interfaces.ErrAlreadyExists.
func conflict(err error) error {
	if errors.Is(err, errConditionFailed) {
		return interfaces.ErrAlreadyExists
	}
	return err
}
