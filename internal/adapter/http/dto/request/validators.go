package request

import (
	"errors"
	"gestao_comercial/internal/domain/numbering"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// RegisterValidators installs the custom tags used by the request payloads
// on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("yyyymm", validateYearMonth)
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := numbering.ParseMonth(fl.Field().String())
	return err == nil
}

// parseDate accepts an empty string as "no date".
func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
