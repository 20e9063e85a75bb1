// Package phone normalises contact phone numbers.
package phone

import (
	"fmt"
	"gestao_comercial/internal/usecase/interfaces"
	"strings"

	"github.com/ttacon/libphonenumber"
)

const DefaultRegion = "BR"

// Normalize returns the number in E.164. Numbers that do not parse or are
// not valid for the region are returned trimmed together with an error.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	p, err := libphonenumber.Parse(raw, DefaultRegion)
	if err != nil {
		return raw, fmt.Errorf("phone %q: %w", raw, err)
	}
	if !libphonenumber.IsValidNumber(p) {
		return raw, fmt.Errorf("phone %q is not valid", raw)
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}

// Normalizer adapts Normalize to interfaces.IPhoneNormalizer.
type Normalizer struct{}

var _ interfaces.IPhoneNormalizer = Normalizer{}

func (Normalizer) Normalize(raw string) (string, error) {
	return Normalize(raw)
}
