package wordclock

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects one of the two phrase catalogs.
type Variant string

const (
	Standard       Variant = "standard"
	Dialect        Variant = "dialect"
	DefaultVariant Variant = Standard
)

// ErrUnknownVariant is returned by ParseVariant for names it does not know.
var ErrUnknownVariant = errors.New("unknown variant")

// variantAliases maps accepted spellings to their variant. The web UI
// posts the board's own language names.
var variantAliases = map[string]Variant{
	"standard": Standard,
	"deutsch":  Standard,
	"de":       Standard,
	"dialect":  Dialect,
	"dialekt":  Dialect,
}

// ParseVariant resolves a variant name, ignoring case and surrounding space.
func ParseVariant(s string) (Variant, error) {
	if v, ok := variantAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) String() string {
	return string(v)
}
