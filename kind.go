package sierpinski

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind identifies one of the fractals the engine can generate.
// The set is closed: values other than the declared constants are invalid.
type Kind uint8

const (
	// Carpet is the Sierpiński carpet: 8 third-scale copies of the unit square.
	Carpet Kind = iota

	// Gasket is the Sierpiński gasket: 3 half-scale copies of an
	// equilateral triangle.
	Gasket

	kindCount
)

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Carpet, Gasket}
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case Carpet:
		return "Carpet"
	case Gasket:
		return "Gasket"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Seed returns a copy of the kind's seed shape, or nil for an invalid kind.
func (k Kind) Seed() []Point {
	switch k {
	case Carpet:
		return StartingSquare()
	case Gasket:
		return StartingTriangle()
	default:
		return nil
	}
}

// Maps returns a copy of the kind's transform table in application order,
// or nil for an invalid kind.
func (k Kind) Maps() []Map {
	switch k {
	case Carpet:
		return append([]Map(nil), carpetMaps[:]...)
	case Gasket:
		return append([]Map(nil), gasketMaps[:]...)
	default:
		return nil
	}
}

// System returns the iterated function system for k.
func (k Kind) System() (System, error) {
	if !k.Valid() {
		return System{}, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	return System{Seed: k.Seed(), Maps: k.Maps()}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseKind].
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a fractal name to a Kind.
//
// Matching ignores case, diacritics and surrounding whitespace, and accepts
// an optional "Sierpiński" prefix, so "Carpet", "gasket" and
// "Sierpiński Carpet" all resolve. Any other name returns an error
// wrapping [ErrUnknownKind].
func ParseKind(name string) (Kind, error) {
	key := normalizeName(name)
	key = strings.TrimPrefix(key, "sierpinski ")
	for _, k := range Kinds() {
		if key == strings.ToLower(k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// normalizeName folds case, strips combining marks and collapses runs of
// whitespace. Transformers carry state, so a fresh chain is built per call.
func normalizeName(name string) string {
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(strip, name)
	if err != nil {
		plain = name
	}
	folded := cases.Fold().String(plain)
	return strings.Join(strings.Fields(folded), " ")
}
