package commands

import (
	"fmt"

	"github.com/PhlyingPhalanges/sierpinski"
)

// menuLimit is the largest iteration count offered per kind. Output grows
// as 8^n for the carpet and 3^n for the gasket, hence the different limits.
var menuLimit = map[sierpinski.Kind]int{
	sierpinski.Carpet: 5,
	sierpinski.Gasket: 10,
}

func checkIterations(k sierpinski.Kind, n int, unbounded bool) error {
	if n < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", n)
	}
	if limit := menuLimit[k]; !unbounded && n > limit {
		return fmt.Errorf("%v is limited to %d iterations (got %d); pass --unbounded to override", k, limit, n)
	}
	return nil
}

// kindValue binds a sierpinski.Kind to a flag.
type kindValue struct {
	kind *sierpinski.Kind
}

func (v kindValue) String() string {
	if v.kind == nil {
		return ""
	}
	return v.kind.String()
}

func (v kindValue) Set(s string) error {
	return v.kind.UnmarshalText([]byte(s))
}

func (kindValue) Type() string { return "kind" }
