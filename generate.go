package sierpinski

import (
	"context"
	"fmt"
)

// Generate returns the point set of kind after the given number of
// iterations. It is the same as GenerateContext with a background context.
//
// Output size grows as len(seed) * len(maps)^iterations (5·8^n for Carpet,
// 4·3^n for Gasket). No upper bound is imposed; callers choose one.
func Generate(kind Kind, iterations int) ([]Point, error) {
	return GenerateContext(context.Background(), kind, iterations)
}

// GenerateContext is like Generate but stops between rounds once ctx is done.
func GenerateContext(ctx context.Context, kind Kind, iterations int, opts ...ExpandOption) ([]Point, error) {
	sys, err := kind.System()
	if err != nil {
		return nil, err
	}

	log := Logger()
	log.Debug("sierpinski: generating", "kind", kind, "iterations", iterations)
	pts, err := sys.Expand(ctx, iterations, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("sierpinski: generated", "kind", kind, "iterations", iterations, "points", len(pts))
	return pts, nil
}

// GenerateByName resolves name with ParseKind and generates that fractal.
//
// An unrecognized name is not an error: the result is an empty, non-nil
// slice. A negative iteration count is still rejected with
// [ErrNegativeIterations], whatever the name.
func GenerateByName(name string, iterations int) ([]Point, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeIterations, iterations)
	}
	kind, err := ParseKind(name)
	if err != nil {
		Logger().Debug("sierpinski: unknown fractal name", "name", name)
		return []Point{}, nil
	}
	return Generate(kind, iterations)
}
