package sierpinski

import (
	"context"
	"fmt"
	"math"
)

// System is an iterated function system: a seed shape and the ordered set
// of maps applied to it each round. Carpet and Gasket are both Systems; the
// expansion algorithm is the same for any System.
//
// Expand never modifies Seed or Maps, so a System may be shared between
// goroutines.
type System struct {
	Seed []Point
	Maps []Map
}

// Size returns the number of points Expand(n) produces:
// len(Seed) * len(Maps)^n. The second result is false if the count
// overflows int or n is negative.
func (s System) Size(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	size := len(s.Seed)
	for range n {
		if size == 0 {
			return 0, true
		}
		if len(s.Maps) != 0 && size > math.MaxInt/len(s.Maps) {
			return 0, false
		}
		size *= len(s.Maps)
	}
	return size, true
}

// Expand applies the maps to the seed n times and returns the final point set.
//
// Each round builds a new slice: for each input point in order, every map
// is applied in table order. Expand(0) returns a copy of the seed. The
// returned slice is owned by the caller.
//
// ctx is checked before every round; on cancellation Expand returns ctx.Err()
// and no points. A negative n returns [ErrNegativeIterations].
func (s System) Expand(ctx context.Context, n int, opts ...ExpandOption) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeIterations, n)
	}

	o := defaultExpandOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pts := append(make([]Point, 0, len(s.Seed)), s.Seed...)
	if o.onRound != nil {
		o.onRound(0, pts)
	}

	log := Logger()
	for round := 1; round <= n; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := make([]Point, 0, nextCap(len(pts), len(s.Maps)))
		for _, p := range pts {
			for _, m := range s.Maps {
				next = append(next, m.Apply(p))
			}
		}
		pts = next

		log.Debug("sierpinski: expansion round", "round", round, "points", len(pts))
		if o.onRound != nil {
			o.onRound(round, pts)
		}
	}
	return pts, nil
}

// nextCap returns the capacity for the next round, or 0 when the product
// overflows and append has to grow the slice on its own.
func nextCap(points, maps int) int {
	if maps != 0 && points > math.MaxInt/maps {
		return 0
	}
	return points * maps
}
