// Package sierpinski generates the point sets of the Sierpiński carpet and
// the Sierpiński gasket with an iterated function system (IFS).
//
// # Overview
//
// Each fractal is a seed shape plus an ordered table of contraction maps.
// One round of expansion replaces every point with its image under every
// map, so after n rounds a fractal has len(seed) * len(maps)^n points:
//
//	Carpet: 5 seed points, 8 maps -> 5·8^n
//	Gasket: 4 seed points, 3 maps -> 4·3^n
//
// All generated points lie in the unit square [0,1]x[0,1]; scaling them to
// a display surface is left to the caller.
//
// # Quick Start
//
//	import "github.com/PhlyingPhalanges/sierpinski"
//
//	pts, err := sierpinski.Generate(sierpinski.Gasket, 3)
//	if err != nil {
//	    return err
//	}
//	// len(pts) == 108
//
// # Names
//
// [ParseKind] is the only place text is matched to a [Kind].
// [GenerateByName] keeps the lenient behaviour of returning an empty
// result for an unknown name; prefer the typed [Generate] where possible.
//
// # Concurrency
//
// Seeds and map tables are never modified, and each call owns its working
// slices, so Generate may be called from any number of goroutines.
// Use [GenerateContext] to stop a large expansion between rounds.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package sierpinski
