package sierpinski

import "math"

// sqrt3 is √3, shared by the gasket seed and its apex map.
var sqrt3 = math.Sqrt(3)

// startingSquare is the carpet seed: a closed outline of the unit square.
var startingSquare = [...]Point{
	{0, 0},
	{0, 1},
	{1, 1},
	{1, 0},
	{0, 0},
}

// startingTriangle is the gasket seed: a closed outline of the
// equilateral triangle with unit base.
var startingTriangle = [...]Point{
	{0, 0},
	{0.5, sqrt3 / 2},
	{1, 0},
	{0, 0},
}

// StartingSquare returns the Carpet seed shape. The first and last points
// are both the origin. Each call returns a new slice.
func StartingSquare() []Point {
	return append([]Point(nil), startingSquare[:]...)
}

// StartingTriangle returns the Gasket seed shape. The first and last points
// are both the origin. Each call returns a new slice.
func StartingTriangle() []Point {
	return append([]Point(nil), startingTriangle[:]...)
}
