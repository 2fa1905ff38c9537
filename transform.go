package sierpinski

// Map is a contraction p -> p/Ratio + Offset.
//
// Dividing rather than multiplying by 1/Ratio keeps every coordinate
// bit-identical to the closed-form x/3 + 1/3 style formulas.
type Map struct {
	Ratio  float64
	Offset Point
}

// Apply maps p.
func (m Map) Apply(p Point) Point {
	return p.Div(m.Ratio).Add(m.Offset)
}

// Matrix returns the affine matrix equivalent of m.
// The result can differ from Apply in the last bit because it multiplies
// by the reciprocal.
func (m Map) Matrix() Matrix {
	return Translate(m.Offset.X, m.Offset.Y).Multiply(Scale(1/m.Ratio, 1/m.Ratio))
}

// carpetMaps places third-scale copies in the eight outer cells of the unit
// square. The center cell (1/3, 1/3) is left out; that is the carpet's hole.
var carpetMaps = [...]Map{
	{Ratio: 3, Offset: Point{0, 0}},
	{Ratio: 3, Offset: Point{0, 1.0 / 3}},
	{Ratio: 3, Offset: Point{0, 2.0 / 3}},
	{Ratio: 3, Offset: Point{1.0 / 3, 0}},
	{Ratio: 3, Offset: Point{2.0 / 3, 0}},
	{Ratio: 3, Offset: Point{1.0 / 3, 2.0 / 3}},
	{Ratio: 3, Offset: Point{2.0 / 3, 1.0 / 3}},
	{Ratio: 3, Offset: Point{2.0 / 3, 2.0 / 3}},
}

// gasketMaps places half-scale copies at the three corners of the triangle.
var gasketMaps = [...]Map{
	{Ratio: 2, Offset: Point{0, 0}},
	{Ratio: 2, Offset: Point{0.5, 0}},
	{Ratio: 2, Offset: Point{0.25, sqrt3 / 4}},
}
