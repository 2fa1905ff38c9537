package sierpinski

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
)

func TestSystemSize(t *testing.T) {
	carpet, _ := Carpet.System()
	gasket, _ := Gasket.System()
	tests := []struct {
		name string
		sys  System
		n    int
		want int
	}{
		{"carpet 0", carpet, 0, 5},
		{"carpet 1", carpet, 1, 40},
		{"carpet 5", carpet, 5, 5 * 32768},
		{"gasket 0", gasket, 0, 4},
		{"gasket 3", gasket, 3, 108},
		{"gasket 10", gasket, 10, 4 * 59049},
		{"no maps", System{Seed: StartingSquare()}, 3, 0},
		{"no seed", System{Maps: carpet.Maps}, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.sys.Size(tt.n)
			if !ok {
				t.Fatalf("Size(%d) ok = false", tt.n)
			}
			if got != tt.want {
				t.Errorf("Size(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestSystemSizeOverflow(t *testing.T) {
	carpet, _ := Carpet.System()
	if _, ok := carpet.Size(64); ok {
		t.Error("Size(64) ok = true, want overflow")
	}
	if _, ok := carpet.Size(-1); ok {
		t.Error("Size(-1) ok = true, want false")
	}
	if got, ok := carpet.Size(19); !ok || got != 5*int(math.Pow(8, 19)) {
		t.Errorf("Size(19) = %d, %v", got, ok)
	}
}

func TestExpandMatchesSize(t *testing.T) {
	for _, k := range Kinds() {
		sys, _ := k.System()
		for n := range 5 {
			pts, err := sys.Expand(context.Background(), n)
			if err != nil {
				t.Fatalf("%v Expand(%d) error = %v", k, n, err)
			}
			want, _ := sys.Size(n)
			if len(pts) != want {
				t.Errorf("%v Expand(%d) len = %d, want %d", k, n, len(pts), want)
			}
		}
	}
}

func TestExpandOrder(t *testing.T) {
	// Maps are applied to one point before moving on to the next.
	sys := System{
		Seed: []Point{Pt(0, 0), Pt(1, 1)},
		Maps: []Map{
			{Ratio: 1, Offset: Pt(10, 0)},
			{Ratio: 1, Offset: Pt(20, 0)},
		},
	}
	got, err := sys.Expand(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{Pt(10, 0), Pt(20, 0), Pt(11, 1), Pt(21, 1)}
	if !slices.Equal(got, want) {
		t.Errorf("Expand(1) = %v, want %v", got, want)
	}
}

func TestExpandDoesNotModifySystem(t *testing.T) {
	sys, _ := Gasket.System()
	seed := slices.Clone(sys.Seed)
	maps := slices.Clone(sys.Maps)

	pts, err := sys.Expand(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = Pt(9, 9)
	if _, err := sys.Expand(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(sys.Seed, seed) {
		t.Errorf("seed changed: %v", sys.Seed)
	}
	if !slices.Equal(sys.Maps, maps) {
		t.Errorf("maps changed: %v", sys.Maps)
	}
}

func TestExpandNegative(t *testing.T) {
	sys, _ := Carpet.System()
	pts, err := sys.Expand(context.Background(), -1)
	if !errors.Is(err, ErrNegativeIterations) {
		t.Errorf("Expand(-1) error = %v, want ErrNegativeIterations", err)
	}
	if pts != nil {
		t.Errorf("Expand(-1) = %v, want nil", pts)
	}
}

func TestExpandCanceled(t *testing.T) {
	sys, _ := Carpet.System()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pts, err := sys.Expand(ctx, 3)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expand() error = %v, want context.Canceled", err)
	}
	if pts != nil {
		t.Errorf("Expand() returned %d points after cancel", len(pts))
	}

	// Zero rounds never reach a suspension point.
	if _, err := sys.Expand(ctx, 0); err != nil {
		t.Errorf("Expand(0) with canceled ctx error = %v, want nil", err)
	}
}

func TestExpandCanceledBetweenRounds(t *testing.T) {
	sys, _ := Gasket.System()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rounds []int
	_, err := sys.Expand(ctx, 6, WithRoundFunc(func(round int, _ []Point) {
		rounds = append(rounds, round)
		if round == 2 {
			cancel()
		}
	}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expand() error = %v, want context.Canceled", err)
	}
	if !slices.Equal(rounds, []int{0, 1, 2}) {
		t.Errorf("rounds = %v, want [0 1 2]", rounds)
	}
}

func TestWithRoundFunc(t *testing.T) {
	sys, _ := Carpet.System()
	var sizes []int
	var first []Point
	final, err := sys.Expand(context.Background(), 3, WithRoundFunc(func(round int, pts []Point) {
		if round == 0 {
			first = slices.Clone(pts)
		}
		sizes = append(sizes, len(pts))
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(sizes, []int{5, 40, 320, 2560}) {
		t.Errorf("round sizes = %v", sizes)
	}
	if !slices.Equal(first, StartingSquare()) {
		t.Errorf("round 0 = %v, want seed", first)
	}
	if len(final) != 2560 {
		t.Errorf("len(final) = %d, want 2560", len(final))
	}
}

func BenchmarkExpandCarpet5(b *testing.B) {
	sys, _ := Carpet.System()
	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = sys.Expand(ctx, 5)
	}
}

func BenchmarkExpandGasket10(b *testing.B) {
	sys, _ := Gasket.System()
	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = sys.Expand(ctx, 10)
	}
}
