package sierpinski

// ExpandOption configures a single expansion.
//
// Example:
//
//	pts, err := sierpinski.GenerateContext(ctx, sierpinski.Gasket, 4,
//	    sierpinski.WithRoundFunc(func(round int, pts []sierpinski.Point) {
//	        fmt.Println(round, len(pts))
//	    }))
type ExpandOption func(*expandOptions)

// expandOptions holds optional configuration for an expansion.
type expandOptions struct {
	onRound func(round int, pts []Point)
}

// defaultExpandOptions returns the default expansion options.
func defaultExpandOptions() expandOptions {
	return expandOptions{}
}

// WithRoundFunc registers fn to be called with the point set of every round,
// starting with round 0 (the seed itself). fn runs synchronously on the
// generating goroutine. Each round's slice is freshly allocated and may be
// retained, but must not be modified: it is the input of the next round.
func WithRoundFunc(fn func(round int, pts []Point)) ExpandOption {
	return func(o *expandOptions) {
		o.onRound = fn
	}
}
