// Package pointio writes generated point sets in text formats for the
// sierpinski command.
package pointio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/PhlyingPhalanges/sierpinski"
)

// Round is the point set after a given number of expansion rounds.
type Round struct {
	Index  int
	Points []sierpinski.Point
}

// Format selects an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON}
}

// Write encodes rounds to w in the given format.
func Write(w io.Writer, f Format, rounds []Round) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rounds)
	case FormatJSON:
		return WriteJSON(w, rounds)
	default:
		return fmt.Errorf("pointio: unsupported format %q", f)
	}
}

// WriteCSV writes a "round,x,y" header followed by one row per point.
// Coordinates use the shortest representation that parses back exactly.
func WriteCSV(w io.Writer, rounds []Round) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"round", "x", "y"}); err != nil {
		return fmt.Errorf("pointio: write header: %w", err)
	}
	for _, r := range rounds {
		idx := strconv.Itoa(r.Index)
		for _, p := range r.Points {
			rec := []string{idx, formatFloat(p.X), formatFloat(p.Y)}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("pointio: write round %d: %w", r.Index, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes an array of {"round": n, "points": [[x, y], ...]}
// objects followed by a newline.
func WriteJSON(w io.Writer, rounds []Round) error {
	doc := make([]any, 0, len(rounds))
	for _, r := range rounds {
		pts := make([]any, 0, len(r.Points))
		for _, p := range r.Points {
			pts = append(pts, []any{p.X, p.Y})
		}
		doc = append(doc, map[string]any{
			"round":  r.Index,
			"points": pts,
		})
	}
	opts := ojg.DefaultOptions
	opts.Indent = 2
	opts.Sort = true
	if err := oj.Write(w, doc, &opts); err != nil {
		return fmt.Errorf("pointio: write json: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
