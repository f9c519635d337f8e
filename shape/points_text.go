package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePoints reads an outline written as "x,y;x,y;...". Whitespace around
// numbers and a trailing separator are ignored. An empty string yields no
// points.
func ParsePoints(s string) ([]Point, error) {
	var out []Point
	for i, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("shape: point %d %q: want x,y", i, pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("shape: point %d x: %w", i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("shape: point %d y: %w", i, err)
		}
		out = append(out, Point{X: x, Y: y})
	}
	return out, nil
}

// FormatPoints writes pts in the form ParsePoints reads.
func FormatPoints(pts []Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	return b.String()
}
