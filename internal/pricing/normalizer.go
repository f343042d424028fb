package pricing

// LineNormalizer adjusts a play's line count before it is priced.
//
// Implementations must accept any input >= 0, return a value >= 0 and be
// monotonic non-decreasing: a longer script never costs less.
type LineNormalizer interface {
	Normalize(lines int) int
}

// LineNormalizerFunc adapts a plain function to LineNormalizer.
type LineNormalizerFunc func(lines int) int

func (f LineNormalizerFunc) Normalize(lines int) int { return f(lines) }

const (
	DefaultMinLines = 1000
	DefaultMaxLines = 4000
)

// ClampLines bills anything shorter than Min as Min and anything longer than
// Max as Max.
type ClampLines struct {
	Min int
	Max int
}

// DefaultClamp returns the standard 1000..4000 clamp.
func DefaultClamp() ClampLines {
	return ClampLines{Min: DefaultMinLines, Max: DefaultMaxLines}
}

func (c ClampLines) Normalize(lines int) int {
	if lines < c.Min {
		return c.Min
	}
	if lines > c.Max {
		return c.Max
	}
	return lines
}
