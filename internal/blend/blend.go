// Package blend implements the color arithmetic used to derive palette
// entries: normalizing named or hex colors to RGB triples and linearly
// blending colors toward each other or toward black/white.
package blend

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color token is neither a recognized
// name nor a valid hex representation.
var ErrInvalidColor = errors.New("invalid color")

// Value is a scalar color or an ordered sequence of colors from the most
// capable display tier down. Sequence elements may be empty, meaning the
// color has no representation at that tier. The zero Value is absent.
type Value struct {
	colors []string
	seq    bool
}

// Scalar wraps a single color. Scalar("") is the absent Value.
func Scalar(c string) Value {
	if c == "" {
		return Value{}
	}
	return Value{colors: []string{c}}
}

// Sequence wraps an ordered list of per-tier colors, most capable first.
func Sequence(colors ...string) Value {
	return Value{colors: colors, seq: true}
}

// IsAbsent reports whether the value holds no color at all.
func (v Value) IsAbsent() bool {
	return !v.seq && len(v.colors) == 0
}

// IsSequence reports whether the value is a tiered sequence.
func (v Value) IsSequence() bool {
	return v.seq
}

// Hex returns the scalar color, or the most capable element of a sequence.
// Returns "" for an absent value.
func (v Value) Hex() string {
	if len(v.colors) == 0 {
		return ""
	}
	return v.colors[0]
}

// Tiers returns a copy of the per-tier colors. A scalar yields a
// single-element slice.
func (v Value) Tiers() []string {
	out := make([]string, len(v.colors))
	copy(out, v.colors)
	return out
}

// At returns the element at tier index i, reusing the last element when i
// runs past the end of the sequence.
func (v Value) At(i int) string {
	if len(v.colors) == 0 {
		return ""
	}
	if i >= len(v.colors) {
		i = len(v.colors) - 1
	}
	return v.colors[i]
}

// Normalize converts a named or hex color into float RGB channels in [0,1].
func Normalize(color string) (colorful.Color, error) {
	if strings.HasPrefix(color, "#") {
		c, err := colorful.Hex(color)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
		return c, nil
	}
	if hex, ok := names[strings.ToLower(color)]; ok {
		c, err := colorful.Hex(hex)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, color)
}

// Valid reports whether the color is a recognized name or hex string.
func Valid(color string) bool {
	_, err := Normalize(color)
	return err == nil
}

// Blend linearly interpolates each channel as alpha*A + (1-alpha)*B, so
// alpha=1 yields A and alpha=0 yields B. If either input is a sequence the
// blend distributes element-wise, pairing by position; the shorter side
// contributes its last element for unmatched positions, and a position
// where either side has no representation stays absent. Returns the first
// input unchanged when either input is absent or a side fails to parse.
func Blend(a, b Value, alpha float64) Value {
	if a.IsAbsent() || b.IsAbsent() {
		return a
	}
	if a.seq || b.seq {
		n := len(a.colors)
		if len(b.colors) > n {
			n = len(b.colors)
		}
		out := make([]string, n)
		for i := range out {
			ca, cb := a.At(i), b.At(i)
			if ca == "" || cb == "" {
				continue
			}
			out[i] = blendScalar(ca, cb, alpha)
		}
		return Value{colors: out, seq: true}
	}
	return Scalar(blendScalar(a.colors[0], b.colors[0], alpha))
}

// Darken blends toward black: Darken(c, 0) is c, Darken(c, 1) is black.
// Distributes over sequences the same way Blend does.
func Darken(v Value, alpha float64) Value {
	return Blend(v, Scalar("#000000"), 1-alpha)
}

// Lighten blends toward white: Lighten(c, 0) is c, Lighten(c, 1) is white.
func Lighten(v Value, alpha float64) Value {
	return Blend(v, Scalar("#ffffff"), 1-alpha)
}

func blendScalar(a, b string, alpha float64) string {
	ca, err := Normalize(a)
	if err != nil {
		return a
	}
	cb, err := Normalize(b)
	if err != nil {
		return a
	}
	return hexString(colorful.Color{
		R: alpha*ca.R + (1-alpha)*cb.R,
		G: alpha*ca.G + (1-alpha)*cb.G,
		B: alpha*ca.B + (1-alpha)*cb.B,
	})
}

// hexString renders a color with each channel rounded to the nearest
// representable 8-bit value.
func hexString(c colorful.Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(c.R*255)),
		uint8(math.Round(c.G*255)),
		uint8(math.Round(c.B*255)))
}
