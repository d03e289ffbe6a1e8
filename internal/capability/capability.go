// Package capability detects how many colors the attached display can
// render and expresses the answer as a palette tier value.
package capability

import (
	"fmt"
	"strconv"

	"github.com/muesli/termenv"
)

// Palette tier values. The numbering is a historical contract shared with
// theme definitions: 256 marks a full-color display and the small values
// mark progressively weaker terminals.
const (
	TierTrueColor = 256 // 24-bit color
	Tier256       = 1   // 256-color terminal
	Tier16        = 16  // 16-color terminal
	TierMono      = 2   // monochrome or unknown
)

// Detect probes the attached terminal via termenv.
func Detect() int {
	return FromProfile(termenv.ColorProfile())
}

// FromProfile maps a termenv color profile to a palette tier.
func FromProfile(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return TierTrueColor
	case termenv.ANSI256:
		return Tier256
	case termenv.ANSI:
		return Tier16
	default:
		return TierMono
	}
}

// Parse reads a tier from CLI or config input. It accepts the symbolic
// names and the raw tier numbers.
func Parse(s string) (int, error) {
	switch s {
	case "", "auto":
		return Detect(), nil
	case "truecolor", "gui":
		return TierTrueColor, nil
	case "256":
		return Tier256, nil
	case "16":
		return Tier16, nil
	case "mono":
		return TierMono, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	return 0, fmt.Errorf("unknown display tier %q", s)
}
