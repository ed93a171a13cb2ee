package sysinfo

import (
	"os"
	"sync"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
)

// EnvNoColor disables colored output when present, whatever its value.
// See https://no-color.org.
const EnvNoColor = "NO_COLOR"

// Palette is the set of escape sequences every collector colors its output
// with. The zero value is the disabled palette: all fields empty.
type Palette struct {
	Reset   string
	Blue    string
	Cyan    string
	Green   string
	Yellow  string
	Red     string
	Magenta string
}

// NewPalette returns the empty palette when noColor is set and the ANSI
// palette otherwise.
func NewPalette(noColor bool) Palette {
	if noColor {
		return Palette{}
	}
	return Palette{
		Reset:   ColorReset,
		Blue:    ColorBlue,
		Cyan:    ColorCyan,
		Green:   ColorGreen,
		Yellow:  ColorYellow,
		Red:     ColorRed,
		Magenta: ColorMagenta,
	}
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool {
	return p.Reset != ""
}

// NoColor reports whether NO_COLOR is set. The environment is read once per
// process; later calls return the memoized answer.
var NoColor = sync.OnceValue(func() bool {
	_, ok := os.LookupEnv(EnvNoColor)
	return ok
})

// DefaultPalette returns the process-wide palette selected from NoColor.
// It is resolved on first use and never changes afterwards.
var DefaultPalette = sync.OnceValue(func() Palette {
	return NewPalette(NoColor())
})

// dotGlyph is the Nerd Font circle (nf-fa-circle) used for the color row.
const dotGlyph = "\uf111"

const dotGap = "  "

// Dots returns the row of six colored circles shown under "Colors".
// Without colors the row is just the glyphs separated by the same gap.
func (c *Collector) Dots() string {
	p := c.palette
	if !p.Enabled() {
		return dotGlyph + dotGap +
			dotGlyph + dotGap +
			dotGlyph + dotGap +
			dotGlyph + dotGap +
			dotGlyph + dotGap +
			dotGlyph
	}
	return p.Blue + dotGlyph + dotGap +
		p.Cyan + dotGlyph + dotGap +
		p.Green + dotGlyph + dotGap +
		p.Yellow + dotGlyph + dotGap +
		p.Red + dotGlyph + dotGap +
		p.Magenta + dotGlyph + p.Reset
}
