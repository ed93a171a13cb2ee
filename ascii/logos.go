// Package ascii provides the ASCII art logo drawn to the left of the
// system information. Logos are color-coded using ANSI escape sequences
// taken from the active palette.
package ascii

import "microfetch/sysinfo"

// GetLogo returns the NixOS snowflake logo, one string per line.
//
// Parameters:
//   - p: Palette supplying the two logo colors (blue and cyan). With the
//     empty palette the logo is plain text.
//
// Returns:
//   - A 9-line ASCII art logo, one line per banner row. Lines carry no
//     trailing padding; the renderer aligns them by visible width.
func GetLogo(p sysinfo.Palette) []string {
	b := p.Blue
	c := p.Cyan

	return []string{
		c + "     ▟█▖    " + b + "▝█▙ ▗█▛",
		c + "  ▗▄▄▟██▄▄▄▄▄" + b + "▝█▙█▛  " + c + "▖",
		c + "  ▀▀▀▀▀▀▀▀▀▀▀▘" + b + "▝██  " + c + "▟█▖",
		b + "     ▟█▛       " + b + "▝█▘" + c + "▟█▛",
		b + "▟█████▛          " + c + "▟█████▛",
		b + "   ▟█▛" + c + "▗█▖       " + c + "▟█▛",
		b + "  ▝█▛  " + c + "██▖" + b + "▗▄▄▄▄▄▄▄▄▄▄▄",
		b + "   ▝  " + c + "▟█▜█▖" + b + "▀▀▀▀▀██▛▀▀▘",
		c + "     ▟█▘ ▜█▖    " + b + "▝█▛",
	}
}
