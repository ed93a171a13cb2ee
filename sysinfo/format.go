// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"math"
	"strings"
)

const (
	kib = 1024
	gib = 1024 * 1024 * 1024
)

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate binary unit (B, KiB, MiB, GiB, TiB, PiB)
//
// Example: FormatBytes(1536) returns "1.5 KiB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatUsage renders a used/total pair given in GiB.
//
// Parameters:
//   - used: Used amount in GiB
//   - total: Total amount in GiB
//   - p: Palette used to color the percentage
//
// Returns:
//   - "{used} GiB / {total} GiB ({pct}%)" with two decimals for the amounts
//     and the percentage rounded to the nearest integer
//
// A zero total reports 0% rather than dividing by zero.
func FormatUsage(used, total float64, p Palette) string {
	return fmt.Sprintf("%.2f GiB / %.2f GiB (%s%.0f%%%s)", used, total, p.Cyan, usagePercent(used, total), p.Reset)
}

// usagePercent rounds half away from zero (12.5 -> 13) for both memory and
// storage.
func usagePercent(used, total float64) float64 {
	if total <= 0 {
		return 0
	}
	pct := math.Round(used / total * 100)
	if pct == 0 {
		// normalizes -0
		return 0
	}
	return pct
}

// PadRight pads a string with spaces to reach a minimum width.
//
// Parameters:
//   - s: The string to pad
//   - width: The desired minimum width
//
// Returns:
//   - The padded string
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count uint64) string {
	if count != 1 {
		return "s"
	}
	return ""
}
