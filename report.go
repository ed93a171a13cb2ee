package main

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	ferrors "microfetch/errors"
	"microfetch/sysinfo"
)

const (
	// indent precedes every banner row.
	indent = "    "

	// gapSize controls number of spaces between logo and info.
	gapSize = 4

	// labelWidth is the padded width of the field labels.
	labelWidth = 13

	// reportSize covers realistic field values; the buffer grows past it.
	reportSize = 2048

	separator = "\ue621"
)

// Nerd Font icons shown before each label.
const (
	iconSystem  = "\uf313"
	iconKernel  = "\ue712"
	iconShell   = "\ue795"
	iconUptime  = "\uf017"
	iconDesktop = "\uf2d2"
	iconMemory  = "\uf4bc"
	iconStorage = "\U000f194e"
	iconColors  = "\ue22b"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// widthCond measures block elements as single cells regardless of the
// locale, so the logo column lines up under CJK locales too.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// renderReport lays the logo and the information side by side.
//
// Parameters:
//   - logo: Slice of strings representing the ASCII art, one string per line
//   - info: Collected system fields
//   - p: Palette used for icons and labels
//
// Returns:
//   - The complete banner, starting with an empty line and ending in a newline
//
// Logo lines are padded to the widest logo line by visible width, so color
// codes never shift the information column.
func renderReport(logo []string, info *sysinfo.SystemInfo, p sysinfo.Palette) []byte {
	infoLines := []string{
		info.UserInfo + " ~" + p.Reset,
		infoLine(p, iconSystem, "System", info.OS),
		infoLine(p, iconKernel, "Kernel", info.Kernel),
		infoLine(p, iconShell, "Shell", info.Shell),
		infoLine(p, iconUptime, "Uptime", info.Uptime),
		infoLine(p, iconDesktop, "Desktop", info.Desktop),
		infoLine(p, iconMemory, "Memory", info.Memory),
		infoLine(p, iconStorage, "Storage (/)", info.Storage),
		infoLine(p, iconColors, "Colors", info.Colors),
	}

	logoWidth := 0
	for _, line := range logo {
		if w := getVisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	maxLines := max(len(logo), len(infoLines))
	gap := strings.Repeat(" ", gapSize)

	buf := bytes.NewBuffer(make([]byte, 0, reportSize))
	buf.WriteByte('\n')
	for i := 0; i < maxLines; i++ {
		buf.WriteString(indent)

		visible := 0
		if i < len(logo) {
			buf.WriteString(logo[i])
			visible = getVisibleWidth(logo[i])
		}
		buf.WriteString(strings.Repeat(" ", logoWidth-visible))
		buf.WriteString(gap)

		if i < len(infoLines) {
			buf.WriteString(infoLines[i])
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// infoLine formats one labeled row: icon, padded label, separator, value.
func infoLine(p sysinfo.Palette, icon, label, value string) string {
	padded := sysinfo.PadRight(label, labelWidth)

	var b strings.Builder
	b.WriteString(p.Cyan)
	b.WriteString(icon)
	b.WriteString("  ")
	b.WriteString(p.Blue)
	b.WriteString(label)
	b.WriteString(p.Reset)
	b.WriteString(padded[len(label):])
	b.WriteString(separator)
	b.WriteByte(' ')
	b.WriteString(value)
	return b.String()
}

// getVisibleWidth calculates the visible width of a string excluding ANSI escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of terminal cells the string occupies
func getVisibleWidth(s string) int {
	return widthCond.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// writeReport hands the banner to w in one Write call. A write error is
// returned as is; a short write without one is reported instead of being
// retried.
func writeReport(w io.Writer, report []byte) error {
	n, err := w.Write(report)
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeIO, "failed to write output", err)
	}
	if n < len(report) {
		return ferrors.NewWithContext(ferrors.ErrCodePartialWrite, "partial write to stdout",
			map[string]any{"written": n, "want": len(report)})
	}
	return nil
}
