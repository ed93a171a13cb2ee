package ascii

import (
	"strings"
	"testing"

	"microfetch/sysinfo"
)

func TestGetLogo_PlainHasNoEscapes(t *testing.T) {
	logo := GetLogo(sysinfo.NewPalette(true))
	if len(logo) != 9 {
		t.Fatalf("GetLogo() returned %d lines; want 9", len(logo))
	}
	for i, line := range logo {
		if strings.Contains(line, "\x1b[") {
			t.Fatalf("line %d contains an escape sequence without colors: %q", i, line)
		}
		if strings.TrimRight(line, " ") != line {
			t.Fatalf("line %d has trailing padding: %q", i, line)
		}
	}
}

func TestGetLogo_ColoredMatchesPlainText(t *testing.T) {
	plain := GetLogo(sysinfo.NewPalette(true))
	colored := GetLogo(sysinfo.NewPalette(false))

	for i := range plain {
		stripped := strings.NewReplacer(sysinfo.ColorBlue, "", sysinfo.ColorCyan, "").Replace(colored[i])
		if stripped != plain[i] {
			t.Fatalf("line %d differs once colors are stripped:\n got %q\nwant %q", i, stripped, plain[i])
		}
		if !strings.HasPrefix(colored[i], sysinfo.ColorBlue) && !strings.HasPrefix(colored[i], sysinfo.ColorCyan) {
			t.Fatalf("line %d does not start with a logo color: %q", i, colored[i])
		}
	}
}
