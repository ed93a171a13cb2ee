package sysinfo

import (
	"math"
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{16 * gib, "16.0 GiB"},
		{3 << 40, "3.0 TiB"},
		{2048 << 50, "2048.0 PiB"},
	}

	for _, tc := range tests {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Fatalf("FormatBytes(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUsage(t *testing.T) {
	plain := NewPalette(true)

	tests := []struct {
		used, total float64
		want        string
	}{
		{8, 16, "8.00 GiB / 16.00 GiB (50%)"},
		{0, 0, "0.00 GiB / 0.00 GiB (0%)"},
		{1, 3, "1.00 GiB / 3.00 GiB (33%)"},
		{2, 3, "2.00 GiB / 3.00 GiB (67%)"},
		{0.001, 1000, "0.00 GiB / 1000.00 GiB (0%)"},
	}

	for _, tc := range tests {
		if got := FormatUsage(tc.used, tc.total, plain); got != tc.want {
			t.Fatalf("FormatUsage(%v, %v) = %q; want %q", tc.used, tc.total, got, tc.want)
		}
	}

	colored := FormatUsage(8, 16, NewPalette(false))
	if !strings.HasSuffix(colored, "("+ColorCyan+"50%"+ColorReset+")") {
		t.Fatalf("FormatUsage colored percentage missing: got %q", colored)
	}
}

func TestUsagePercent(t *testing.T) {
	if got := usagePercent(5, 0); got != 0 {
		t.Fatalf("usagePercent zero total: got %v", got)
	}
	if got := usagePercent(-1e-9, 1); got != 0 || math.Signbit(got) {
		t.Fatalf("usagePercent negative zero: got %v", got)
	}
	if got := usagePercent(16, 16); got != 100 {
		t.Fatalf("usagePercent full: got %v", got)
	}

	// exact halves round away from zero, never to even
	for _, tc := range []struct{ used, want float64 }{{1, 13}, {5, 63}, {7, 88}} {
		if got := usagePercent(tc.used, 8); got != tc.want {
			t.Fatalf("usagePercent(%v, 8) = %v; want %v", tc.used, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" || plural(0) != "s" || plural(2) != "s" {
		t.Fatal("plural returned the wrong suffix")
	}
}
