package sysinfo

import (
	"context"
	"testing"
)

func BenchmarkCollector(b *testing.B) {
	c := NewCollector(WithPalette(NewPalette(false)))
	id, err := c.Identity()
	if err != nil {
		b.Skipf("host identity unavailable: %v", err)
	}

	b.Run("Identity", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = c.Identity()
		}
	})
	b.Run("UserAndHost", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = c.UserAndHost(id)
		}
	})
	b.Run("KernelVersion", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = c.KernelVersion(id)
		}
	})
	b.Run("OSPrettyName", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = c.OSPrettyName()
		}
	})
	b.Run("Shell", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = c.Shell()
		}
	})
	b.Run("Desktop", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = c.Desktop()
		}
	})
	b.Run("Uptime", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = c.Uptime()
		}
	})
	b.Run("MemoryUsage", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = c.MemoryUsage()
		}
	})
	b.Run("RootDiskUsage", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = c.RootDiskUsage()
		}
	})
	b.Run("Dots", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = c.Dots()
		}
	})
}

func BenchmarkCollect(b *testing.B) {
	c := NewCollector(WithPalette(NewPalette(false)))
	ctx := context.Background()
	if _, err := c.Collect(ctx); err != nil {
		b.Skipf("live collection unavailable: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Collect(ctx)
	}
}

func BenchmarkParsePrettyName(b *testing.B) {
	content := []byte("NAME=NixOS\nID=nixos\nVERSION=\"24.05 (Uakari)\"\nPRETTY_NAME=\"NixOS 24.05 (Uakari)\"\n")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = parsePrettyName(content)
	}
}

func BenchmarkParseMemInfo(b *testing.B) {
	content := []byte(sampleMemInfo)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = parseMemInfo(content)
	}
}

func BenchmarkFormatUptime(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FormatUptime(2*86400 + 5*3600 + 30*60)
	}
}
