package sysinfo

import (
	"bytes"
	"log/slog"
)

var (
	memTotalKey     = []byte("MemTotal:")
	memAvailableKey = []byte("MemAvailable:")
)

// MemoryUsage reports used/total RAM, where used is MemTotal minus
// MemAvailable.
func (c *Collector) MemoryUsage() (string, error) {
	totalKiB, availKiB, err := c.sys.memory(c.memInfoPath)
	if err != nil {
		return "", err
	}

	slog.Debug("memory statistics",
		"total", FormatBytes(totalKiB*kib),
		"available", FormatBytes(availKiB*kib))

	// kB -> GiB, as two successive divisions by 1024
	total := float64(totalKiB) / 1024 / 1024
	available := float64(availKiB) / 1024 / 1024
	return FormatUsage(total-available, total, c.palette), nil
}

// procMemInfo reads the head of a meminfo file.
func procMemInfo(path string) (totalKiB, availKiB uint64, err error) {
	var buf [prefixSize]byte
	content, err := readPrefix(path, buf[:])
	if err != nil {
		return 0, 0, err
	}
	totalKiB, availKiB = parseMemInfo(content)
	return totalKiB, availKiB, nil
}

// parseMemInfo extracts MemTotal and MemAvailable (in kB) from meminfo
// content. A missing or malformed value reads as 0. Scanning stops once both
// keys have been seen.
func parseMemInfo(content []byte) (totalKiB, availKiB uint64) {
	var haveTotal, haveAvail bool
	for len(content) > 0 && !(haveTotal && haveAvail) {
		var line []byte
		line, content = nextLine(content)

		switch {
		case bytes.HasPrefix(line, memTotalKey):
			totalKiB = parseLeadingUint(line[len(memTotalKey):])
			haveTotal = true
		case bytes.HasPrefix(line, memAvailableKey):
			availKiB = parseLeadingUint(line[len(memAvailableKey):])
			haveAvail = true
		}
	}
	return totalKiB, availKiB
}

// parseLeadingUint skips leading blanks and parses the decimal digits that
// follow, stopping at the first non-digit. Overflowing values saturate.
func parseLeadingUint(b []byte) uint64 {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}

	var n uint64
	for ; i < len(b); i++ {
		d := b[i] - '0'
		if d > 9 {
			break
		}
		if n > (^uint64(0)-uint64(d))/10 {
			return ^uint64(0)
		}
		n = n*10 + uint64(d)
	}
	return n
}
