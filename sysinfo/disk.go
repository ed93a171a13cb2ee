package sysinfo

import (
	"log/slog"

	ferrors "microfetch/errors"
)

// RootDiskUsage reports used/total space of the root filesystem.
func (c *Collector) RootDiskUsage() (string, error) {
	st, err := c.sys.statfs(c.rootPath)
	if err != nil {
		return "", ferrors.WrapWithContext(ferrors.ErrCodeSyscall, "failed to query filesystem statistics", err,
			map[string]any{"path": c.rootPath})
	}

	totalBytes, usedBytes := diskBytes(st)
	slog.Debug("filesystem statistics",
		"path", c.rootPath,
		"total", FormatBytes(totalBytes),
		"used", FormatBytes(usedBytes))

	return FormatUsage(float64(usedBytes)/gib, float64(totalBytes)/gib, c.palette), nil
}

// diskBytes converts block counts into total and used bytes. Used space is
// everything not available to unprivileged users; it never goes negative.
func diskBytes(st fsStats) (total, used uint64) {
	total = st.BlockSize * st.Blocks
	avail := st.BlockSize * st.Available
	if avail > total {
		return total, 0
	}
	return total, total - avail
}
