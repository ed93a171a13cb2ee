package sysinfo

import (
	"strconv"
	"strings"

	ferrors "microfetch/errors"
)

// Uptime returns the time since boot as a phrase such as
// "3 days, 1 hour, 12 minutes".
func (c *Collector) Uptime() (string, error) {
	secs, err := c.sys.uptime()
	if err != nil {
		return "", ferrors.Wrap(ferrors.ErrCodeSyscall, "failed to query system uptime", err)
	}
	return FormatUptime(secs), nil
}

// FormatUptime breaks seconds into days, hours and minutes and joins the
// non-zero units with ", ". Leftover seconds are dropped.
//
// Examples:
//
//	FormatUptime(90061) // "1 day, 1 hour, 1 minute"
//	FormatUptime(7200)  // "2 hours"
//	FormatUptime(30)    // "less than a minute"
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds / 3600) % 24
	minutes := (seconds / 60) % 60

	var b strings.Builder
	b.Grow(32)
	appendUnit(&b, days, "day")
	appendUnit(&b, hours, "hour")
	appendUnit(&b, minutes, "minute")

	if b.Len() == 0 {
		return "less than a minute"
	}
	return b.String()
}

func appendUnit(b *strings.Builder, n uint64, unit string) {
	if n == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString(", ")
	}
	var digits [20]byte
	b.Write(strconv.AppendUint(digits[:0], n, 10))
	b.WriteByte(' ')
	b.WriteString(unit)
	b.WriteString(plural(n))
}
