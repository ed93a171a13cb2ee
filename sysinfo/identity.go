package sysinfo

import (
	"strings"
	"unicode/utf8"

	ferrors "microfetch/errors"
)

const unknown = "Unknown"

// Identity is the host identity reported by uname(2). Fields hold the raw
// bytes the kernel returned; use the accessors for display-safe text.
type Identity struct {
	Sysname  string
	Nodename string
	Release  string
	Machine  string
}

// SystemName returns the kernel name, or "Unknown" if it is not valid text.
func (id *Identity) SystemName() string { return textOr(id.Sysname, unknown) }

// KernelRelease returns the kernel release, or "Unknown".
func (id *Identity) KernelRelease() string { return textOr(id.Release, unknown) }

// MachineArch returns the hardware name, or "Unknown".
func (id *Identity) MachineArch() string { return textOr(id.Machine, unknown) }

// textOr returns s when it is valid UTF-8 and fallback otherwise.
func textOr(s, fallback string) string {
	if !utf8.ValidString(s) {
		return fallback
	}
	return s
}

// Identity issues a single host-identity query.
func (c *Collector) Identity() (*Identity, error) {
	id, err := c.sys.uname()
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeSyscall, "failed to query host identity", err)
	}
	return id, nil
}

// KernelVersion formats the kernel line, e.g. "Linux 6.8.9 (x86_64)".
func (c *Collector) KernelVersion(id *Identity) string {
	sysname := id.SystemName()
	release := id.KernelRelease()
	machine := id.MachineArch()

	var b strings.Builder
	b.Grow(len(sysname) + len(release) + len(machine) + 4)
	b.WriteString(sysname)
	b.WriteByte(' ')
	b.WriteString(release)
	b.WriteString(" (")
	b.WriteString(machine)
	b.WriteByte(')')
	return b.String()
}

// UserAndHost formats the colored "user@host" heading.
func (c *Collector) UserAndHost(id *Identity) string {
	user, ok := c.lookupEnv(userEnvKey)
	if !ok || !utf8.ValidString(user) {
		user = "unknown_user"
	}
	host := textOr(id.Nodename, "unknown_host")

	p := c.palette
	var b strings.Builder
	b.Grow(len(p.Yellow) + len(user) + len(p.Red) + 1 + len(p.Green) + len(host) + len(p.Reset))
	b.WriteString(p.Yellow)
	b.WriteString(user)
	b.WriteString(p.Red)
	b.WriteByte('@')
	b.WriteString(p.Green)
	b.WriteString(host)
	b.WriteString(p.Reset)
	return b.String()
}
