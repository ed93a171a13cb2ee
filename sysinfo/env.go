package sysinfo

import (
	"strings"
	"unicode/utf8"
)

// Environment variables read by the collectors.
const (
	EnvShell       = "SHELL"
	EnvDesktop     = "XDG_CURRENT_DESKTOP"
	EnvSessionType = "XDG_SESSION_TYPE"
)

// Shell returns the basename of $SHELL, or "unknown_shell" when unset.
func (c *Collector) Shell() string {
	path, ok := c.lookupEnv(EnvShell)
	if !ok {
		return "unknown_shell"
	}
	return path[strings.LastIndexByte(path, '/')+1:]
}

// Desktop returns "desktop (Backend)", e.g. "i3 (Wayland)".
// Window managers started through a display manager often report
// "none+<wm>"; the prefix is dropped.
func (c *Collector) Desktop() string {
	desktop, ok := c.lookupEnv(EnvDesktop)
	if !ok || !utf8.ValidString(desktop) {
		desktop = unknown
	}
	desktop = strings.TrimPrefix(desktop, "none+")

	backend, ok := c.lookupEnv(EnvSessionType)
	if !ok || !utf8.ValidString(backend) || strings.TrimSpace(backend) == "" {
		backend = unknown
	}

	var b strings.Builder
	b.Grow(len(desktop) + len(backend) + 3)
	b.WriteString(desktop)
	b.WriteString(" (")
	b.WriteString(upperFirst(backend))
	b.WriteByte(')')
	return b.String()
}

// upperFirst upper-cases the first byte of s when it is an ASCII letter.
// Anything else, including a non-ASCII first rune, is returned unchanged.
func upperFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
