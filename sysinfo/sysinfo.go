// Package sysinfo gathers the host facts shown by microfetch.
// Each collector reads one OS data source (a system call, a small file under
// /proc or /etc, or an environment variable) and returns one short,
// display-ready string. Collectors backed by a required source return an
// error; collectors backed by optional environment variables never fail and
// fall back to a fixed placeholder instead.
package sysinfo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

const (
	// DefaultOSReleasePath is the os-release file scanned for PRETTY_NAME.
	DefaultOSReleasePath = "/etc/os-release"

	// DefaultMemInfoPath is the kernel memory statistics file.
	DefaultMemInfoPath = "/proc/meminfo"
)

// SystemInfo holds every formatted field of the banner.
type SystemInfo struct {
	// UserInfo is the colored "user@host" heading
	UserInfo string

	// OS is the distribution pretty name
	OS string

	// Kernel is "sysname release (machine)"
	Kernel string

	// Shell is the basename of the login shell
	Shell string

	// Uptime is the days/hours/minutes phrase
	Uptime string

	// Desktop is "desktop (Backend)"
	Desktop string

	// Memory shows used/total RAM and the usage percentage
	Memory string

	// Storage shows used/total space of the root filesystem
	Storage string

	// Colors is the row of palette dots
	Colors string
}

// fsStats is the subset of filesystem statistics the storage collector uses.
type fsStats struct {
	BlockSize uint64
	Blocks    uint64
	Available uint64
}

// backend is the set of OS facilities a platform provides. Collectors never
// call the platform directly so tests can substitute any of them.
type backend struct {
	uname      func() (*Identity, error)
	uptime     func() (uint64, error)
	memory     func(path string) (totalKiB, availKiB uint64, err error)
	statfs     func(path string) (fsStats, error)
	prettyName func(path string) (string, error)
}

// Option configures a Collector.
type Option func(*Collector)

// Collector produces the individual banner fields.
type Collector struct {
	palette       Palette
	osReleasePath string
	memInfoPath   string
	rootPath      string
	lookupEnv     func(string) (string, bool)
	sys           backend
}

// WithPalette sets the palette used for colored substrings.
// Default is the disabled (empty) palette.
func WithPalette(p Palette) Option {
	return func(c *Collector) {
		c.palette = p
	}
}

// WithOSReleasePath overrides the os-release file location.
func WithOSReleasePath(path string) Option {
	return func(c *Collector) {
		c.osReleasePath = path
	}
}

// WithMemInfoPath overrides the meminfo file location.
func WithMemInfoPath(path string) Option {
	return func(c *Collector) {
		c.memInfoPath = path
	}
}

// WithRootPath sets the mount point reported as storage.
// Default is "/" (C:\ on Windows).
func WithRootPath(path string) Option {
	return func(c *Collector) {
		c.rootPath = path
	}
}

// WithLookupEnv replaces os.LookupEnv for the environment-backed collectors.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(c *Collector) {
		c.lookupEnv = fn
	}
}

// NewCollector creates a Collector bound to the current platform.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		osReleasePath: DefaultOSReleasePath,
		memInfoPath:   DefaultMemInfoPath,
		rootPath:      defaultRootPath,
		lookupEnv:     os.LookupEnv,
		sys:           platformBackend(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs each collector once, in banner order, and stops at the first
// failure. No partially filled SystemInfo is ever returned.
func (c *Collector) Collect(ctx context.Context) (*SystemInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	id, err := c.Identity()
	if err != nil {
		return nil, err
	}

	info := &SystemInfo{}
	info.UserInfo = c.UserAndHost(id)

	if info.OS, err = timed("os", c.OSPrettyName); err != nil {
		return nil, err
	}

	info.Kernel = c.KernelVersion(id)
	info.Shell = c.Shell()
	info.Desktop = c.Desktop()

	if info.Uptime, err = timed("uptime", c.Uptime); err != nil {
		return nil, err
	}
	if info.Memory, err = timed("memory", c.MemoryUsage); err != nil {
		return nil, err
	}
	if info.Storage, err = timed("storage", c.RootDiskUsage); err != nil {
		return nil, err
	}

	info.Colors = c.Dots()

	slog.Debug("collected system info", "duration", time.Since(start))
	return info, nil
}

// timed runs one fallible collector and logs how long it took.
func timed(field string, fn func() (string, error)) (string, error) {
	start := time.Now()
	v, err := fn()
	if err != nil {
		slog.Debug("collector failed", "field", field, "error", err)
		return "", err
	}
	slog.Debug("collected field", "field", field, "duration", time.Since(start))
	return v, nil
}
