package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeEnv returns a lookup function over a fixed environment.
func fakeEnv(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// newTestCollector returns a Collector whose system calls are fakes and whose
// file-backed sources read from the given paths. Options are applied last.
func newTestCollector(env map[string]string, opts ...Option) *Collector {
	c := NewCollector(WithLookupEnv(fakeEnv(env)))
	c.sys = backend{
		uname: func() (*Identity, error) {
			return &Identity{Sysname: "Linux", Nodename: "nixbox", Release: "6.8.9", Machine: "x86_64"}, nil
		},
		uptime: func() (uint64, error) { return 90061, nil },
		memory: procMemInfo,
		statfs: func(string) (fsStats, error) {
			return fsStats{BlockSize: 4096, Blocks: 1 << 20, Available: 1 << 18}, nil
		},
		prettyName: osReleasePrettyName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// writeFile creates name under a test temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
