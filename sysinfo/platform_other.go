//go:build !linux && !windows

package sysinfo

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	ferrors "microfetch/errors"
)

const (
	userEnvKey      = "USER"
	defaultRootPath = "/"
)

var titleCase = cases.Title(language.English)

func platformBackend() backend {
	return backend{
		uname:      uname,
		uptime:     host.Uptime,
		memory:     virtualMemory,
		statfs:     diskUsage,
		prettyName: platformPrettyName,
	}
}

func uname() (*Identity, error) {
	info, err := host.Info()
	if err != nil {
		return nil, err
	}
	return &Identity{
		Sysname:  titleCase.String(info.OS),
		Nodename: info.Hostname,
		Release:  info.KernelVersion,
		Machine:  info.KernelArch,
	}, nil
}

func virtualMemory(string) (totalKiB, availKiB uint64, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, ferrors.Wrap(ferrors.ErrCodeSyscall, "failed to query memory statistics", err)
	}
	return vm.Total / kib, vm.Available / kib, nil
}

// diskUsage reports byte counts as single-byte blocks.
func diskUsage(path string) (fsStats, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return fsStats{}, err
	}
	return fsStats{
		BlockSize: 1,
		Blocks:    u.Total,
		Available: u.Free,
	}, nil
}

// platformPrettyName prefers os-release (present on most BSDs) and falls
// back to the platform name and version, e.g. "Darwin 14.4.1".
func platformPrettyName(path string) (string, error) {
	name, err := osReleasePrettyName(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return name, err
	}

	info, herr := host.Info()
	if herr != nil {
		return "", err
	}
	return strings.TrimSpace(titleCase.String(info.Platform) + " " + info.PlatformVersion), nil
}
