//go:build linux

package sysinfo

import (
	"golang.org/x/sys/unix"
)

const (
	userEnvKey      = "USER"
	defaultRootPath = "/"
)

func platformBackend() backend {
	return backend{
		uname:      uname,
		uptime:     sysinfoUptime,
		memory:     procMemInfo,
		statfs:     statfs,
		prettyName: osReleasePrettyName,
	}
}

func uname() (*Identity, error) {
	var name unix.Utsname
	if err := unix.Uname(&name); err != nil {
		return nil, err
	}
	return &Identity{
		Sysname:  unix.ByteSliceToString(name.Sysname[:]),
		Nodename: unix.ByteSliceToString(name.Nodename[:]),
		Release:  unix.ByteSliceToString(name.Release[:]),
		Machine:  unix.ByteSliceToString(name.Machine[:]),
	}, nil
}

func sysinfoUptime() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}
	if info.Uptime < 0 {
		return 0, nil
	}
	return uint64(info.Uptime), nil
}

func statfs(path string) (fsStats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return fsStats{}, err
	}
	return fsStats{
		BlockSize: uint64(st.Bsize),
		Blocks:    st.Blocks,
		Available: st.Bavail,
	}, nil
}
