//go:build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"unsafe"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	ferrors "microfetch/errors"
)

const (
	userEnvKey      = "USERNAME"
	defaultRootPath = `C:\`
)

// currentVersionKey holds ProductName, DisplayVersion and CurrentBuild.
const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetTickCount64       = modkernel32.NewProc("GetTickCount64")
	procGlobalMemoryStatusEx = modkernel32.NewProc("GlobalMemoryStatusEx")
	procRtlGetVersion        = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")
)

// memoryStatusEx represents the Windows MEMORYSTATUSEX structure.
// It provides information about physical and virtual memory.
type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

func platformBackend() backend {
	return backend{
		uname:      uname,
		uptime:     tickUptime,
		memory:     globalMemoryStatus,
		statfs:     diskFreeSpace,
		prettyName: registryPrettyName,
	}
}

// uname assembles a uname-like identity: the kernel release is the NT
// version reported by RtlGetVersion, e.g. "10.0.22631".
func uname() (*Identity, error) {
	maj, mnr, build, err := rtlGetVersion()
	if err != nil {
		return nil, err
	}
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}
	arch, err := host.KernelArch()
	if err != nil {
		return nil, err
	}
	return &Identity{
		Sysname:  "Windows",
		Nodename: hostname,
		Release:  fmt.Sprintf("%d.%d.%d", maj, mnr, build),
		Machine:  arch,
	}, nil
}

// rtlGetVersion calls ntdll.RtlGetVersion to obtain accurate Windows version info.
func rtlGetVersion() (major uint32, minor uint32, build uint32, err error) {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, 0, callErr
		}
		return 0, 0, 0, fmt.Errorf("RtlGetVersion failed: ret=%d", ret)
	}

	return v.dwMajorVersion, v.dwMinorVersion, v.dwBuildNumber, nil
}

// registryPrettyName reads the product name from the registry, e.g.
// "Windows 11 Pro 23H2". Windows 11 still reports "Windows 10" in
// ProductName, so the build number decides.
func registryPrettyName(string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", ioError("failed to open registry key", currentVersionKey, err)
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return unknown, nil
	}

	build := 0
	if s, _, err := k.GetStringValue("CurrentBuild"); err == nil {
		build, _ = strconv.Atoi(s)
	}
	if build >= 22000 && strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}

	if displayVersion, _, err := k.GetStringValue("DisplayVersion"); err == nil && displayVersion != "" {
		return productName + " " + displayVersion, nil
	}
	return productName, nil
}

func tickUptime() (uint64, error) {
	ret, _, _ := procGetTickCount64.Call()
	return uint64(ret) / 1000, nil
}

func globalMemoryStatus(string) (totalKiB, availKiB uint64, err error) {
	var memInfo memoryStatusEx
	memInfo.dwLength = uint32(unsafe.Sizeof(memInfo))

	ret, _, callErr := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&memInfo)))
	if ret == 0 {
		return 0, 0, ferrors.Wrap(ferrors.ErrCodeSyscall, "GlobalMemoryStatusEx failed", callErr)
	}
	return memInfo.ullTotalPhys / kib, memInfo.ullAvailPhys / kib, nil
}

// diskFreeSpace reports byte counts as single-byte blocks.
func diskFreeSpace(path string) (fsStats, error) {
	var freeBytesAvailable, totalBytes, totalFreeBytes uint64

	drive, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fsStats{}, err
	}
	if err := windows.GetDiskFreeSpaceEx(drive, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return fsStats{}, err
	}
	return fsStats{
		BlockSize: 1,
		Blocks:    totalBytes,
		Available: freeBytesAvailable,
	}, nil
}
