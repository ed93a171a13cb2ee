package sysinfo

import (
	"errors"
	"io"
	"os"

	ferrors "microfetch/errors"
)

// prefixSize bounds every file read. PRETTY_NAME, MemTotal and MemAvailable
// all sit well inside the first kilobyte of their files.
const prefixSize = 1024

// readPrefix reads up to len(buf) bytes from the start of path and returns
// the filled part of buf. The file is closed before returning on every path.
func readPrefix(path string, buf []byte) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("failed to open file", path, err)
	}
	defer func() { _ = f.Close() }()

	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, ioError("failed to read file", path, err)
	}
	return buf[:n], nil
}

func ioError(msg, path string, cause error) error {
	return ferrors.WrapWithContext(ferrors.ErrCodeIO, msg, cause, map[string]any{"path": path})
}

// nextLine splits b at the first '\n'. The final line may lack a newline.
func nextLine(b []byte) (line, rest []byte) {
	for i, ch := range b {
		if ch == '\n' {
			return b[:i], b[i+1:]
		}
	}
	return b, nil
}
