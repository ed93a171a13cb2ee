// Package errors defines the error type that aborts a microfetch run.
//
// Each error carries a Code telling a failed system call apart from an
// unreadable file or a short write to the terminal, plus optional key/value
// details (a path, a byte count) that are printed with the message:
//
//	[IO] failed to open file (path=/etc/os-release): no such file or directory
package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// ErrCodeSyscall marks a failed OS facility (uname, sysinfo, statfs).
	// The errno is kept as the cause.
	ErrCodeSyscall ErrorCode = "SYSCALL"

	// ErrCodeIO marks a required file that could not be opened or read, or
	// a write to the output that failed.
	ErrCodeIO ErrorCode = "IO"

	// ErrCodePartialWrite marks an output write that accepted fewer bytes
	// than requested without reporting an error.
	ErrCodePartialWrite ErrorCode = "PARTIAL_WRITE"
)

// StructuredError is a coded error with an optional cause and details.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error renders "[CODE] message (k=v, ...): cause". Details are sorted by
// key; the parts without a value are left out.
func (e *StructuredError) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(e.Code))
	b.WriteString("] ")
	b.WriteString(e.Message)

	if len(e.Context) > 0 {
		b.WriteString(" (")
		for i, k := range slices.Sorted(maps.Keys(e.Context)) {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Context[k])
		}
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New returns an error with no cause.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext returns an error with no cause and the given details.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// Wrap classifies cause under code.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext classifies cause under code and attaches details.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// IsCode reports whether err's chain holds a StructuredError with code.
func IsCode(err error, code ErrorCode) bool {
	var se *StructuredError
	return stderrors.As(err, &se) && se.Code == code
}
