package errors

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeSyscall, "uname failed")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeSyscall, err.Code)
	assert.Equal(t, "uname failed", err.Message)
	assert.Nil(t, err.Cause)
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, "[SYSCALL] uname failed", err.Error())
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrCodeSyscall, "uname failed", syscall.EFAULT)

	assert.Equal(t, ErrCodeSyscall, err.Code)
	assert.True(t, errors.Is(err, syscall.EFAULT), "errno must stay reachable")
	assert.Equal(t, fmt.Sprintf("[SYSCALL] uname failed: %v", syscall.EFAULT), err.Error())
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("no such file")
	err := WrapWithContext(ErrCodeIO, "read failed", cause, map[string]any{"path": "/proc/meminfo"})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[IO] read failed (path=/proc/meminfo): no such file", err.Error())
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodePartialWrite, "short write", map[string]any{"written": 3, "want": 10})

	assert.Nil(t, err.Cause)
	// details are printed in key order whatever the map order
	assert.Equal(t, "[PARTIAL_WRITE] short write (want=10, written=3)", err.Error())
}

func TestError_EmptyContextOmitted(t *testing.T) {
	err := WrapWithContext(ErrCodeIO, "read failed", errors.New("eof"), map[string]any{})
	assert.Equal(t, "[IO] read failed: eof", err.Error())
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"direct match", New(ErrCodeIO, "x"), ErrCodeIO, true},
		{"different code", New(ErrCodeIO, "x"), ErrCodeSyscall, false},
		{"wrapped by fmt", fmt.Errorf("outer: %w", New(ErrCodePartialWrite, "x")), ErrCodePartialWrite, true},
		{"plain error", errors.New("x"), ErrCodeIO, false},
		{"nil", nil, ErrCodeIO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}
