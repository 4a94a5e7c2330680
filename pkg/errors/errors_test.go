package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrDetectFailed, "cannot sniff content")
	assert.Equal(t, "[DETECT_FAILED] cannot sniff content", err.Error())
	assert.Equal(t, ErrDetectFailed, err.Code)
	assert.Nil(t, err.Wrapped)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrSymlinkCreate, "cannot create link")

	require.NotNil(t, err)
	assert.Equal(t, "[SYMLINK_CREATE] cannot create link: permission denied", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileWrite, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrFileWrite, "should vanish: %d", 42))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(ErrRestoreMarker, "malformed marker in %s", "a.symlink")

	assert.True(t, errors.Is(err, New(ErrRestoreMarker, "")))
	assert.False(t, errors.Is(err, New(ErrLinkRead, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), ErrDirCreate, "mkdir failed")

	assert.True(t, IsErrorCode(err, ErrDirCreate))
	assert.False(t, IsErrorCode(err, ErrSymlinkCreate))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrDirCreate))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrLinkRead, GetErrorCode(New(ErrLinkRead, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))

	// wrapped ClassifilesError is still found through the chain
	wrapped := fmt.Errorf("outer: %w", New(ErrFileWrite, "x"))
	assert.Equal(t, ErrFileWrite, GetErrorCode(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrDetectFailed, "cannot sniff").WithDetail("path", "/tmp/f")
	assert.Equal(t, "/tmp/f", err.Details["path"])
}
