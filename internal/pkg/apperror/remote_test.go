package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("session expired")

func TestRemoteError_MessageVerbatim(t *testing.T) {
	err := NewRemoteError("auth.signin", 400, "Invalid login credentials", errSentinel)

	assert.Equal(t, "Invalid login credentials", err.Error())
	assert.ErrorIs(t, err, errSentinel)
}

func TestRemoteError_FallbackMessage(t *testing.T) {
	assert.Equal(t, "boom", NewRemoteError("op", 0, "", errors.New("boom")).Error())
	assert.Equal(t, "attendance.create: remote call failed with status 502",
		NewRemoteError("attendance.create", 502, "", nil).Error())
}

func TestIsRemote(t *testing.T) {
	wrapped := fmt.Errorf("check in: %w", NewRemoteError("attendance.create", 500, "db down", nil))

	assert.True(t, IsRemote(wrapped))
	assert.False(t, IsRemote(errSentinel))
}
