//go:build linux || darwin || freebsd || openbsd || netbsd

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceLock(t *testing.T) {
	acquired, err := acquireLock()
	require.NoError(t, err)
	require.True(t, acquired)

	again, err := acquireLock()
	require.NoError(t, err)
	assert.False(t, again, "second instance must be refused")

	releaseLock()
	assert.FileExists(t, lockPath(), "the lock file is kept for the next instance")

	acquired, err = acquireLock()
	require.NoError(t, err)
	assert.True(t, acquired)
	releaseLock()
}
