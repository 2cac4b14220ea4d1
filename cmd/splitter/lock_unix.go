//go:build linux || darwin || freebsd || openbsd || netbsd

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/dixieflatline76/Splitter/config"
)

var lockFile *os.File

func lockPath() string {
	return filepath.Join(os.TempDir(), config.AppName+".lock")
}

// acquireLock takes an exclusive lock file so only one window is open at a time.
func acquireLock() (bool, error) {
	file, err := os.OpenFile(lockPath(), os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	lockFile = file
	return true, nil
}

// releaseLock releases the single-instance lock. The file is left in place so every
// instance locks the same inode.
func releaseLock() {
	if lockFile == nil {
		return
	}
	_ = unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)
	lockFile.Close()
	lockFile = nil
}
