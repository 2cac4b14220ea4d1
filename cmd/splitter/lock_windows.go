//go:build windows

package main

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/util/log"
)

var mutex windows.Handle

// acquireLock creates a named mutex so only one window is open at a time.
func acquireLock() (bool, error) {
	namePtr, err := windows.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	mutex, err = windows.CreateMutex(nil, false, namePtr)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		windows.CloseHandle(mutex)
		mutex = 0
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.ReleaseMutex(mutex); err != nil {
		log.Printf("Failed to release mutex: %v", err)
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
}
