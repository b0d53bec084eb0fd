//go:build !windows

package main

import "errors"

func autostartEnabled() bool { return false }

func autostartEnable() error {
	return errors.New("autostart is only supported on Windows")
}

func autostartDisable() error {
	return errors.New("autostart is only supported on Windows")
}
