//go:build !windows

package main

import "os/exec"

func refreshIconCache() {}

func openPath(path string) {
	exec.Command("xdg-open", path).Start()
}
