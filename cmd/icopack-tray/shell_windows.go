//go:build windows

package main

import (
	"os/exec"
	"syscall"
)

var shell32 = syscall.NewLazyDLL("shell32.dll")
var procSHChangeNotify = shell32.NewProc("SHChangeNotify")

const (
	shcneAssocChanged = 0x08000000
	shcnfIDList       = 0
)

// refreshIconCache tells Explorer to re-read icons so a freshly written
// .ico shows up without a relog.
func refreshIconCache() {
	procSHChangeNotify.Call(shcneAssocChanged, shcnfIDList, 0, 0) //nolint:errcheck
}

func openPath(path string) {
	exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
}
