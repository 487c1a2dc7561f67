//go:build unix

package tui

import (
	"os"
	"syscall"
)

var signals = []os.Signal{syscall.SIGHUP, syscall.SIGTERM, os.Interrupt}
