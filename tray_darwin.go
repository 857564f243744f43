//go:build darwin

package main

import (
	"log"

	"pastepill/internal/bridge"
)

// trayIndicator is inert on macOS: systray and Wails both define the Cocoa
// AppDelegate and cannot share one process. The pill closes normally there.
type trayIndicator struct{}

func newTrayIndicator(*App) *trayIndicator { return &trayIndicator{} }

func (*trayIndicator) start() {
	log.Printf("tray icon is not available on macOS")
}

func (*trayIndicator) stop()                 {}
func (*trayIndicator) running() bool         { return false }
func (*trayIndicator) Notify(e bridge.Event) {}
