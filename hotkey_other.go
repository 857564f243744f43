//go:build !linux

package main

import "errors"

func startHotkey(string, func()) (func(), error) {
	return nil, errors.New("global hotkey is only available on X11")
}
