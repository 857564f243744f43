//go:build linux

package main

import (
	"fmt"
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/keybind"
)

// startHotkey grabs the named key on the X11 root window and calls onPress
// on every key release. stop ungrabs the key and closes the connection,
// which ends the event loop.
func startHotkey(name string, onPress func()) (stop func(), err error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("cannot connect to X11: %w", err)
	}
	keybind.Initialize(xu)

	codes, err := grabKey(xu, name)
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}

	go hotkeyLoop(xu, codes, onPress)

	return func() {
		ungrabKeys(xu, codes)
		xu.Conn().Close()
	}, nil
}

// grabKey registers a passive grab for the named key on the root window.
// Returns the grabbed keycodes so the caller can ungrab on exit.
func grabKey(xu *xgbutil.XUtil, name string) ([]xproto.Keycode, error) {
	codes := keybind.StrToKeycodes(xu, name)
	if len(codes) == 0 {
		return nil, fmt.Errorf("no keycode found for %s", name)
	}
	root := xu.RootWin()
	for i, code := range codes {
		if err := xproto.GrabKeyChecked(
			xu.Conn(),
			false,
			root,
			xproto.ModMaskAny,
			code,
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
		).Check(); err != nil {
			ungrabKeys(xu, codes[:i])
			return nil, fmt.Errorf("GrabKey %s (keycode %d): %w", name, code, err)
		}
	}
	return codes, nil
}

// ungrabKeys releases previously grabbed keycodes.
func ungrabKeys(xu *xgbutil.XUtil, codes []xproto.Keycode) {
	root := xu.RootWin()
	for _, code := range codes {
		xproto.UngrabKey(xu.Conn(), code, root, xproto.ModMaskAny)
	}
}

func hotkeyLoop(xu *xgbutil.XUtil, codes []xproto.Keycode, onPress func()) {
	var pending xgb.Event

	for {
		var ev xgb.Event
		if pending != nil {
			ev = pending
			pending = nil
		} else {
			var xerr xgb.Error
			ev, xerr = xu.Conn().WaitForEvent()
			if xerr != nil {
				log.Printf("X11 error: %v", xerr)
				continue
			}
			if ev == nil {
				return
			}
		}

		// Act on release only; presses are ignored.
		e, ok := ev.(xproto.KeyReleaseEvent)
		if !ok || !containsCode(codes, e.Detail) {
			continue
		}

		// Detect auto-repeat: X11 queues KeyRelease+KeyPress as a pair.
		next, _ := xu.Conn().PollForEvent()
		if kp, ok := next.(xproto.KeyPressEvent); ok && kp.Detail == e.Detail {
			continue
		}
		if next != nil {
			pending = next
		}

		log.Printf("hotkey %q (keycode %d)", keybind.LookupString(xu, e.State, e.Detail), e.Detail)
		onPress()
	}
}

func containsCode(codes []xproto.Keycode, c xproto.Keycode) bool {
	for _, code := range codes {
		if code == c {
			return true
		}
	}
	return false
}
