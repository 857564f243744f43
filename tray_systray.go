//go:build !darwin

package main

import (
	"sync/atomic"

	"github.com/getlantern/systray"

	"pastepill/internal/bridge"
)

// trayIndicator shows the pill state in the system tray. It registers into
// the Wails event loop via systray.Register instead of running its own.
//
// On Linux both share GTK's main loop, so stop never calls systray.Quit:
// that would end the loop Wails is running.
type trayIndicator struct {
	app   *App
	icons map[TrayState][]byte
	ready atomic.Bool
}

func newTrayIndicator(app *App) *trayIndicator {
	return &trayIndicator{app: app, icons: trayIcons()}
}

func (t *trayIndicator) start() {
	systray.Register(t.onReady, func() {})
}

func (t *trayIndicator) stop() {
	t.ready.Store(false)
}

func (t *trayIndicator) running() bool { return t.ready.Load() }

func (t *trayIndicator) Notify(e bridge.Event) {
	if !t.ready.Load() {
		return
	}
	if s, ok := trayStateFor(e); ok {
		systray.SetIcon(t.icons[s])
	}
}

func (t *trayIndicator) onReady() {
	systray.SetTooltip("pastepill")
	systray.SetIcon(t.icons[TrayHidden])

	mShow := systray.AddMenuItem("Show pill", "Show the recording pill")
	mHide := systray.AddMenuItem("Hide pill", "Hide the pill window")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Stop pastepill")
	t.ready.Store(true)

	go func() {
		for {
			select {
			case <-mShow.ClickedCh:
				_ = t.app.bridge.ShowRecordingPill()
			case <-mHide.ClickedCh:
				_ = t.app.bridge.HideRecordingPill()
			case <-mQuit.ClickedCh:
				t.app.quit()
				return
			}
		}
	}()
}
