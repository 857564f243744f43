package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"pastepill/internal/bridge"
	"pastepill/internal/config"
)

// App is bound to the frontend. Every exported method is callable from JS as
// window.go.main.App.<Method>; a returned error rejects the promise with its
// message.
type App struct {
	ctx      context.Context
	cfg      config.Config
	windows  *windowRegistry
	frontend *frontendSink
	tray     tray
	bridge   *bridge.Bridge

	quitting   atomic.Bool
	signals    chan os.Signal
	stopHotkey func()
}

func NewApp(cfg config.Config) *App {
	a := &App{
		cfg:      cfg,
		windows:  newWindowRegistry(),
		frontend: &frontendSink{},
	}

	sinks := bridge.Fanout{a.frontend}
	if cfg.Tray {
		t := newTrayIndicator(a)
		a.tray = t
		sinks = append(sinks, t)
	}
	if cfg.Notify {
		sinks = append(sinks, desktopNotifier{})
	}

	clip := bridge.SystemClipboard{}
	if !clip.Available() {
		log.Printf("no clipboard utility found; install xclip, xsel or wl-clipboard")
	}

	delay := cfg.PasteDelay
	if delay == 0 {
		// 0 in the config means no wait, not the default.
		delay = -1
	}
	a.bridge = bridge.New(a.windows, clip, bridge.NewPaster(cfg.PasteTimeout), sinks, bridge.Options{
		Label:          cfg.WindowLabel,
		RecordingSize:  bridge.Size{Width: cfg.RecordingWidth, Height: cfg.RecordingHeight},
		TranscriptSize: bridge.Size{Width: cfg.TranscriptWidth, Height: cfg.TranscriptHeight},
		FocusOnShow:    cfg.FocusOnShow,
		PasteDelay:     delay,
	})
	return a
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.frontend.attach(ctx)
	a.windows.register(a.cfg.WindowLabel, &wailsWindow{ctx: ctx})

	if a.tray != nil {
		a.tray.start()
	}
	a.watchSignals()

	stop, err := startHotkey(a.cfg.Hotkey, a.onHotkey)
	if err != nil {
		log.Printf("global hotkey disabled: %v", err)
	} else {
		a.stopHotkey = stop
		log.Printf("press %s to show the recording pill", a.cfg.Hotkey)
	}
}

// beforeClose turns a window close into a hide so the next show is cheap.
// That needs a running tray to quit from; without one the close goes through.
func (a *App) beforeClose(ctx context.Context) bool {
	if a.quitting.Load() || a.tray == nil || !a.tray.running() {
		return false
	}
	if err := a.bridge.HideRecordingPill(); err != nil {
		return false
	}
	return true
}

func (a *App) shutdown(ctx context.Context) {
	a.windows.unregister(a.cfg.WindowLabel)
	a.frontend.attach(nil)
	if a.signals != nil {
		signal.Stop(a.signals)
		close(a.signals)
	}
	if a.stopHotkey != nil {
		a.stopHotkey()
	}
	if a.tray != nil {
		a.tray.stop()
	}
}

func (a *App) quit() {
	a.quitting.Store(true)
	runtime.Quit(a.ctx)
}

// watchSignals quits cleanly on SIGINT/SIGTERM so shutdown still ungrabs the
// hotkey.
func (a *App) watchSignals() {
	a.signals = make(chan os.Signal, 1)
	signal.Notify(a.signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if s, ok := <-a.signals; ok {
			log.Printf("%v: quitting", s)
			a.quit()
		}
	}()
}

// onHotkey shows the recording pill when it is hidden. The frontend gets the
// press either way and decides whether to start or stop recording.
func (a *App) onHotkey() {
	a.frontend.Notify(bridge.Event{Name: bridge.EventHotkey, State: a.bridge.State()})
	if a.bridge.State() != bridge.StateHidden {
		return
	}
	if err := a.bridge.ShowRecordingPill(); err != nil {
		log.Printf("hotkey: %v", err)
	}
}

func (a *App) Greet(name string) string {
	return a.bridge.Greet(name)
}

func (a *App) ShowRecordingPill() error {
	return a.bridge.ShowRecordingPill()
}

func (a *App) ShowTranscriptPill() error {
	return a.bridge.ShowTranscriptPill()
}

func (a *App) HideRecordingPill() error {
	return a.bridge.HideRecordingPill()
}

// CopyAndPasteText puts text on the clipboard and pastes it into the app that
// had focus before the pill. The result is "pasted" or "clipboard_only".
func (a *App) CopyAndPasteText(text string) (bridge.PasteOutcome, error) {
	return a.bridge.CopyAndPaste(a.ctx, text)
}

func (a *App) PillState() bridge.PillState {
	return a.bridge.State()
}

// OpenURL opens an http(s) link in the default browser.
func (a *App) OpenURL(raw string) error {
	u, err := checkOpenURL(raw)
	if err != nil {
		return err
	}
	runtime.BrowserOpenURL(a.ctx, u)
	return nil
}

func checkOpenURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("refusing to open %q: only http and https links are allowed", raw)
	}
	return u.String(), nil
}
