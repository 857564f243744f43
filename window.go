package main

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"pastepill/internal/bridge"
)

// windowRegistry maps labels to live windows. Wails has a single window; it
// is registered on startup and removed on shutdown, so commands issued
// outside that span get bridge.ErrWindowNotFound.
type windowRegistry struct {
	mu   sync.Mutex
	wins map[string]bridge.Window
}

func newWindowRegistry() *windowRegistry {
	return &windowRegistry{wins: make(map[string]bridge.Window)}
}

func (r *windowRegistry) register(label string, w bridge.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wins[label] = w
}

func (r *windowRegistry) unregister(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wins, label)
}

func (r *windowRegistry) Window(label string) (bridge.Window, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wins[label]
	return w, ok
}

// wailsWindow drives the Wails main window. The runtime calls do not report
// errors, so every method returns nil.
type wailsWindow struct {
	ctx context.Context
}

func (w *wailsWindow) SetSize(s bridge.Size) error {
	runtime.WindowSetSize(w.ctx, s.Width, s.Height)
	return nil
}

func (w *wailsWindow) Center() error {
	runtime.WindowCenter(w.ctx)
	return nil
}

func (w *wailsWindow) Show() error {
	runtime.WindowShow(w.ctx)
	return nil
}

func (w *wailsWindow) Hide() error {
	runtime.WindowHide(w.ctx)
	return nil
}

// Focus raises the window; WindowShow already activates it on macOS and
// Windows, so this only undoes a minimise.
func (w *wailsWindow) Focus() error {
	runtime.WindowUnminimise(w.ctx)
	return nil
}

// frontendSink forwards bridge events to the frontend as Wails events.
type frontendSink struct {
	mu  sync.Mutex
	ctx context.Context
}

func (s *frontendSink) attach(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()
}

func (s *frontendSink) Notify(e bridge.Event) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil {
		return
	}
	runtime.EventsEmit(ctx, e.Name, e)
}
