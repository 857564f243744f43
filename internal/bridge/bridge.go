// Package bridge implements the commands the pill frontend invokes: showing,
// resizing and hiding the overlay window, and committing dictated text to the
// application that had focus before the pill appeared.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLabel      = "main"
	DefaultPasteDelay = 150 * time.Millisecond
)

// Options tune the bridge. Zero values fall back to the defaults.
type Options struct {
	Label          string
	RecordingSize  Size
	TranscriptSize Size
	FocusOnShow    bool
	// PasteDelay gives the OS time to hand focus back to the previous app
	// before the keystroke is sent. Negative disables the wait.
	PasteDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Label == "" {
		o.Label = DefaultLabel
	}
	if o.RecordingSize.Width <= 0 || o.RecordingSize.Height <= 0 {
		o.RecordingSize = DefaultRecordingSize
	}
	if o.TranscriptSize.Width <= 0 || o.TranscriptSize.Height <= 0 {
		o.TranscriptSize = DefaultTranscriptSize
	}
	switch {
	case o.PasteDelay == 0:
		o.PasteDelay = DefaultPasteDelay
	case o.PasteDelay < 0:
		o.PasteDelay = 0
	}
	return o
}

// Bridge forwards frontend commands to the window, clipboard and paster.
// It keeps no window handle between calls; every command resolves the
// window again.
type Bridge struct {
	windows WindowLookup
	clip    Clipboard
	paster  Paster
	sink    Sink
	opts    Options

	// sleep waits d or until ctx is done.
	sleep func(ctx context.Context, d time.Duration) error

	mu    sync.Mutex
	state PillState
}

// New builds a Bridge. A nil paster behaves as UnsupportedPaster and a nil
// sink drops events.
func New(windows WindowLookup, clip Clipboard, paster Paster, sink Sink, opts Options) *Bridge {
	if paster == nil {
		paster = UnsupportedPaster{}
	}
	if sink == nil {
		sink = discard{}
	}
	return &Bridge{
		windows: windows,
		clip:    clip,
		paster:  paster,
		sink:    sink,
		opts:    opts.withDefaults(),
		sleep:   sleepContext,
		state:   StateHidden,
	}
}

// Options returns the effective options.
func (b *Bridge) Options() Options { return b.opts }

// State returns the last state the bridge moved the pill into.
func (b *Bridge) State() PillState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Bridge) setState(s PillState) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
	b.sink.Notify(Event{Name: EventState, State: s})
}

// Greet is a connectivity check for the frontend.
func (b *Bridge) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// ShowRecordingPill shows the main window at the small recording size.
func (b *Bridge) ShowRecordingPill() error {
	return b.showNamed("show_recording_pill", StateRecording)
}

// ShowTranscriptPill shows the main window at the larger transcript size.
func (b *Bridge) ShowTranscriptPill() error {
	return b.showNamed("show_transcript_pill", StateTranscript)
}

func (b *Bridge) showNamed(op string, state PillState) error {
	id := requestID()
	log.Printf("[%s] %s", id, op)
	w, err := b.lookup()
	if err != nil {
		return b.fail(id, op, err)
	}
	if err := b.ShowPill(w, state); err != nil {
		return b.fail(id, op, err)
	}
	return nil
}

// ShowPill resizes, centers and shows a window the caller already holds.
// state must be StateRecording or StateTranscript.
func (b *Bridge) ShowPill(w Window, state PillState) error {
	var size Size
	switch state {
	case StateRecording:
		size = b.opts.RecordingSize
	case StateTranscript:
		size = b.opts.TranscriptSize
	default:
		return fmt.Errorf("cannot show pill in state %q", state)
	}
	if err := w.SetSize(size); err != nil {
		return fmt.Errorf("set size %s: %w", size, err)
	}
	if err := w.Center(); err != nil {
		return fmt.Errorf("center: %w", err)
	}
	if err := w.Show(); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	if b.opts.FocusOnShow {
		if err := w.Focus(); err != nil {
			return fmt.Errorf("focus: %w", err)
		}
	}
	b.setState(state)
	return nil
}

// HideRecordingPill hides the main window without destroying it.
func (b *Bridge) HideRecordingPill() error {
	const op = "hide_recording_pill"
	id := requestID()
	log.Printf("[%s] %s", id, op)
	w, err := b.lookup()
	if err != nil {
		return b.fail(id, op, err)
	}
	if err := w.Hide(); err != nil {
		return b.fail(id, op, fmt.Errorf("hide: %w", err))
	}
	b.setState(StateHidden)
	return nil
}

// CopyAndPaste writes text to the clipboard, hides the pill so focus returns
// to the previous application, waits PasteDelay and sends the paste
// keystroke. A missing window is not an error here.
//
// On platforms without a paster the text is left on the clipboard and the
// outcome is OutcomeClipboardOnly.
func (b *Bridge) CopyAndPaste(ctx context.Context, text string) (PasteOutcome, error) {
	const op = "copy_and_paste_text"
	id := requestID()
	log.Printf("[%s] %s: %d bytes", id, op, len(text))

	if err := b.clip.WriteText(text); err != nil {
		return "", b.fail(id, op, fmt.Errorf("%w: %v", ErrClipboardWrite, err))
	}

	if w, ok := b.windows.Window(b.opts.Label); ok {
		if err := w.Hide(); err != nil {
			return "", b.fail(id, op, fmt.Errorf("hide: %w", err))
		}
		b.setState(StateHidden)
	} else {
		log.Printf("[%s] %s: window %q absent, nothing to hide", id, op, b.opts.Label)
	}

	if err := b.sleep(ctx, b.opts.PasteDelay); err != nil {
		return "", b.fail(id, op, err)
	}

	outcome := OutcomePasted
	if err := b.paster.Paste(ctx); err != nil {
		if !errors.Is(err, ErrPasteUnsupported) {
			return "", b.fail(id, op, err)
		}
		outcome = OutcomeClipboardOnly
	}
	log.Printf("[%s] %s: %s", id, op, outcome)
	b.sink.Notify(Event{Name: EventPasted, Outcome: outcome, Text: text})
	return outcome, nil
}

func (b *Bridge) lookup() (Window, error) {
	w, ok := b.windows.Window(b.opts.Label)
	if !ok {
		return nil, ErrWindowNotFound
	}
	return w, nil
}

func (b *Bridge) fail(id, op string, err error) error {
	log.Printf("[%s] %s: %v", id, op, err)
	b.sink.Notify(Event{Name: EventError, Op: op, Message: err.Error()})
	return err
}

func requestID() string {
	return uuid.NewString()[:8]
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
