package bridge

// Event names delivered to sinks. The frontend listens on the same names.
const (
	EventState  = "pill:state"
	EventPasted = "pill:pasted"
	EventError  = "pill:error"
	EventHotkey = "pill:hotkey"
)

// PasteOutcome tells callers whether the keystroke was sent or the text only
// reached the clipboard.
type PasteOutcome string

const (
	OutcomePasted        PasteOutcome = "pasted"
	OutcomeClipboardOnly PasteOutcome = "clipboard_only"
)

// Event is a notification emitted after a pill transition or command result.
// Only the fields relevant to Name are set.
type Event struct {
	Name    string       `json:"name"`
	State   PillState    `json:"state,omitempty"`
	Outcome PasteOutcome `json:"outcome,omitempty"`
	Text    string       `json:"text,omitempty"`
	Op      string       `json:"op,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Sink receives events. Notify must not block for long; it runs on the
// command's goroutine.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// Fanout delivers each event to every sink in order.
type Fanout []Sink

func (f Fanout) Notify(e Event) {
	for _, s := range f {
		if s != nil {
			s.Notify(e)
		}
	}
}

type discard struct{}

func (discard) Notify(Event) {}
