package bridge

import "fmt"

// Size is a window size in physical pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

var (
	DefaultRecordingSize  = Size{Width: 400, Height: 100}
	DefaultTranscriptSize = Size{Width: 600, Height: 150}
)

// Window is the subset of the desktop framework's window API the pill needs.
type Window interface {
	SetSize(Size) error
	Center() error
	Show() error
	Hide() error
	Focus() error
}

// WindowLookup resolves a window by its label. It reports false when the
// window does not exist (not created yet, or already torn down).
type WindowLookup interface {
	Window(label string) (Window, bool)
}

// PillState is the last state the bridge moved the pill window into.
type PillState string

const (
	StateHidden     PillState = "hidden"
	StateRecording  PillState = "recording"
	StateTranscript PillState = "transcript"
)
