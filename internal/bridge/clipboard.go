package bridge

import "github.com/atotto/clipboard"

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard is the OS clipboard (pbcopy on macOS, xclip/xsel or
// wl-copy on Linux, the Win32 API on Windows).
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend was found.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
