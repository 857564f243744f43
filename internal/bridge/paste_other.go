//go:build !darwin

package bridge

import "time"

// NewPaster returns the platform paster. Only macOS can synthesize the
// keystroke; everywhere else the text is left on the clipboard.
func NewPaster(time.Duration) Paster {
	return UnsupportedPaster{}
}
