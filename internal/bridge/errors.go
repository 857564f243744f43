package bridge

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWindowNotFound   = errors.New("main window not found")
	ErrClipboardWrite   = errors.New("clipboard write failed")
	ErrPasteUnsupported = errors.New("paste simulation not supported on this platform")
)

// HelperError is returned when the external keystroke helper exits with a
// failure. Output holds whatever the helper printed.
type HelperError struct {
	Helper string
	Output string
	Err    error
}

func (e *HelperError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s: %v", e.Helper, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Helper, e.Err, out)
}

func (e *HelperError) Unwrap() error { return e.Err }
