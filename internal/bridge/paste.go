package bridge

import (
	"context"
	"os/exec"
	"time"
)

// Paster synthesizes the paste keystroke in the foreground application.
// Implementations that cannot do so on the current platform return
// ErrPasteUnsupported.
type Paster interface {
	Paste(ctx context.Context) error
}

// PasterFunc adapts a function to Paster.
type PasterFunc func(ctx context.Context) error

func (f PasterFunc) Paste(ctx context.Context) error { return f(ctx) }

// UnsupportedPaster never pastes. The text stays on the clipboard and the
// user pastes by hand.
type UnsupportedPaster struct{}

func (UnsupportedPaster) Paste(context.Context) error { return ErrPasteUnsupported }

// pasteScript sends Cmd+V through System Events. Needs the Accessibility
// permission for the calling app.
const pasteScript = `tell application "System Events" to keystroke "v" using command down`

// ScriptPaster runs an external helper (osascript on macOS) and maps a
// failing exit status to a HelperError.
type ScriptPaster struct {
	Name    string
	Args    []string
	Timeout time.Duration

	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewAppleScriptPaster returns a ScriptPaster running the Cmd+V script through
// osascript. A zero timeout waits for the helper indefinitely.
func NewAppleScriptPaster(timeout time.Duration) *ScriptPaster {
	return &ScriptPaster{
		Name:    "osascript",
		Args:    []string{"-e", pasteScript},
		Timeout: timeout,
	}
}

func (p *ScriptPaster) Paste(ctx context.Context) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	command := p.command
	if command == nil {
		command = exec.CommandContext
	}
	cmd := command(ctx, p.Name, p.Args...)
	cmd.WaitDelay = time.Second
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return &HelperError{Helper: p.Name, Output: string(out), Err: err}
	}
	return nil
}
