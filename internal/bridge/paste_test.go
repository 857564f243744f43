package bridge

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"
)

// shellPaster runs script with sh in place of the real helper.
func shellPaster(t *testing.T, script string, timeout time.Duration) *ScriptPaster {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	p := NewAppleScriptPaster(timeout)
	p.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if name != "osascript" || len(args) != 2 || args[0] != "-e" || args[1] != pasteScript {
			t.Fatalf("unexpected helper invocation %s %v", name, args)
		}
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
	return p
}

func TestScriptPasterSuccess(t *testing.T) {
	p := shellPaster(t, "exit 0", 0)
	if err := p.Paste(context.Background()); err != nil {
		t.Fatalf("Paste: %v", err)
	}
}

func TestScriptPasterFailureCarriesOutput(t *testing.T) {
	p := shellPaster(t, "echo 'System Events got an error: osascript is not allowed to send keystrokes.' >&2; exit 1", 0)

	err := p.Paste(context.Background())
	var he *HelperError
	if !errors.As(err, &he) {
		t.Fatalf("expected HelperError, got %v", err)
	}
	if he.Helper != "osascript" {
		t.Fatalf("expected helper osascript, got %q", he.Helper)
	}
	if !strings.Contains(he.Output, "not allowed to send keystrokes") {
		t.Fatalf("expected diagnostic output, got %q", he.Output)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected wrapped ExitError, got %v", he.Err)
	}
}

func TestScriptPasterTimeout(t *testing.T) {
	p := shellPaster(t, "exec sleep 5", 50*time.Millisecond)

	start := time.Now()
	err := p.Paste(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 4*time.Second {
		t.Fatalf("helper was not killed on timeout")
	}
}

func TestScriptPasterCancelled(t *testing.T) {
	p := shellPaster(t, "exec sleep 5", 0)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	err := p.Paste(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var he *HelperError
	if !errors.As(err, &he) || he.Helper != "osascript" {
		t.Fatalf("expected HelperError for osascript, got %v", err)
	}
}

func TestHelperErrorMessage(t *testing.T) {
	cases := []struct {
		err  *HelperError
		want string
	}{
		{&HelperError{Helper: "osascript", Err: errors.New("exit status 1")}, "osascript: exit status 1"},
		{&HelperError{Helper: "osascript", Output: "  denied\n", Err: errors.New("exit status 1")}, "osascript: exit status 1: denied"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}

func TestUnsupportedPaster(t *testing.T) {
	if err := (UnsupportedPaster{}).Paste(context.Background()); !errors.Is(err, ErrPasteUnsupported) {
		t.Fatalf("expected ErrPasteUnsupported, got %v", err)
	}
}

func TestNewPasterMatchesPlatform(t *testing.T) {
	p := NewPaster(time.Second)
	_, isScript := p.(*ScriptPaster)
	if runtime.GOOS == "darwin" && !isScript {
		t.Fatalf("expected osascript paster on darwin, got %T", p)
	}
	if runtime.GOOS != "darwin" && isScript {
		t.Fatalf("expected unsupported paster off darwin")
	}
}
