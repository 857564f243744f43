package main

import (
	"log"

	"github.com/gen2brain/beeep"

	"pastepill/internal/bridge"
)

// desktopNotifier tells the user about things they cannot see in the pill:
// text left on the clipboard for a manual paste, and failed commands.
type desktopNotifier struct{}

func (desktopNotifier) Notify(e bridge.Event) {
	switch e.Name {
	case bridge.EventPasted:
		if e.Outcome == bridge.OutcomeClipboardOnly {
			go notifyInfo("📋 Copied to clipboard", preview(e.Text))
		}
	case bridge.EventError:
		go notifyError("❌ "+e.Op+" failed", e.Message)
	}
}

func notifyInfo(summary, body string) {
	if err := beeep.Notify(summary, body, ""); err != nil {
		log.Printf("notify: %v", err)
	}
}

func notifyError(summary, body string) {
	if err := beeep.Alert(summary, body, ""); err != nil {
		log.Printf("notify: %v", err)
	}
}

// preview returns the first 50 runes of s, with "…" appended if truncated.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= 50 {
		return s
	}
	return string(runes[:50]) + "…"
}
