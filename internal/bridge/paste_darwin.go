//go:build darwin

package bridge

import "time"

// NewPaster returns the platform paster: osascript + System Events.
func NewPaster(timeout time.Duration) Paster {
	return NewAppleScriptPaster(timeout)
}
