package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"pastepill/internal/bridge"
)

// tray is the system tray indicator. running reports whether its Quit item
// is live; only then may a window close be turned into a hide.
type tray interface {
	bridge.Sink
	start()
	stop()
	running() bool
}

type TrayState int

const (
	TrayHidden     TrayState = iota // gray outline
	TrayRecording                   // red, short pill
	TrayTranscript                  // amber, wide pill
	TrayPasted                      // green
	TrayError                       // orange
)

// trayStateFor maps a bridge event to an icon. ok is false for events that
// leave the icon alone.
func trayStateFor(e bridge.Event) (s TrayState, ok bool) {
	switch e.Name {
	case bridge.EventState:
		switch e.State {
		case bridge.StateRecording:
			return TrayRecording, true
		case bridge.StateTranscript:
			return TrayTranscript, true
		default:
			return TrayHidden, true
		}
	case bridge.EventPasted:
		return TrayPasted, true
	case bridge.EventError:
		return TrayError, true
	}
	return 0, false
}

// iconStyle describes the pill drawn for a tray state: its width within the
// square icon and whether it is filled or only outlined.
type iconStyle struct {
	c      color.RGBA
	width  float64
	filled bool
}

var trayStyles = map[TrayState]iconStyle{
	TrayHidden:     {color.RGBA{130, 130, 130, 255}, 14, false},
	TrayRecording:  {color.RGBA{220, 50, 50, 255}, 14, true},
	TrayTranscript: {color.RGBA{230, 170, 0, 255}, 20, true},
	TrayPasted:     {color.RGBA{50, 200, 80, 255}, 20, true},
	TrayError:      {color.RGBA{255, 100, 0, 255}, 20, true},
}

func trayIcons() map[TrayState][]byte {
	icons := make(map[TrayState][]byte, len(trayStyles))
	for s, st := range trayStyles {
		icons[s] = pillIcon(st)
	}
	return icons
}

const iconSize = 22

// pillIcon draws a horizontal stadium (the pill window's shape) centred in a
// square PNG. Outlined pills use a 2px ring.
func pillIcon(st iconStyle) []byte {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	const radius = 5.0
	cx, cy := float64(iconSize)/2, float64(iconSize)/2
	half := st.width/2 - radius // half length of the straight segment

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			px, py := float64(x)+0.5-cx, float64(y)+0.5-cy
			// Distance from the segment [-half, half] on the x axis.
			dx := math.Max(math.Abs(px)-half, 0)
			d := math.Hypot(dx, py) - radius
			a := coverage(d, st.filled)
			if a > 0 {
				img.Set(x, y, color.NRGBA{st.c.R, st.c.G, st.c.B, uint8(255 * a)})
			}
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// coverage turns a signed distance to the pill edge into opacity with a
// one-pixel soft edge.
func coverage(d float64, filled bool) float64 {
	if !filled {
		d = math.Abs(d+1) - 1
	}
	return math.Min(math.Max(0.5-d, 0), 1)
}
