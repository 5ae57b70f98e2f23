package orion

import "github.com/oliverbestmann/gpuboot/glimpse"

//go:generate go tool stringer -type=State

// State of the event loop.
type State uint8

const (
	Running State = iota
	Terminated
)

// Step returns the state after handling ev. A close request or a press of the
// Escape key terminates the loop, every other event leaves the state unchanged.
// Terminated is final.
func Step(state State, ev glimpse.Event) State {
	if state == Terminated {
		return Terminated
	}

	switch ev := ev.(type) {
	case glimpse.CloseRequested:
		return Terminated

	case glimpse.KeyInput:
		if ev.Key == glimpse.KeyEscape && ev.Action == glimpse.Pressed {
			return Terminated
		}
	}

	return state
}
