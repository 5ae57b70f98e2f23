package orion

import (
	"log/slog"

	"github.com/oliverbestmann/gpuboot/glimpse"
)

type EventSource interface {
	// WaitEvents blocks until events are available
	WaitEvents() []glimpse.Event
}

// Loop dispatches events from src until the state is Terminated.
// Events following the terminating event in the same batch are dropped.
func Loop(src EventSource) State {
	state := Running

	for state == Running {
		for _, ev := range src.WaitEvents() {
			state = Step(state, ev)

			if state == Terminated {
				slog.Info("Exit requested", slog.Any("event", ev))
				break
			}
		}
	}

	return state
}
