package glimpse

//go:generate go tool stringer -type=Action

type Action uint8

const (
	Pressed Action = iota
	Released
	Repeated
)

type MouseButton uint32

// Event is one of CloseRequested, KeyInput, Resized, CursorMoved, MouseInput or Focused.
type Event interface {
	isEvent()
}

// CloseRequested is emitted when the user asks the window to close.
type CloseRequested struct{}

type KeyInput struct {
	Key      Key
	Scancode int
	Action   Action
}

// Resized carries the new framebuffer size in pixels.
type Resized struct {
	Width, Height uint32
}

type CursorMoved struct {
	X, Y float32
}

type MouseInput struct {
	Button MouseButton
	Action Action
}

type Focused struct {
	Focused bool
}

func (CloseRequested) isEvent() {}
func (KeyInput) isEvent()       {}
func (Resized) isEvent()        {}
func (CursorMoved) isEvent()    {}
func (MouseInput) isEvent()     {}
func (Focused) isEvent()        {}

type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

// drain returns all queued events and leaves the queue empty.
// The returned slice is owned by the caller.
func (q *eventQueue) drain() []Event {
	if len(q.events) == 0 {
		return nil
	}

	events := q.events
	q.events = nil
	return events
}
