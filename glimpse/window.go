package glimpse

import "github.com/cogentcore/webgpu/wgpu"

type Window interface {
	// GetSize returns the size of the drawable area in pixels
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// WaitEvents blocks until at least one event is available and returns
	// all events received since the previous call
	WaitEvents() []Event

	Terminate()
}
