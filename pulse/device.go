package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter as well as
// the configuration the Surface was configured with.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
	Config  *wgpu.SurfaceConfiguration

	// size of the window in pixels at the time the context was created
	Width, Height uint32
}

// New creates a webgpu context that presents to the surface described by sd.
// The surface is configured for a drawable area of width x height pixels.
//
// An empty size is rejected before anything is acquired.
// If no adapter can present to the surface, ErrNoAdapter is returned.
// If the device request fails, a *DeviceRequestError is returned.
// New must only be called once per window.
func New(sd *wgpu.SurfaceDescriptor, width, height uint32) (*Context, error) {
	b := newNativeBackend()
	defer b.close()

	return newContext(b, sd, width, height)
}

func newContext(b backend, sd *wgpu.SurfaceDescriptor, width, height uint32) (st *Context, err error) {
	// wgpu aborts the process when configuring an empty surface, e.g. of a minimized window
	if width == 0 || height == 0 {
		return nil, errors.Newf("surface size %dx%d is empty", width, height)
	}

	defer func() {
		if err != nil && st != nil {
			b.Release(st)
			st = nil
		}
	}()

	st = &Context{Width: width, Height: height}

	// create a Surface based on the window
	st.Surface = b.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = b.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    st.Surface,
		PowerPreference:      wgpu.PowerPreferenceUndefined,
		ForceFallbackAdapter: false,
	})

	if err != nil {
		return st, errors.WithSecondaryError(ErrNoAdapter, err)
	}

	if st.Adapter == nil {
		return st, ErrNoAdapter
	}

	// get a Device with the default features and limits
	st.Device, st.Queue, err = b.RequestDevice(st.Adapter, &wgpu.DeviceDescriptor{
		Label: "Device",
	})

	if err != nil {
		return st, &DeviceRequestError{Cause: err}
	}

	caps := b.Capabilities(st.Surface, st.Adapter)
	if len(caps.Formats) == 0 {
		// the adapter was requested to be compatible, but can not present after all
		return st, errors.WithSecondaryError(ErrNoAdapter, errors.New("surface reports no formats"))
	}

	slog.Debug("Available surface formats", slog.Any("formats", caps.Formats))

	st.Config = surfaceConfig(caps, width, height)
	b.Configure(st.Surface, st.Adapter, st.Device, st.Config)

	slog.Info("Surface configured",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Any("format", st.Config.Format),
	)

	return st, nil
}

func surfaceConfig(caps wgpu.SurfaceCapabilities, width, height uint32) *wgpu.SurfaceConfiguration {
	alphaMode := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alphaMode = caps.AlphaModes[0]
	}

	return &wgpu.SurfaceConfiguration{
		Usage: wgpu.TextureUsageRenderAttachment,

		// the first format is the one the surface prefers
		Format:      caps.Formats[0],
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   alphaMode,
	}
}

// Describe returns the adapter name together with its device type,
// e.g. "NVIDIA GeForce RTX 3070 (DiscreteGPU)"
func (d *Context) Describe() string {
	return describeAdapter(d.Adapter.GetInfo())
}

func describeAdapter(info wgpu.AdapterInfo) string {
	return fmt.Sprintf("%s (%v)", info.Name, info.AdapterType)
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
