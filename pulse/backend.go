package pulse

import "github.com/cogentcore/webgpu/wgpu"

// backend is the subset of webgpu that New depends on.
type backend interface {
	CreateSurface(sd *wgpu.SurfaceDescriptor) *wgpu.Surface
	RequestAdapter(opts *wgpu.RequestAdapterOptions) (*wgpu.Adapter, error)
	RequestDevice(adapter *wgpu.Adapter, desc *wgpu.DeviceDescriptor) (*wgpu.Device, *wgpu.Queue, error)
	Capabilities(surface *wgpu.Surface, adapter *wgpu.Adapter) wgpu.SurfaceCapabilities
	Configure(surface *wgpu.Surface, adapter *wgpu.Adapter, device *wgpu.Device, config *wgpu.SurfaceConfiguration)

	// Release frees the handles that are set on the given context
	Release(ctx *Context)
}

type nativeBackend struct {
	instance *wgpu.Instance
}

func newNativeBackend() *nativeBackend {
	instance := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: wgpu.InstanceBackendAll,
	})

	return &nativeBackend{instance: instance}
}

func (b *nativeBackend) CreateSurface(sd *wgpu.SurfaceDescriptor) *wgpu.Surface {
	return b.instance.CreateSurface(sd)
}

func (b *nativeBackend) RequestAdapter(opts *wgpu.RequestAdapterOptions) (*wgpu.Adapter, error) {
	return b.instance.RequestAdapter(opts)
}

func (b *nativeBackend) RequestDevice(adapter *wgpu.Adapter, desc *wgpu.DeviceDescriptor) (*wgpu.Device, *wgpu.Queue, error) {
	device, err := adapter.RequestDevice(desc)
	if err != nil {
		return nil, nil, err
	}

	return device, device.GetQueue(), nil
}

func (b *nativeBackend) Capabilities(surface *wgpu.Surface, adapter *wgpu.Adapter) wgpu.SurfaceCapabilities {
	return surface.GetCapabilities(adapter)
}

func (b *nativeBackend) Configure(surface *wgpu.Surface, adapter *wgpu.Adapter, device *wgpu.Device, config *wgpu.SurfaceConfiguration) {
	surface.Configure(adapter, device, config)
}

func (b *nativeBackend) Release(ctx *Context) {
	ctx.Release()
}

// close releases the instance. Objects created from the instance stay valid.
func (b *nativeBackend) close() {
	b.instance.Release()
}
