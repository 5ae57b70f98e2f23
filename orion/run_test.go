package orion

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/gpuboot/glimpse"
	"github.com/oliverbestmann/gpuboot/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	fakeSource

	width, height uint32
	terminated    bool
}

func (f *fakeWindow) GetSize() (uint32, uint32) {
	return f.width, f.height
}

func (f *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{}
}

func (f *fakeWindow) Terminate() {
	f.terminated = true
}

type fakeContext struct {
	released bool
}

func (f *fakeContext) Describe() string {
	return "Fake GPU (DiscreteGPU)"
}

func (f *fakeContext) Release() {
	f.released = true
}

// withFakes replaces the window and context constructors for the duration of the test.
func withFakes(t *testing.T, win *fakeWindow, ctx *fakeContext, ctxErr error) *[2]uint32 {
	t.Helper()

	var size [2]uint32

	prevWindow, prevContext := newWindow, newRenderContext
	t.Cleanup(func() {
		newWindow, newRenderContext = prevWindow, prevContext
	})

	newWindow = func(width, height int, title string) (glimpse.Window, error) {
		return win, nil
	}

	newRenderContext = func(sd *wgpu.SurfaceDescriptor, width, height uint32) (renderContext, error) {
		size = [2]uint32{width, height}

		if ctxErr != nil {
			return nil, ctxErr
		}

		return ctx, nil
	}

	return &size
}

func TestRunReportsDeviceAndStopsOnClose(t *testing.T) {
	win := &fakeWindow{
		width:  800,
		height: 600,
		fakeSource: fakeSource{batches: [][]glimpse.Event{
			{glimpse.KeyInput{Key: glimpse.KeyEscape, Action: glimpse.Released}},
			{glimpse.CloseRequested{}},
		}},
	}

	ctx := &fakeContext{}
	size := withFakes(t, win, ctx, nil)

	var out bytes.Buffer
	err := Run(RunOptions{Output: &out})
	require.NoError(t, err)

	assert.Equal(t, "Using device Fake GPU (DiscreteGPU)\n", out.String())
	assert.Equal(t, [2]uint32{800, 600}, *size)
	assert.Equal(t, 2, win.calls)
	assert.True(t, ctx.released)
	assert.True(t, win.terminated)
}

func TestRunInitFailureSkipsLoop(t *testing.T) {
	// no batches, the loop must not start
	win := &fakeWindow{width: 800, height: 600}
	withFakes(t, win, nil, pulse.ErrNoAdapter)

	var out bytes.Buffer
	err := Run(RunOptions{Output: &out})
	require.Error(t, err)

	assert.True(t, errors.Is(err, pulse.ErrNoAdapter))
	assert.Equal(t, "initialize rendering: no compatible adapter found", err.Error())
	assert.Equal(t, 0, win.calls)
	assert.Empty(t, out.String())
	assert.True(t, win.terminated)
}

func TestRunWindowFailure(t *testing.T) {
	prevWindow := newWindow
	t.Cleanup(func() { newWindow = prevWindow })

	newWindow = func(width, height int, title string) (glimpse.Window, error) {
		return nil, errors.New("no display")
	}

	err := Run(RunOptions{Output: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Equal(t, "open window: no display", err.Error())
}
