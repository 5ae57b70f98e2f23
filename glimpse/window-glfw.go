package glimpse

import (
	"log/slog"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw must only ever be called from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win   *glfw.Window
	queue eventQueue
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize glfw")
	}

	// the surface is created by wgpu, glfw must not create a gl context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	w := &glfwWindow{win: window}

	configureEvents(window, &w.queue)

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) WaitEvents() []Event {
	for {
		glfw.WaitEvents()

		// WaitEvents may return without any callback being fired
		if events := g.queue.drain(); len(events) > 0 {
			return events
		}
	}
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func configureEvents(window *glfw.Window, queue *eventQueue) {
	window.SetCloseCallback(func(_win *glfw.Window) {
		queue.push(CloseRequested{})
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		queue.push(KeyInput{
			Key:      keyOf(glfwKey),
			Scancode: scancode,
			Action:   actionOf(action),
		})
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		queue.push(Resized{Width: uint32(width), Height: uint32(height)})
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		queue.push(CursorMoved{X: float32(xpos), Y: float32(ypos)})
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		queue.push(MouseInput{Button: MouseButton(btn), Action: actionOf(action)})
	})

	window.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		queue.push(Focused{Focused: focused})
	})
}

func keyOf(glfwKey glfw.Key) Key {
	key, ok := glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unknown key code",
			slog.Int("code", int(glfwKey)),
		)

		return KeyUnknown
	}

	return key
}

func actionOf(action glfw.Action) Action {
	switch action {
	case glfw.Release:
		return Released
	case glfw.Repeat:
		return Repeated
	default:
		return Pressed
	}
}
