package platform

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event processing and window management are only valid on the
	// thread that started the process.
	runtime.LockOSThread()
}

// Init must be called from the main goroutine before any window is created.
func Init() error {
	return guard(func() {
		if err := glfw.Init(); err != nil {
			panic(err)
		}
	})
}

// Terminate must be called from the main goroutine after every window is closed.
func Terminate() {
	glfw.Terminate()
}

type glfwWindowWrapper struct {
	glw     *glfw.Window
	context *glfwContext
	pending []Event
}

func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	var glw *glfw.Window
	err := guard(func() {
		glfw.DefaultWindowHints()
		glfw.WindowHint(glfw.Resizable, glfw.True)
		// WindowConfig sizes are logical, let GLFW scale them on high-DPI monitors.
		glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
		if runtime.GOOS == "darwin" {
			// without explicit hints macOS hands out a legacy 2.1 context
			glfw.WindowHint(glfw.ContextVersionMajor, 4)
			glfw.WindowHint(glfw.ContextVersionMinor, 1)
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
		var err error
		glw, err = glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
		if err != nil {
			panic(err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindowWrapper{
		glw:     glw,
		context: &glfwContext{glw: glw, vsync: conf.VSync},
	}
	w.registerCallbacks()
	glfw.DetachCurrentContext()
	return w, nil
}

func (w *glfwWindowWrapper) registerCallbacks() {
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(Resized{Width: width, Height: height})
	})
	w.glw.SetCloseCallback(func(_ *glfw.Window) {
		w.push(CloseRequested{})
	})
	w.glw.SetRefreshCallback(func(_ *glfw.Window) {
		w.push(Expose{})
	})
	w.glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		code := uint64(scancode)
		label := glfw.GetKeyName(key, scancode)
		if action == glfw.Release {
			w.push(KeyRelease{Code: code, Label: label})
			return
		}
		w.push(KeyPress{Code: code, Label: label})
	})
	w.glw.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := gw.GetCursorPos()
		if action == glfw.Release {
			w.push(ButtonRelease{Button: uint32(button), X: int(x), Y: int(y)})
			return
		}
		w.push(ButtonPress{Button: uint32(button), X: int(x), Y: int(y)})
	})
	w.glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(MotionNotify{X: int(x), Y: int(y)})
	})
	w.glw.SetScrollCallback(func(gw *glfw.Window, xoff, yoff float64) {
		x, y := gw.GetCursorPos()
		w.push(MouseWheel{DeltaX: xoff, DeltaY: yoff, X: int(x), Y: int(y)})
	})
	w.glw.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.push(EnterNotify{})
			return
		}
		w.push(LeaveNotify{})
	})
}

// push is only reached from callbacks, which GLFW runs on the main thread
// while it processes events.
func (w *glfwWindowWrapper) push(event Event) {
	w.pending = append(w.pending, event)
}

// NextEventTimeout returns the next queued event, pumping the OS event source
// when the queue is empty. A negative timeout waits until an event arrives or
// Wake is called.
func (w *glfwWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	if len(w.pending) == 0 {
		switch {
		case timeoutMs < 0:
			glfw.WaitEvents()
		case timeoutMs == 0:
			glfw.PollEvents()
		default:
			glfw.WaitEventsTimeout(float64(timeoutMs) / 1000)
		}
	}
	if len(w.pending) == 0 {
		return TimeoutEvent{}
	}
	event := w.pending[0]
	w.pending[0] = nil
	w.pending = w.pending[1:]
	return event
}

func (w *glfwWindowWrapper) Wake() {
	glfw.PostEmptyEvent()
}

func (w *glfwWindowWrapper) Context() PlatformContext {
	return w.context
}

func (w *glfwWindowWrapper) Close() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	w.pending = nil
}

type glfwContext struct {
	glw      *glfw.Window
	vsync    bool
	consumed atomic.Bool
}

func (c *glfwContext) MakeCurrent() (PlatformCurrentContext, error) {
	if !c.consumed.CompareAndSwap(false, true) {
		return nil, ErrContextConsumed
	}
	err := guard(func() {
		c.glw.MakeContextCurrent()
		if c.vsync {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("make context current: %w", err)
	}
	return &glfwCurrentContext{glw: c.glw}, nil
}

type glfwCurrentContext struct {
	glw *glfw.Window
}

func (c *glfwCurrentContext) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// Resize is a no-op: the GLFW default framebuffer follows the window size.
func (c *glfwCurrentContext) Resize(width, height int) {}

func (c *glfwCurrentContext) SwapBuffers() error {
	return guard(c.glw.SwapBuffers)
}

func (c *glfwCurrentContext) Release() {
	glfw.DetachCurrentContext()
}

// guard turns the panics go-gl/glfw raises for GLFW errors into errors.
func guard(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("glfw: %v", r)
		}
	}()
	f()
	return nil
}
