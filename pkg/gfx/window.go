package gfx

import (
	"fmt"

	"github.com/kjkrol/cubic/internal/platform"
)

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{Width: w.Width, Height: w.Height, Title: w.Title, VSync: w.VSync}
}

// EventSource is the OS event pump driven by the EventLoop. NextEventTimeout
// returns TimeoutEvent when nothing arrived; a negative timeout blocks until
// an event arrives or Wake is called. Wake is safe to call from any thread.
type EventSource interface {
	NextEventTimeout(timeoutMs int) Event
	Wake()
}

// Window owns the platform window and must stay on the thread that created it.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	width              int
	height             int
	title              string
	contextTaken       bool
}

// NewWindow creates the window together with its graphics context, which is
// left uncurrented until TakeContext hands it to the render thread.
func NewWindow(conf WindowConfig) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	return newWindow(conf, wrapper), nil
}

func newWindow(conf WindowConfig, wrapper platform.PlatformWindowWrapper) *Window {
	return &Window{
		platformWinWrapper: wrapper,
		width:              conf.Width,
		height:             conf.Height,
		title:              conf.Title,
	}
}

// Size returns the logical size the window was created with.
func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) TakeContext() (Context, error) {
	if w.contextTaken {
		return nil, ErrContextTaken
	}
	ctx := w.platformWinWrapper.Context()
	if ctx == nil {
		return nil, fmt.Errorf("window %q has no graphics context", w.title)
	}
	w.contextTaken = true
	return platformContext{ctx: ctx}, nil
}

// NextEventTimeout returns TimeoutEvent once the window is closed.
func (w *Window) NextEventTimeout(timeoutMs int) Event {
	if w.platformWinWrapper == nil {
		return TimeoutEvent{}
	}
	return convert(w.platformWinWrapper.NextEventTimeout(timeoutMs))
}

// Wake is a no-op once the window is closed.
func (w *Window) Wake() {
	if w.platformWinWrapper == nil {
		return
	}
	w.platformWinWrapper.Wake()
}

// Close destroys the platform window. The render thread must have been joined.
func (w *Window) Close() {
	if w.platformWinWrapper == nil {
		return
	}
	w.platformWinWrapper.Close()
	w.platformWinWrapper = nil
}
