package gfx

import (
	"unsafe"

	"github.com/kjkrol/cubic/internal/platform"
)

// Context is a graphics context that is not current on any thread. It is
// handed from the window thread to the render thread, which makes it current
// exactly once; the window thread must not keep a reference to it.
type Context interface {
	MakeCurrent() (CurrentContext, error)
}

// CurrentContext is only valid on the thread that made it current.
type CurrentContext interface {
	ProcAddress(name string) unsafe.Pointer
	Resize(width, height int)
	SwapBuffers() error
	Release()
}

type platformContext struct {
	ctx platform.PlatformContext
}

func (c platformContext) MakeCurrent() (CurrentContext, error) {
	cur, err := c.ctx.MakeCurrent()
	if err != nil {
		return nil, err
	}
	return cur, nil
}
