package platform

import (
	"errors"
	"unsafe"
)

var ErrContextConsumed = errors.New("platform: context already made current")

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// PlatformWindowWrapper is owned by the thread that created it. Only Wake may
// be called from another thread.
type PlatformWindowWrapper interface {
	Close()
	NextEventTimeout(timeoutMs int) Event
	Wake()
	Context() PlatformContext
}

// PlatformContext is a graphics context that is not current on any thread.
type PlatformContext interface {
	MakeCurrent() (PlatformCurrentContext, error)
}

// PlatformCurrentContext must only be used on the thread that made it current.
type PlatformCurrentContext interface {
	ProcAddress(name string) unsafe.Pointer
	Resize(width, height int)
	SwapBuffers() error
	Release()
}
