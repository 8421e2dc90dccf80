package gfx

import (
	"github.com/kjkrol/cubic/internal/platform"
)

type Event interface{}

type Expose struct{}

// Resized carries the new framebuffer size in pixels.
type Resized struct {
	Width, Height int
}
type CloseRequested struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type EnterNotify struct{}
type LeaveNotify struct{}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}

// LoopDestroyed is dispatched once, after the event loop decided to exit.
type LoopDestroyed struct{}
type UnexpectedEvent struct{}
type TimeoutEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.Resized:
		return Resized{Width: e.Width, Height: e.Height}
	case platform.CloseRequested:
		return CloseRequested{}
	case platform.Expose:
		return Expose{}
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Label: e.Label}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code, Label: e.Label}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case platform.MotionNotify:
		return MotionNotify{X: e.X, Y: e.Y}
	case platform.EnterNotify:
		return EnterNotify{}
	case platform.LeaveNotify:
		return LeaveNotify{}
	case platform.MouseWheel:
		return MouseWheel{DeltaX: e.DeltaX, DeltaY: e.DeltaY, X: e.X, Y: e.Y}
	case platform.TimeoutEvent:
		return TimeoutEvent{}
	default:
		return UnexpectedEvent{}
	}
}
