package gfx

import (
	"errors"

	"github.com/kjkrol/cubic/internal/platform"
)

var (
	// ErrReceiverGone is returned by signal senders once the render loop has exited.
	ErrReceiverGone = errors.New("gfx: signal receiver is gone")
	// ErrContextConsumed is returned when a Context is made current a second time.
	ErrContextConsumed = platform.ErrContextConsumed
	// ErrContextTaken is returned when a Window hands out its context a second time.
	ErrContextTaken = errors.New("gfx: window context already taken")
	ErrPresent      = errors.New("gfx: failed to swap buffers")
	ErrRenderPanic  = errors.New("gfx: render thread panicked")
)
