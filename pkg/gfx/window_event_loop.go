package gfx

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
)

type ControlFlow int

const (
	Wait ControlFlow = iota
	Exit
)

// Joiner is the event loop's handle on the render thread.
type Joiner interface {
	Done() <-chan struct{}
	Join() error
}

// EventLoop pumps OS events on the window thread and forwards the ones the
// render thread cares about through the stop and resize signals. It never
// touches the graphics context.
type EventLoop struct {
	source EventSource
	stop   *StopSender
	resize *ResizeSender
	render Joiner
	flow   ControlFlow
	err    error
	log    *log.Entry
}

func NewEventLoop(
	source EventSource,
	stop *StopSender,
	resize *ResizeSender,
	render Joiner,
	logger *log.Entry,
) *EventLoop {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &EventLoop{
		source: source,
		stop:   stop,
		resize: resize,
		render: render,
		log:    logger.WithField("thread", "event"),
	}
}

func (el *EventLoop) Flow() ControlFlow {
	return el.flow
}

// Run dispatches events until a close request arrives or the render thread
// exits on its own, then joins the render thread. It returns the render
// thread's error, so a nil result means both loops shut down cleanly.
func (el *EventLoop) Run(strategy EventsConsumerStrategy) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if strategy == nil {
		strategy = DrainAll()
	}
	for el.flow != Exit {
		strategy.Consume(el.poll, el.handle, -1)
		if el.flow == Exit {
			break
		}
		select {
		case <-el.render.Done():
			el.log.Error("Render thread exited before close was requested")
			el.flow = Exit
		default:
		}
	}
	el.handle(LoopDestroyed{})
	return el.err
}

func (el *EventLoop) poll(timeoutMs int) (Event, bool) {
	event := el.source.NextEventTimeout(timeoutMs)
	if _, ok := event.(TimeoutEvent); ok {
		return nil, false
	}
	return event, true
}

func (el *EventLoop) handle(event Event) bool {
	switch e := event.(type) {
	case Resized:
		if err := el.resize.Send(Size{Width: e.Width, Height: e.Height}); err != nil {
			el.log.WithError(err).Debug("Dropped resize signal")
		}
	case CloseRequested:
		if err := el.stop.Send(); err != nil {
			el.log.WithError(err).Warn("Render thread already stopped")
		}
		el.flow = Exit
		return false
	case KeyPress:
		el.log.WithField("label", e.Label).Infof("Key event: %d", e.Code)
	case KeyRelease:
		el.log.WithField("label", e.Label).Debugf("Key release: %d", e.Code)
	case ButtonPress:
		el.log.Infof("Button event: %d", e.Button)
	case ButtonRelease:
		el.log.Debugf("Button release: %d", e.Button)
	case LoopDestroyed:
		if err := el.render.Join(); err != nil {
			el.err = fmt.Errorf("failed to join render thread: %w", err)
		}
	}
	return true
}
