package gfx

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

type RenderState int

const (
	Activating RenderState = iota
	Running
	Terminating
)

func (s RenderState) String() string {
	switch s {
	case Activating:
		return "activating"
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	default:
		return fmt.Sprintf("RenderState(%d)", int(s))
	}
}

// RenderLoop owns the graphics context once it has been made current. Every
// iteration checks for stop, applies the newest pending resize, draws and
// presents, in that order.
type RenderLoop struct {
	stop     *StopReceiver
	resize   *ResizeReceiver
	factory  RendererFactory
	log      *log.Entry
	state    RenderState
	viewport *Viewport
	meter    *frameMeter
	frames   uint64
	now      func() time.Time
}

func NewRenderLoop(stop *StopReceiver, resize *ResizeReceiver, factory RendererFactory, logger *log.Entry) *RenderLoop {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &RenderLoop{
		stop:     stop,
		resize:   resize,
		factory:  factory,
		log:      logger.WithField("thread", "render"),
		viewport: NewViewport(Size{}),
		now:      time.Now,
	}
}

// State is only meaningful from the render thread or after it has been joined.
func (l *RenderLoop) State() RenderState {
	return l.state
}

// Viewport has the same access rules as State.
func (l *RenderLoop) Viewport() *Viewport {
	return l.viewport
}

// Frames returns the number of presented frames, with the same access rules as State.
func (l *RenderLoop) Frames() uint64 {
	return l.frames
}

// Run activates ctx on the calling thread and renders until a stop signal is
// received. The context and both signal receivers are released before Run
// returns, on every path.
func (l *RenderLoop) Run(ctx Context) error {
	defer l.resize.Close()
	defer l.stop.Close()

	l.setState(Activating)
	cur, err := ctx.MakeCurrent()
	if err != nil {
		return fmt.Errorf("failed to make context current: %w", err)
	}
	defer cur.Release()

	renderer, err := l.factory(cur)
	if err != nil {
		return fmt.Errorf("failed to load graphics functions: %w", err)
	}
	defer renderer.Close()
	l.log.Infof("OpenGL version %s", renderer.Version())

	l.setState(Running)
	l.meter = newFrameMeter(time.Second, l.now(), l.reportFrames)
	for {
		stopped, err := l.step(cur, renderer)
		if err != nil {
			return err
		}
		if stopped {
			break
		}
	}
	l.setState(Terminating)
	return nil
}

func (l *RenderLoop) step(cur CurrentContext, renderer Renderer) (bool, error) {
	if l.stop.TryRecv() {
		l.log.Debug("Stop signal received")
		return true, nil
	}
	if size, ok := l.resize.Latest(); ok {
		l.log.Infof("Resize to %dx%d", size.Width, size.Height)
		cur.Resize(size.Width, size.Height)
		renderer.Viewport(size.Width, size.Height)
		l.viewport.Set(size)
	}
	renderer.Render()
	if err := cur.SwapBuffers(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrPresent, err)
	}
	l.frames++
	if l.meter != nil {
		l.meter.tick(l.now())
	}
	return false, nil
}

func (l *RenderLoop) setState(state RenderState) {
	l.state = state
	l.log.Debugf("Render loop %s", state)
}

func (l *RenderLoop) reportFrames(frames uint64, elapsed time.Duration) {
	l.log.Debugf("%.1f frames per second", framesPerSecond(frames, elapsed))
}

// RenderThread runs a RenderLoop on a goroutine locked to its own OS thread,
// so the context stays current on that one thread until it is released.
type RenderThread struct {
	done   chan struct{}
	exited chan struct{}
	err    error
}

// StartRenderThread moves ctx to a new render thread. onExit runs on that
// thread after the loop has finished, normally or not, and before Join returns.
func StartRenderThread(ctx Context, loop *RenderLoop, onExit func()) *RenderThread {
	t := &RenderThread{done: make(chan struct{}), exited: make(chan struct{})}
	go t.run(ctx, loop, onExit)
	return t
}

func (t *RenderThread) run(ctx Context, loop *RenderLoop, onExit func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(t.exited)
	defer func() {
		if r := recover(); r != nil {
			t.err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
		close(t.done)
		if onExit != nil {
			onExit()
		}
	}()
	t.err = loop.Run(ctx)
}

// Done is closed once the render loop has returned. onExit may still be
// running at that point.
func (t *RenderThread) Done() <-chan struct{} {
	return t.done
}

// Join blocks until the render thread has terminated, onExit included, and
// returns the error that ended it, if any.
func (t *RenderThread) Join() error {
	<-t.exited
	return t.err
}
