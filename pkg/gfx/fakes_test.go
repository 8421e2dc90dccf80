package gfx

import "unsafe"

type fakeCurrentContext struct {
	resizes  []Size
	swaps    int
	released int
	swapErr  error
	onSwap   func(n int)
}

func (c *fakeCurrentContext) ProcAddress(string) unsafe.Pointer { return nil }

func (c *fakeCurrentContext) Resize(width, height int) {
	c.resizes = append(c.resizes, Size{Width: width, Height: height})
}

func (c *fakeCurrentContext) SwapBuffers() error {
	c.swaps++
	if c.onSwap != nil {
		c.onSwap(c.swaps)
	}
	return c.swapErr
}

func (c *fakeCurrentContext) Release() { c.released++ }

type fakeContext struct {
	current *fakeCurrentContext
	err     error
	made    int
}

func (c *fakeContext) MakeCurrent() (CurrentContext, error) {
	c.made++
	if c.err != nil {
		return nil, c.err
	}
	if c.made > 1 {
		return nil, ErrContextConsumed
	}
	return c.current, nil
}

type fakeRenderer struct {
	version   string
	viewports []Size
	renders   int
	closed    int
}

func (r *fakeRenderer) Version() string { return r.version }

func (r *fakeRenderer) Viewport(width, height int) {
	r.viewports = append(r.viewports, Size{Width: width, Height: height})
}

func (r *fakeRenderer) Render() { r.renders++ }

func (r *fakeRenderer) Close() { r.closed++ }

func fakeFactory(r *fakeRenderer, err error) RendererFactory {
	return func(CurrentContext) (Renderer, error) {
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

// fakeSource replays events, then blocks negative-timeout polls until woken.
type fakeSource struct {
	events []Event
	wake   chan struct{}
}

func newFakeSource(events ...Event) *fakeSource {
	return &fakeSource{events: events, wake: make(chan struct{}, 1)}
}

func (s *fakeSource) NextEventTimeout(timeoutMs int) Event {
	if len(s.events) > 0 {
		event := s.events[0]
		s.events = s.events[1:]
		return event
	}
	if timeoutMs < 0 {
		<-s.wake
	}
	return TimeoutEvent{}
}

func (s *fakeSource) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

type fakeJoiner struct {
	done chan struct{}
	err  error
	n    int
}

func newFinishedJoiner(err error) *fakeJoiner {
	j := &fakeJoiner{done: make(chan struct{}), err: err}
	close(j.done)
	return j
}

func (j *fakeJoiner) Done() <-chan struct{} { return j.done }

func (j *fakeJoiner) Join() error {
	j.n++
	<-j.done
	return j.err
}
