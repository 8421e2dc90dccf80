package gfx

import "sync"

type Size struct {
	Width, Height int
}

// NewStopSignal returns both ends of a zero-capacity rendezvous channel. Send
// completes only when the receiver takes the signal, so the sender knows the
// render loop has started to unwind.
func NewStopSignal() (*StopSender, *StopReceiver) {
	s := &stopSignal{
		ch:   make(chan struct{}),
		gone: make(chan struct{}),
	}
	return &StopSender{s: s}, &StopReceiver{s: s}
}

type stopSignal struct {
	ch   chan struct{}
	gone chan struct{}
	once sync.Once
}

type StopSender struct {
	s *stopSignal
}

// Send blocks until the receiver accepts the signal. It returns
// ErrReceiverGone without blocking once the receiver is closed.
func (s *StopSender) Send() error {
	select {
	case <-s.s.gone:
		return ErrReceiverGone
	default:
	}
	select {
	case s.s.ch <- struct{}{}:
		return nil
	case <-s.s.gone:
		return ErrReceiverGone
	}
}

type StopReceiver struct {
	s *stopSignal
}

// TryRecv reports whether a sender is waiting, taking its signal. It never blocks.
func (r *StopReceiver) TryRecv() bool {
	select {
	case <-r.s.ch:
		return true
	default:
		return false
	}
}

// Close marks the receiver gone; pending and future sends fail.
func (r *StopReceiver) Close() {
	r.s.once.Do(func() { close(r.s.gone) })
}

// NewResizeSignal returns both ends of an unbounded queue of sizes. Sends
// never block and the receiver only looks at the newest pending value.
func NewResizeSignal() (*ResizeSender, *ResizeReceiver) {
	q := &resizeQueue{}
	return &ResizeSender{q: q}, &ResizeReceiver{q: q}
}

type resizeQueue struct {
	mu      sync.Mutex
	pending []Size
	closed  bool
}

// ResizeSender is safe for concurrent use by multiple producers.
type ResizeSender struct {
	q *resizeQueue
}

func (s *ResizeSender) Send(size Size) error {
	s.q.mu.Lock()
	defer s.q.mu.Unlock()
	if s.q.closed {
		return ErrReceiverGone
	}
	s.q.pending = append(s.q.pending, size)
	return nil
}

type ResizeReceiver struct {
	q *resizeQueue
}

// Latest drains every pending size and returns the last one sent.
func (r *ResizeReceiver) Latest() (Size, bool) {
	r.q.mu.Lock()
	defer r.q.mu.Unlock()
	n := len(r.q.pending)
	if n == 0 {
		return Size{}, false
	}
	latest := r.q.pending[n-1]
	r.q.pending = r.q.pending[:0]
	return latest, true
}

func (r *ResizeReceiver) Close() {
	r.q.mu.Lock()
	r.q.closed = true
	r.q.pending = nil
	r.q.mu.Unlock()
}
