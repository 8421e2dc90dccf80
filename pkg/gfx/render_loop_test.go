package gfx

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderFixture struct {
	stop     *StopSender
	resize   *ResizeSender
	loop     *RenderLoop
	ctx      *fakeContext
	current  *fakeCurrentContext
	renderer *fakeRenderer
	hook     *test.Hook
}

func newRenderFixture(factoryErr error) *renderFixture {
	logger, hook := test.NewNullLogger()
	stopSender, stopReceiver := NewStopSignal()
	resizeSender, resizeReceiver := NewResizeSignal()
	current := &fakeCurrentContext{}
	renderer := &fakeRenderer{version: "4.6.0 fake"}
	return &renderFixture{
		stop:     stopSender,
		resize:   resizeSender,
		loop:     NewRenderLoop(stopReceiver, resizeReceiver, fakeFactory(renderer, factoryErr), log.NewEntry(logger)),
		ctx:      &fakeContext{current: current},
		current:  current,
		renderer: renderer,
		hook:     hook,
	}
}

func (f *renderFixture) messages() []string {
	var out []string
	for _, entry := range f.hook.AllEntries() {
		out = append(out, entry.Message)
	}
	return out
}

func TestRenderLoopAppliesOnlyLatestResize(t *testing.T) {
	f := newRenderFixture(nil)

	require.NoError(t, f.resize.Send(Size{Width: 1024, Height: 768}))
	require.NoError(t, f.resize.Send(Size{Width: 640, Height: 480}))

	stopped, err := f.loop.step(f.current, f.renderer)
	require.NoError(t, err)
	assert.False(t, stopped)

	want := []Size{{Width: 640, Height: 480}}
	assert.Equal(t, want, f.renderer.viewports)
	assert.Equal(t, want, f.current.resizes)
	assert.Equal(t, Size{Width: 640, Height: 480}, f.loop.Viewport().Size())
	assert.Equal(t, 1, f.current.swaps, "resize and present happen in the same iteration")

	stopped, err = f.loop.step(f.current, f.renderer)
	require.NoError(t, err)
	assert.False(t, stopped)
	assert.Equal(t, want, f.renderer.viewports, "no resize pending, no viewport update")
	assert.Equal(t, 2, f.current.swaps)
	assert.Equal(t, 2, f.renderer.renders)
	assert.Contains(t, f.messages(), "Resize to 640x480")
	assert.NotContains(t, f.messages(), "Resize to 1024x768")
}

func TestRenderLoopRepeatedSizeKeepsViewportState(t *testing.T) {
	f := newRenderFixture(nil)

	require.NoError(t, f.resize.Send(Size{Width: 800, Height: 600}))
	_, err := f.loop.step(f.current, f.renderer)
	require.NoError(t, err)
	version := f.loop.Viewport().Version()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.resize.Send(Size{Width: 800, Height: 600}))
	}
	_, err = f.loop.step(f.current, f.renderer)
	require.NoError(t, err)

	assert.Equal(t, version, f.loop.Viewport().Version())
	assert.Equal(t, Size{Width: 800, Height: 600}, f.loop.Viewport().Size())
}

func TestRenderLoopStopsOnStopSignal(t *testing.T) {
	f := newRenderFixture(nil)
	exited := make(chan struct{})
	thread := StartRenderThread(f.ctx, f.loop, func() { close(exited) })

	require.NoError(t, f.stop.Send())
	require.NoError(t, thread.Join())
	<-exited

	assert.Equal(t, Terminating, f.loop.State())
	assert.Equal(t, 1, f.ctx.made)
	assert.Equal(t, 1, f.current.released)
	assert.Equal(t, 1, f.renderer.closed)
	assert.Equal(t, uint64(f.current.swaps), f.loop.Frames())
	assert.Contains(t, f.messages(), "OpenGL version 4.6.0 fake")

	assert.ErrorIs(t, f.stop.Send(), ErrReceiverGone, "a second stop is never observed")
	assert.ErrorIs(t, f.resize.Send(Size{Width: 1, Height: 1}), ErrReceiverGone)
}

func TestRenderLoopActivationFailure(t *testing.T) {
	f := newRenderFixture(nil)
	f.ctx.err = errors.New("no pixel format")

	thread := StartRenderThread(f.ctx, f.loop, nil)
	err := thread.Join()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pixel format")
	assert.Equal(t, Activating, f.loop.State())
	assert.Zero(t, f.current.released)
	assert.ErrorIs(t, f.stop.Send(), ErrReceiverGone)
}

func TestRenderLoopFunctionTableFailure(t *testing.T) {
	loadErr := errors.New("glGetString missing")
	f := newRenderFixture(loadErr)

	thread := StartRenderThread(f.ctx, f.loop, nil)
	err := thread.Join()

	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, 1, f.current.released, "context released on the render thread")
	assert.Zero(t, f.renderer.closed)
}

func TestRenderLoopSwapFailureIsFatal(t *testing.T) {
	f := newRenderFixture(nil)
	lost := errors.New("context lost")
	f.current.swapErr = lost

	thread := StartRenderThread(f.ctx, f.loop, nil)
	err := thread.Join()

	assert.ErrorIs(t, err, ErrPresent)
	assert.ErrorIs(t, err, lost)
	assert.Equal(t, 1, f.current.swaps, "presentation failures are not retried")
	assert.Equal(t, 1, f.current.released)
	assert.Equal(t, 1, f.renderer.closed)
}

func TestRenderThreadRecoversPanic(t *testing.T) {
	f := newRenderFixture(nil)
	f.current.onSwap = func(n int) {
		if n == 3 {
			panic("driver crashed")
		}
	}
	exited := make(chan struct{})

	thread := StartRenderThread(f.ctx, f.loop, func() { close(exited) })
	err := thread.Join()
	<-exited

	assert.ErrorIs(t, err, ErrRenderPanic)
	assert.Contains(t, err.Error(), "driver crashed")
	assert.Equal(t, 1, f.current.released)
	assert.ErrorIs(t, f.stop.Send(), ErrReceiverGone)
}

func TestRenderThreadDone(t *testing.T) {
	f := newRenderFixture(nil)
	thread := StartRenderThread(f.ctx, f.loop, nil)

	select {
	case <-thread.Done():
		t.Fatal("render thread finished without a stop signal")
	default:
	}

	require.NoError(t, f.stop.Send())
	select {
	case <-thread.Done():
	case <-time.After(time.Second):
		t.Fatal("render thread did not finish after stop")
	}
	assert.NoError(t, thread.Join())
	assert.NoError(t, thread.Join(), "Join is repeatable")
}

func TestRenderThreadJoinWaitsForOnExit(t *testing.T) {
	f := newRenderFixture(nil)
	var finished atomic.Bool
	thread := StartRenderThread(f.ctx, f.loop, func() {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	require.NoError(t, f.stop.Send())
	require.NoError(t, thread.Join())
	assert.True(t, finished.Load(), "Join returned while onExit was still running")
}

func TestRenderStateString(t *testing.T) {
	tests := []struct {
		state    RenderState
		expected string
	}{
		{Activating, "activating"},
		{Running, "running"},
		{Terminating, "terminating"},
		{RenderState(7), "RenderState(7)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}
