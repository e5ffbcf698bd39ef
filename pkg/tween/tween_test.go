package tween

import (
	"testing"

	"github.com/decker502/sadui/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liveColor 代替渲染出的颜色目标
type liveColor struct {
	c      types.Color
	writes int
}

func (l *liveColor) get() types.Color  { return l.c }
func (l *liveColor) set(c types.Color) { l.c = c; l.writes++ }

func tick(clock *Clock, s *Scheduler, dt float64, frames int) {
	for i := 0; i < frames; i++ {
		clock.Advance(dt)
		s.Update()
	}
}

func TestColorTransitionConverges(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)
	r := NewRunner(s)
	live := &liveColor{c: types.White}

	StartColorTransition(r, live.get, live.set, types.Gray, 0.25, false)
	tick(clock, s, 0.0625, 4)

	assert.Equal(t, types.Gray, live.c)
	assert.False(t, r.Running())
	assert.Equal(t, 0, s.Len())
}

func TestColorTransitionIntermediateValues(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)
	r := NewRunner(s)
	live := &liveColor{c: types.White}

	StartColorTransition(r, live.get, live.set, types.Black, 1, false)
	assert.Equal(t, types.White, live.c, "no write before the first tick")

	tick(clock, s, 0.5, 1)
	assert.InDelta(t, 0.5, live.c.R, 1e-9)
	assert.True(t, r.Running())
}

func TestColorTransitionRetriggerBlendsFromLiveColor(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)
	r := NewRunner(s)
	live := &liveColor{c: types.White}
	x := types.RGB(1, 0, 0)
	y := types.RGB(0, 0, 1)

	first := StartColorTransition(r, live.get, live.set, x, 1, false)
	tick(clock, s, 0.5, 1)
	partial := live.c
	require.NotEqual(t, x, partial)

	h := StartColorTransition(r, live.get, live.set, y, 1, false)
	assert.True(t, first.Cancelled())

	ct := h.task.(*ColorTransition)
	assert.Equal(t, partial, ct.Start(), "new run starts from the live color, not the old target")

	tick(clock, s, 0.25, 4)
	assert.Equal(t, y, live.c)
}

func TestColorTransitionOneLiveRunPerRunner(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)
	r := NewRunner(s)
	live := &liveColor{c: types.White}

	for i := 0; i < 5; i++ {
		StartColorTransition(r, live.get, live.set, types.Black, 1, false)
	}
	assert.Equal(t, 1, s.Len())
}

func TestColorTransitionZeroDurationSnaps(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)
	r := NewRunner(s)
	live := &liveColor{c: types.White}

	StartColorTransition(r, live.get, live.set, types.Black, 0, false)
	assert.Equal(t, types.Black, live.c)

	StartColorTransition(r, live.get, live.set, types.Gray, -1, false)
	assert.Equal(t, types.Gray, live.c)

	tick(clock, s, 0.016, 1)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, types.Gray, live.c)
}

func TestColorTransitionTimeScale(t *testing.T) {
	clock := NewClock()
	clock.SetTimeScale(0)
	s := NewScheduler(clock)

	scaled := &liveColor{c: types.White}
	unscaled := &liveColor{c: types.White}
	StartColorTransition(NewRunner(s), scaled.get, scaled.set, types.Black, 0.1, false)
	StartColorTransition(NewRunner(s), unscaled.get, unscaled.set, types.Black, 0.1, true)

	tick(clock, s, 0.05, 4)

	assert.Equal(t, types.White, scaled.c, "paused clock must not advance a scaled run")
	assert.Equal(t, types.Black, unscaled.c)
}

func TestRunnerStopKeepsLastWrittenValue(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)
	r := NewRunner(s)
	live := &liveColor{c: types.White}

	StartColorTransition(r, live.get, live.set, types.Black, 1, false)
	tick(clock, s, 0.5, 1)
	before := live.c
	writes := live.writes

	r.Stop()
	tick(clock, s, 0.5, 2)

	assert.Equal(t, before, live.c)
	assert.Equal(t, writes, live.writes)
}

func TestDelayAndCancelAll(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	fired := 0
	Delay(s, 0.125, func() { fired++ })
	tick(clock, s, 0.0625, 1)
	assert.Equal(t, 0, fired)
	tick(clock, s, 0.0625, 1)
	assert.Equal(t, 1, fired)

	h := Delay(s, 0.1, func() { fired++ })
	s.CancelAll()
	tick(clock, s, 0.1, 2)
	assert.Equal(t, 1, fired)
	assert.True(t, h.Cancelled())
}

func TestTaskStartedDuringStepWaitsForNextUpdate(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	innerSteps := 0
	s.Start(TaskFunc(func(*Clock) bool {
		s.Start(TaskFunc(func(*Clock) bool {
			innerSteps++
			return true
		}))
		return true
	}))

	tick(clock, s, 0.016, 1)
	assert.Equal(t, 0, innerSteps)
	tick(clock, s, 0.016, 1)
	assert.Equal(t, 1, innerSteps)
}

func TestClockAdvance(t *testing.T) {
	clock := NewClock()
	clock.SetTimeScale(0.5)
	clock.Advance(0.2)

	assert.InDelta(t, 0.1, clock.DeltaTime(), 1e-9)
	assert.InDelta(t, 0.2, clock.UnscaledDeltaTime(), 1e-9)
	assert.InDelta(t, 0.1, clock.Delta(false), 1e-9)
	assert.InDelta(t, 0.2, clock.Delta(true), 1e-9)

	clock.SetTimeScale(-3)
	assert.Equal(t, 0.0, clock.TimeScale())
}

func TestCancelAllFromInsideStep(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	laterSteps := 0
	first := s.Start(TaskFunc(func(*Clock) bool {
		s.CancelAll()
		return false
	}))
	later := s.Start(TaskFunc(func(*Clock) bool {
		laterSteps++
		return false
	}))

	assert.NotPanics(t, func() { tick(clock, s, 0.016, 1) })
	assert.Equal(t, 0, laterSteps, "cancelled before its turn in the same Update")
	assert.True(t, first.Cancelled())
	assert.True(t, later.Cancelled())
	assert.Equal(t, 0, s.Len())

	// 取消后启动的任务照常运行
	restarted := 0
	s.Start(TaskFunc(func(*Clock) bool {
		restarted++
		return true
	}))
	tick(clock, s, 0.016, 1)
	assert.Equal(t, 1, restarted)
}

func TestCancelAllFromDelayCallback(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)
	r := NewRunner(s)
	live := &liveColor{c: types.White}

	StartColorTransition(r, live.get, live.set, types.Black, 1, false)
	Delay(s, 0.1, s.CancelAll)

	assert.NotPanics(t, func() { tick(clock, s, 0.1, 3) })
	assert.False(t, r.Running())
	assert.Equal(t, 0, s.Len())
	assert.NotEqual(t, types.Black, live.c, "cancelled run writes no final value")
}
