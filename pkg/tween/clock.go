// Package tween 在协作式逐帧调度器上运行基于时间的任务
//
// 所有代码都在游戏循环 goroutine 中运行。每次 Scheduler.Update 推进一次任务，
// 此前 Clock 已经为本帧前进
package tween

// Clock 保存每帧经过的时间，分两种：跟随 TimeScale 的缩放增量（0 即暂停）
// 和不受影响的非缩放增量
type Clock struct {
	timeScale float64

	deltaTime         float64
	unscaledDeltaTime float64
	time              float64
	unscaledTime      float64
}

// NewClock 返回时间缩放为 1 的时钟
func NewClock() *Clock {
	return &Clock{timeScale: 1}
}

// Advance 记录本帧真实经过的秒数
func (c *Clock) Advance(realDelta float64) {
	if realDelta < 0 {
		realDelta = 0
	}
	c.unscaledDeltaTime = realDelta
	c.deltaTime = realDelta * c.timeScale
	c.unscaledTime += c.unscaledDeltaTime
	c.time += c.deltaTime
}

// SetTimeScale 设置缩放增量的系数，负数按 0 处理
func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.timeScale = scale
}

func (c *Clock) TimeScale() float64         { return c.timeScale }
func (c *Clock) DeltaTime() float64         { return c.deltaTime }
func (c *Clock) UnscaledDeltaTime() float64 { return c.unscaledDeltaTime }
func (c *Clock) Time() float64              { return c.time }
func (c *Clock) UnscaledTime() float64      { return c.unscaledTime }

// Delta ignoreTimeScale 时返回非缩放增量，否则返回缩放增量
func (c *Clock) Delta(ignoreTimeScale bool) float64 {
	if ignoreTimeScale {
		return c.unscaledDeltaTime
	}
	return c.deltaTime
}
