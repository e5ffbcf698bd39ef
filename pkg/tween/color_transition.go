package tween

import "github.com/decker502/sadui/pkg/types"

// ColorTransition 把实时颜色插值到目标颜色
//
// 起始值在创建时从实时颜色读取，替换另一个过渡时从颜色当前所在处开始混合
type ColorTransition struct {
	set func(types.Color)

	start    types.Color
	target   types.Color
	duration float64
	elapsed  float64

	ignoreTimeScale bool
}

// NewColorTransition 从 get 读取起始颜色，返回经 set 写入中间颜色的任务
// duration <= 0 时立即写入目标，任务在第一次推进时结束
func NewColorTransition(get func() types.Color, set func(types.Color), target types.Color, duration float64, ignoreTimeScale bool) *ColorTransition {
	ct := &ColorTransition{
		set:             set,
		start:           get(),
		target:          target,
		duration:        duration,
		ignoreTimeScale: ignoreTimeScale,
	}
	if duration <= 0 {
		set(target)
	}
	return ct
}

// Start 返回混合的起始颜色
func (ct *ColorTransition) Start() types.Color { return ct.start }

// Target 返回结束颜色
func (ct *ColorTransition) Target() types.Color { return ct.target }

// Step 实现 Task
func (ct *ColorTransition) Step(clock *Clock) bool {
	if ct.duration <= 0 {
		return true
	}

	ct.elapsed += clock.Delta(ct.ignoreTimeScale)
	if ct.elapsed >= ct.duration {
		ct.set(ct.target)
		return true
	}

	ct.set(ct.start.Lerp(ct.target, ct.elapsed/ct.duration))
	return false
}

// StartColorTransition 在 r 上启动 ColorTransition，替换进行中的任务
func StartColorTransition(r *Runner, get func() types.Color, set func(types.Color), target types.Color, duration float64, ignoreTimeScale bool) *Handle {
	return r.Start(NewColorTransition(get, set, target, duration, ignoreTimeScale))
}

// delay 缩放时钟前进 seconds 秒后调用一次 fn
type delay struct {
	remaining float64
	fn        func()
}

func (d *delay) Step(clock *Clock) bool {
	d.remaining -= clock.DeltaTime()
	if d.remaining > 0 {
		return false
	}
	d.fn()
	return true
}

// Delay 经过 seconds 秒缩放时间后执行 fn
func Delay(s *Scheduler, seconds float64, fn func()) *Handle {
	return s.Start(&delay{remaining: seconds, fn: fn})
}
