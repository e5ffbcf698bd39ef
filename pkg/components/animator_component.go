package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationClip 基于帧序列的动画片段
type AnimationClip struct {
	Name       string
	Frames     []*ebiten.Image // 动画的所有帧图片
	FrameSpeed float64         // 每帧之间的延迟时间(秒)
	IsLooping  bool            // 是否循环播放
}

// AnimatorComponent 接收按钮的动画触发器并播放对应片段
// 实现 ui.AnimatorTarget；帧推进由 AnimationSystem 完成
type AnimatorComponent struct {
	// Clips 触发器哈希 -> 动画片段
	Clips map[int32]*AnimationClip

	// PendingTrigger 等待 AnimationSystem 处理的触发器
	PendingTrigger int32
	HasPending     bool

	// 当前播放状态
	Current      *AnimationClip
	FrameCounter float64 // 当前帧计时器(秒)
	CurrentFrame int     // 当前显示的帧索引(0-based)
	IsFinished   bool    // 非循环片段是否播放完毕
}

// SetTrigger 记录触发器，同一帧内多次触发以最后一次为准
func (c *AnimatorComponent) SetTrigger(hash int32) {
	c.PendingTrigger = hash
	c.HasPending = true
}

// Frame 返回当前帧，未播放时返回 nil
func (c *AnimatorComponent) Frame() *ebiten.Image {
	if c.Current == nil || len(c.Current.Frames) == 0 {
		return nil
	}
	return c.Current.Frames[c.CurrentFrame]
}
