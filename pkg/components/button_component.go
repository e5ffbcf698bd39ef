package components

import "github.com/decker502/sadui/pkg/ui"

// ButtonComponent 把 ui.Button 挂到实体上（ECS 架构）
//
// 状态机和视觉切换都由 Button 负责，组件只携带命中区域
// 以及 PointerSystem 上一帧看到的指针状态
type ButtonComponent struct {
	// Button 按钮状态机（已 Initialize）
	Button *ui.Button

	// Width/Height 命中区域尺寸（像素），原点为 PositionComponent
	Width  float64
	Height float64

	// Hovered 上一帧指针是否在按钮内
	Hovered bool
	// Pressed 上一帧是否在按钮上按下
	Pressed bool
}
