package components

// FacingComponent 让按钮上的动画帧朝向指针
// Angle 以度为单位，+X 轴为 0，由 FacingSystem 每帧更新
type FacingComponent struct {
	Angle float64
}
