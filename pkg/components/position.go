package components

// PositionComponent 实体在屏幕空间的左上角坐标（像素）
type PositionComponent struct {
	X, Y float64
}
