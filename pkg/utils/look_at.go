package utils

import (
	"math"

	"github.com/decker502/sadui/pkg/input"
	"github.com/decker502/sadui/pkg/types"
)

// LookAtAngle 计算从 origin 朝向 target 的旋转角度（度）
// 角度以 +X 轴为 0，逆时针为正，范围 (-180, 180]
func LookAtAngle(origin, target types.Vec2) float64 {
	dir := target.Sub(origin)
	return math.Atan2(dir.Y, dir.X) * 180 / math.Pi
}

// LookAtMouse 计算从 origin 朝向当前指针位置的旋转角度（度）
func LookAtMouse(origin types.Vec2, mouse input.MouseProvider) float64 {
	x, y := mouse.MousePosition()
	return LookAtAngle(origin, types.Vec2{X: x, Y: y})
}

// DegToRad 将角度转换为弧度，用于 ebiten.GeoM.Rotate
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
