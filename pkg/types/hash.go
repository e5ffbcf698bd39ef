package types

import "hash/crc32"

// TriggerHash 把动画触发器名映射为动画器使用的整数ID，同名总是得到同一ID
func TriggerHash(name string) int32 {
	return int32(crc32.ChecksumIEEE([]byte(name)))
}

// Vec2 屏幕空间中的点或方向
type Vec2 struct {
	X float64
	Y float64
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}
