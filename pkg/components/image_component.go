package components

import (
	"github.com/decker502/sadui/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageComponent 按钮的图片表面：着色 + 当前精灵
// 实现 ui.ImageTarget，由 ColorTint 和 SpriteSwap 驱动
type ImageComponent struct {
	// Tint 绘制时乘到图片上的颜色
	Tint types.Color
	// SpriteID 当前精灵ID，在 Sprites 中查找
	SpriteID string
	// Sprites 可用精灵（ID -> 图片），通常由布局文件中的 sprites 段构建
	Sprites map[string]*ebiten.Image
	// Insets 精灵的九宫格边长（ID -> 像素），缺省为整体拉伸
	Insets map[string]float64
}

func (c *ImageComponent) Color() types.Color     { return c.Tint }
func (c *ImageComponent) SetColor(t types.Color) { c.Tint = t }
func (c *ImageComponent) Sprite() string         { return c.SpriteID }
func (c *ImageComponent) SetSprite(id string)    { c.SpriteID = id }

// Image 返回当前精灵图片，未找到时返回 nil（渲染系统会画纯色矩形）
func (c *ImageComponent) Image() *ebiten.Image {
	if c.Sprites == nil {
		return nil
	}
	return c.Sprites[c.SpriteID]
}

// Inset 返回当前精灵的九宫格边长
func (c *ImageComponent) Inset() float64 {
	return c.Insets[c.SpriteID]
}
