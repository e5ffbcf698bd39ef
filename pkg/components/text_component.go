package components

import (
	"github.com/decker502/sadui/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextComponent 按钮上居中显示的文字
// 实现 ui.TextTarget，由 TextSwap 和 TextColorTint 驱动
type TextComponent struct {
	Content string
	Tint    types.Color
	// Face 为 nil 时不绘制
	Face *text.GoTextFace
}

func (c *TextComponent) Text() string               { return c.Content }
func (c *TextComponent) SetText(s string)           { c.Content = s }
func (c *TextComponent) TextColor() types.Color     { return c.Tint }
func (c *TextComponent) SetTextColor(t types.Color) { c.Tint = t }
