package systems

import (
	"image/color"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体：着色后的精灵（或纯色底）、动画帧、居中文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染普通层按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	s.drawLayer(screen, false)
}

// DrawOverlay 渲染弹窗层按钮
func (s *ButtonRenderSystem) DrawOverlay(screen *ebiten.Image) {
	s.drawLayer(screen, true)
}

func (s *ButtonRenderSystem) drawLayer(screen *ebiten.Image, overlay bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		if ecs.HasComponent[*components.OverlayComponent](s.entityManager, entityID) != overlay {
			continue
		}
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	if img, ok := ecs.GetComponent[*components.ImageComponent](s.entityManager, entityID); ok {
		s.drawBackground(screen, img, button, pos.X, pos.Y)
	}
	if anim, ok := ecs.GetComponent[*components.AnimatorComponent](s.entityManager, entityID); ok {
		if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, entityID); ok {
			drawRotated(screen, anim.Frame(), pos.X+button.Width/2, pos.Y+button.Height/2, min(button.Width, button.Height), facing.Angle)
		} else {
			drawFitted(screen, anim.Frame(), pos.X, pos.Y, button.Width, button.Height, nil)
		}
	}
	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, entityID); ok {
		s.drawText(screen, txt, button, pos.X, pos.Y)
	}
}

// drawBackground 精灵存在时按九宫格拉伸到按钮尺寸并着色，否则画纯色矩形
func (s *ButtonRenderSystem) drawBackground(screen *ebiten.Image, img *components.ImageComponent, button *components.ButtonComponent, x, y float64) {
	sprite := img.Image()
	if sprite == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), img.Tint, false)
		return
	}
	utils.DrawNineSlice(screen, sprite, img.Inset(), x, y, button.Width, button.Height, img.Tint)
}

// drawText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawText(screen *ebiten.Image, txt *components.TextComponent, button *components.ButtonComponent, x, y float64) {
	if txt.Content == "" || txt.Face == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2
	const shadowOffset = 2.0

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffset, centerY+shadowOffset/2)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 120})
	text.Draw(screen, txt.Content, txt.Face, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY-shadowOffset/2)
	op.ColorScale.ScaleWithColor(txt.Tint)
	text.Draw(screen, txt.Content, txt.Face, op)
}

// drawFitted 把 img 缩放到 w×h 绘制在 (x, y)，tint 为 nil 时不着色
func drawFitted(screen, img *ebiten.Image, x, y, w, h float64, tint color.Color) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	screen.DrawImage(img, op)
}

// drawRotated 以 (cx, cy) 为中心绘制 img，长边缩放到 size 并旋转 angle 度
func drawRotated(screen, img *ebiten.Image, cx, cy, size, angle float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w == 0 || h == 0 {
		return
	}

	scale := size / max(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(utils.DegToRad(angle))
	op.GeoM.Translate(cx, cy)
	screen.DrawImage(img, op)
}
