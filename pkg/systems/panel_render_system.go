package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/ui/popup"
	"github.com/decker502/sadui/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelBackground = color.RGBA{40, 44, 52, 235}
	panelTitleColor = color.RGBA{255, 214, 102, 255}
	panelTextColor  = color.RGBA{230, 230, 230, 255}
	overlayDim      = color.RGBA{0, 0, 0, 140}
)

const (
	panelPadding   = 12.0
	panelLineSpace = 1.4
)

// PanelRenderSystem 渲染标签页内容面板和弹窗面板
type PanelRenderSystem struct {
	entityManager *ecs.EntityManager
	face          *text.GoTextFace
	sprites       map[string]*ebiten.Image
}

// NewPanelRenderSystem 创建面板渲染系统
// face 为 nil 时只绘制背景；sprites 用于弹窗中的精灵内容
func NewPanelRenderSystem(em *ecs.EntityManager, face *text.GoTextFace, sprites map[string]*ebiten.Image) *PanelRenderSystem {
	return &PanelRenderSystem{
		entityManager: em,
		face:          face,
		sprites:       sprites,
	}
}

// DrawTabs 渲染当前激活的标签页内容
func (s *PanelRenderSystem) DrawTabs(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.TabContentComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		tab, _ := ecs.GetComponent[*components.TabContentComponent](s.entityManager, id)
		if !tab.Active {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(tab.Width), float32(tab.Height), panelBackground, false)
		y := pos.Y + panelPadding
		width := tab.Width - 2*panelPadding
		y = s.drawLine(screen, tab.Title, pos.X+panelPadding, y, width, panelTitleColor)
		for _, line := range tab.Lines {
			y = s.drawLine(screen, line, pos.X+panelPadding, y, width, panelTextColor)
		}
	}
}

// DrawPopups 渲染弹窗面板（按钮由 ButtonRenderSystem.DrawOverlay 绘制）
func (s *PanelRenderSystem) DrawPopups(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PopupComponent, *components.PositionComponent](s.entityManager)
	if len(entities) == 0 {
		return
	}

	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), overlayDim, false)

	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.PopupComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(p.Width), float32(p.Height), panelBackground, false)
		vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), float32(p.Width), float32(p.Height), 2, panelTitleColor, false)

		x := pos.X + panelPadding
		y := pos.Y + panelPadding
		width := p.Width - 2*panelPadding
		if p.Title != "" {
			y = s.drawLine(screen, p.Title, x, y, width, panelTitleColor)
		}
		for _, c := range p.Contents {
			y = s.drawContent(screen, c, x, y, width)
		}
	}
}

func (s *PanelRenderSystem) drawContent(screen *ebiten.Image, c popup.Content, x, y, width float64) float64 {
	switch c.Type {
	case popup.ContentString:
		return s.drawLine(screen, c.Text, x, y, width, panelTextColor)
	case popup.ContentSprite:
		img := s.sprites[c.Sprite]
		if img == nil {
			return y
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
		return y + float64(img.Bounds().Dy())
	case popup.ContentSpacer:
		return y + c.SpacerHeight
	default:
		return s.drawLine(screen, fmt.Sprint(c.Other), x, y, width, panelTextColor)
	}
}

// drawLine 绘制左对齐文字（超出 width 时自动换行），返回下一行的 y
func (s *PanelRenderSystem) drawLine(screen *ebiten.Image, line string, x, y, width float64, clr color.Color) float64 {
	if s.face == nil {
		return y
	}
	for _, wrapped := range utils.WrapText(line, s.face, width) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, wrapped, s.face, op)
		y += s.face.Size * panelLineSpace
	}
	return y
}
