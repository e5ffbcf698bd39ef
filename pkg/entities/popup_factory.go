package entities

import (
	"fmt"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/tween"
	"github.com/decker502/sadui/pkg/types"
	"github.com/decker502/sadui/pkg/ui"
	"github.com/decker502/sadui/pkg/ui/popup"
	"github.com/decker502/sadui/pkg/utils"
	"github.com/sirupsen/logrus"
)

// PopupLayout 弹窗布局参数
type PopupLayout struct {
	ScreenWidth  float64
	ScreenHeight float64
	Width        float64 // 面板宽度
	LineHeight   float64 // 文字行高，与面板渲染一致（字号 × 1.4）
	ButtonWidth  float64
	ButtonHeight float64
}

const (
	popupPadding   = 12.0
	popupButtonGap = 8.0
)

// 弹窗按钮的配色
var (
	popupButtonNormal      = types.RGB(0.23, 0.43, 0.65)
	popupButtonHighlighted = types.RGB(0.31, 0.56, 0.84)
	popupButtonPressed     = types.RGB(0.16, 0.31, 0.47)
)

// EntityPopup 用 ECS 实体实现的弹窗
//
// 面板是一个带 PopupComponent 的实体，每个响应按钮是一个带
// OverlayComponent 的按钮实体（PointerSystem 因此只对弹窗做命中检测）。
// 点击响应按钮先执行回调，再调用 close 关闭弹窗（回调已关闭时跳过）。
type EntityPopup struct {
	em        *ecs.EntityManager
	scheduler *tween.Scheduler
	assets    Assets
	layout    PopupLayout
	close     func()

	panel     ecs.EntityID
	buttons   []ecs.EntityID
	destroyed bool
	log       *logrus.Entry
}

// NewPopupConstructor 返回给 popup.Manager 使用的构造函数
// close 在响应按钮被点击后调用，通常是 manager.DestroyCurrentPopup
func NewPopupConstructor(em *ecs.EntityManager, scheduler *tween.Scheduler, assets Assets, layout PopupLayout, close func()) popup.Constructor {
	return func() popup.Popup {
		return &EntityPopup{
			em:        em,
			scheduler: scheduler,
			assets:    assets,
			layout:    layout,
			close:     close,
			log:       logrus.WithField("component", "entity-popup"),
		}
	}
}

// Construct 创建面板实体和响应按钮实体
func (p *EntityPopup) Construct(data popup.Data) {
	height := p.contentHeight(data) + 2*popupPadding
	if len(data.Buttons) > 0 {
		height += p.layout.ButtonHeight + popupPadding
	}
	x := (p.layout.ScreenWidth - p.layout.Width) / 2
	y := (p.layout.ScreenHeight - height) / 2

	p.panel = p.em.CreateEntity()
	ecs.AddComponent(p.em, p.panel, &components.PositionComponent{X: x, Y: y})

	panel := &components.PopupComponent{
		Contents: append([]popup.Content(nil), data.Contents...),
		Width:    p.layout.Width,
		Height:   height,
	}
	if data.HasTitle {
		panel.Title = data.Title
	}
	ecs.AddComponent(p.em, p.panel, panel)

	rowWidth := float64(len(data.Buttons))*p.layout.ButtonWidth + float64(len(data.Buttons)-1)*popupButtonGap
	bx := x + (p.layout.Width-rowWidth)/2
	by := y + height - popupPadding - p.layout.ButtonHeight

	for i, bd := range data.Buttons {
		entity, err := p.newResponseButton(i, bd, bx, by)
		if err != nil {
			p.log.WithError(err).Warn("failed to create popup button")
			continue
		}
		p.buttons = append(p.buttons, entity)
		bx += p.layout.ButtonWidth + popupButtonGap
	}
	panel.ButtonEntities = p.buttons
}

// Destroy 标记面板和按钮实体删除
func (p *EntityPopup) Destroy() {
	for _, id := range p.buttons {
		DestroyButtonEntity(p.em, id)
	}
	if p.panel != 0 {
		p.em.DestroyEntity(p.panel)
	}
	p.buttons = nil
	p.panel = 0
	p.destroyed = true
}

// Panel 返回面板实体
func (p *EntityPopup) Panel() ecs.EntityID { return p.panel }

// Buttons 返回响应按钮实体
func (p *EntityPopup) Buttons() []ecs.EntityID { return p.buttons }

func (p *EntityPopup) contentHeight(data popup.Data) float64 {
	h := 0.0
	if data.HasTitle {
		h += p.textHeight(data.Title)
	}
	for _, c := range data.Contents {
		switch c.Type {
		case popup.ContentSprite:
			if img := p.assets.Sprites[c.Sprite]; img != nil {
				h += float64(img.Bounds().Dy())
			}
		case popup.ContentSpacer:
			h += c.SpacerHeight
		case popup.ContentString:
			h += p.textHeight(c.Text)
		default:
			h += p.textHeight(fmt.Sprint(c.Other))
		}
	}
	return h
}

// textHeight 与面板渲染使用相同的换行规则
func (p *EntityPopup) textHeight(s string) float64 {
	lines := utils.WrapText(s, p.assets.Face, p.layout.Width-2*popupPadding)
	return float64(len(lines)) * p.layout.LineHeight
}

func (p *EntityPopup) newResponseButton(index int, bd popup.ButtonData, x, y float64) (ecs.EntityID, error) {
	cfg := &config.ButtonConfig{
		Name:        fmt.Sprintf("popup-button-%d", index),
		X:           x,
		Y:           y,
		Width:       p.layout.ButtonWidth,
		Height:      p.layout.ButtonHeight,
		Transitions: []string{"color_tint"},
		Color:       popupButtonNormal,
		Visuals:     popupButtonVisuals(),
	}
	if bd.HasTitle {
		cfg.Text = bd.Title
	}

	entity, err := NewButtonEntity(p.em, p.scheduler, cfg, p.assets)
	if err != nil {
		return 0, err
	}
	ecs.AddComponent(p.em, entity, &components.OverlayComponent{})

	button, _ := ButtonOf(p.em, entity)
	callback := bd.Callback
	button.OnClick(func(*ui.Button) {
		if callback != nil {
			callback()
		}
		// 回调可能已经替换或关闭了弹窗
		if p.close != nil && !p.destroyed {
			p.close()
		}
	})
	return entity, nil
}

func popupButtonVisuals() *ui.VisualMap {
	m := ui.DefaultVisuals()
	colors := map[ui.ButtonState]types.Color{
		ui.StateNormal:      popupButtonNormal,
		ui.StateHighlighted: popupButtonHighlighted,
		ui.StatePressed:     popupButtonPressed,
		ui.StateDisabled:    types.Gray,
	}
	for state, c := range colors {
		vd, _ := m.Get(state)
		vd.Color = c
	}
	return m
}
