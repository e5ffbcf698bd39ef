package app

import (
	"time"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/input"
	"github.com/decker502/sadui/pkg/types"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// 终端模式下一个字符格对应的布局像素
const (
	TerminalCellWidth  = 8
	TerminalCellHeight = 16
)

const terminalFrame = 16 * time.Millisecond

// TerminalHost 在终端中运行布局：tcell 鼠标事件喂给 TerminalProvider，
// 按钮和面板按字符格缩放后绘制为色块
type TerminalHost struct {
	app      *App
	screen   tcell.Screen
	provider *input.TerminalProvider
	quit     chan struct{}
	log      *logrus.Entry
}

// NewTerminalHost 绑定已创建的 App 与终端屏幕
// provider 必须是 App 使用的同一个 TerminalProvider
func NewTerminalHost(app *App, screen tcell.Screen, provider *input.TerminalProvider) *TerminalHost {
	return &TerminalHost{
		app:      app,
		screen:   screen,
		provider: provider,
		quit:     make(chan struct{}),
		log:      logrus.WithField("component", "terminal-host"),
	}
}

// Run 初始化屏幕并运行事件循环，直到 Esc / Ctrl-C / q 或 quit 动作
func (h *TerminalHost) Run() error {
	if err := h.screen.Init(); err != nil {
		return err
	}
	defer h.screen.Fini()

	h.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	h.screen.HideCursor()
	h.screen.EnableMouse()

	eventChan := make(chan tcell.Event, 10)
	go func() {
		for {
			select {
			case <-h.quit:
				return
			default:
				ev := h.screen.PollEvent()
				if ev == nil {
					return
				}
				eventChan <- ev
			}
		}
	}()
	defer close(h.quit)

	ticker := time.NewTicker(terminalFrame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if h.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.app.Step(now.Sub(last).Seconds())
			last = now
			if h.app.Quit() {
				return nil
			}
			h.Draw()
		}
	}
}

// handleEvent 返回 true 表示退出
func (h *TerminalHost) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch {
		case e.Key() == tcell.KeyEscape && h.app.Popups().ActivePopup() != nil:
			h.app.Popups().DestroyCurrentPopup()
		case e.Key() == tcell.KeyEscape, e.Key() == tcell.KeyCtrlC, e.Rune() == 'q':
			h.log.Info("quit from keyboard")
			return true
		case e.Rune() == 'p':
			h.app.TogglePause()
		}
	case *tcell.EventResize:
		h.screen.Sync()
	default:
		h.provider.HandleEvent(ev)
	}
	return false
}

// Draw 绘制一帧
func (h *TerminalHost) Draw() {
	h.screen.Clear()
	em := h.app.EntityManager()

	for _, id := range ecs.GetEntitiesWith2[*components.TabContentComponent, *components.PositionComponent](em) {
		tab, _ := ecs.GetComponent[*components.TabContentComponent](em, id)
		if !tab.Active {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y, w, ch := toCells(pos.X, pos.Y, tab.Width, tab.Height)
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(40, 44, 52)).Foreground(tcell.ColorWhite)
		h.fill(x, y, w, ch, style)
		h.label(x+1, y, w-2, tab.Title, style.Foreground(tcell.ColorYellow), false)
		for i, line := range tab.Lines {
			h.label(x+1, y+1+i, w-2, line, style, false)
		}
	}

	h.drawButtons(em, false)

	for _, id := range ecs.GetEntitiesWith2[*components.PopupComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.PopupComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y, w, ch := toCells(pos.X, pos.Y, p.Width, p.Height)
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(40, 44, 52)).Foreground(tcell.ColorWhite)
		h.fill(x, y, w, ch, style)
		row := y
		if p.Title != "" {
			h.label(x+1, row, w-2, p.Title, style.Foreground(tcell.ColorYellow), false)
			row++
		}
		for _, c := range p.Contents {
			if c.Text != "" {
				h.label(x+1, row, w-2, c.Text, style, false)
				row++
			}
		}
	}

	h.drawButtons(em, true)

	if h.app.Paused() {
		_, height := h.screen.Size()
		h.label(0, height-1, 20, "PAUSED (p)", tcell.StyleDefault.Reverse(true), false)
	}
	h.screen.Show()
}

func (h *TerminalHost) drawButtons(em *ecs.EntityManager, overlay bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](em) {
		if ecs.HasComponent[*components.OverlayComponent](em, id) != overlay {
			continue
		}
		btn, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y, w, ch := toCells(pos.X, pos.Y, btn.Width, btn.Height)

		style := tcell.StyleDefault
		if img, ok := ecs.GetComponent[*components.ImageComponent](em, id); ok {
			style = style.Background(toTcell(img.Tint))
		}
		label := ""
		if txt, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
			label = txt.Content
			style = style.Foreground(toTcell(txt.Tint))
		}
		h.fill(x, y, w, ch, style)
		h.label(x, y+ch/2, w, label, style, true)
	}
}

func (h *TerminalHost) fill(x, y, w, ch int, style tcell.Style) {
	for row := y; row < y+ch; row++ {
		for col := x; col < x+w; col++ {
			h.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (h *TerminalHost) label(x, y, w int, s string, style tcell.Style, center bool) {
	runes := []rune(s)
	if len(runes) > w {
		runes = runes[:max(w, 0)]
	}
	if center {
		x += (w - len(runes)) / 2
	}
	for i, r := range runes {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

// toCells 把布局像素矩形转换为字符格矩形（至少 1×1）
func toCells(x, y, w, hgt float64) (int, int, int, int) {
	return int(x) / TerminalCellWidth, int(y) / TerminalCellHeight,
		cellSpan(w, TerminalCellWidth), cellSpan(hgt, TerminalCellHeight)
}

func cellSpan(size float64, cell int) int {
	return max(int(size)/cell, 1)
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}
