package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TerminalProvider 把 tcell 鼠标事件转换为指针状态
// 事件由屏幕的事件 goroutine 通过 HandleEvent 推入，帧循环读取，访问加锁
//
// 格子坐标按 cellWidth/cellHeight 缩放，以像素编写的布局可以直接对终端格子做命中测试
type TerminalProvider struct {
	mu         sync.Mutex
	cellWidth  float64
	cellHeight float64

	x, y    int
	pressed bool
	present bool
	// 按下时置位，下一次轮询清除
	pendingPress bool
}

// NewTerminalProvider 创建 provider，非正的格子尺寸按 1 处理
func NewTerminalProvider(cellWidth, cellHeight float64) *TerminalProvider {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return &TerminalProvider{cellWidth: cellWidth, cellHeight: cellHeight}
}

// HandleEvent 处理鼠标事件，返回 ev 是否为鼠标事件
func (p *TerminalProvider) HandleEvent(ev tcell.Event) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}

	x, y := mouse.Position()
	down := mouse.Buttons()&tcell.Button1 != 0

	p.mu.Lock()
	defer p.mu.Unlock()
	p.x, p.y = x, y
	p.present = true
	if down {
		p.pendingPress = true
	}
	p.pressed = down
	return true
}

// Leave 标记指针离开终端，例如失去焦点
func (p *TerminalProvider) Leave() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.present = false
	p.pressed = false
	p.pendingPress = false
}

func (p *TerminalProvider) MousePosition() (float64, float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scaled()
}

// Pointer 返回最新状态
// 轮询前已经松开的按下在这一帧仍报告为按下
func (p *TerminalProvider) Pointer() PointerState {
	p.mu.Lock()
	defer p.mu.Unlock()

	x, y := p.scaled()
	state := PointerState{X: x, Y: y, Pressed: p.pressed || p.pendingPress, Present: p.present}
	p.pendingPress = false
	return state
}

func (p *TerminalProvider) scaled() (float64, float64) {
	return (float64(p.x) + 0.5) * p.cellWidth, (float64(p.y) + 0.5) * p.cellHeight
}
