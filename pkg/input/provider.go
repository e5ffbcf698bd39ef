// Package input 抽象指针位置和按下状态的来源
// 同一套按钮逻辑可以运行在 ebiten 窗口或终端中
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrNoInputSystem 不支持的 provider 类型
var ErrNoInputSystem = errors.New("no input system enabled")

var log = logrus.WithField("component", "input")

// NewProvider 接受的 provider 类型
const (
	KindEbiten   = "ebiten"
	KindTerminal = "terminal"
)

// MouseProvider 以屏幕像素报告指针位置
type MouseProvider interface {
	MousePosition() (x, y float64)
}

// PointerState 一帧内看到的指针
type PointerState struct {
	X, Y float64
	// Pressed 主按键或触摸按下时为 true
	Pressed bool
	// Present 指针离开表面时为 false（例如触摸抬起），此时没有按钮被悬停
	Present bool
}

// PointerProvider 指针系统每帧轮询一次
type PointerProvider interface {
	MouseProvider
	Pointer() PointerState
}

// NewProvider 返回 kind 对应的 provider，空 kind 选择 ebiten
func NewProvider(kind string) (PointerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindEbiten:
		log.WithField("kind", KindEbiten).Debug("input provider selected")
		return NewEbitenProvider(), nil
	case KindTerminal:
		log.WithField("kind", KindTerminal).Debug("input provider selected")
		return NewTerminalProvider(1, 1), nil
	default:
		return nil, fmt.Errorf("input kind %q: %w", kind, ErrNoInputSystem)
	}
}
