package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenProvider 读取 ebiten 鼠标和触摸状态
// 触摸优先于鼠标，第一个活动触摸即为指针
type EbitenProvider struct {
	// 触摸释放时 ebiten 不再报告触摸位置，保存最后一次位置
	lastTouchX, lastTouchY int
}

func NewEbitenProvider() *EbitenProvider {
	return &EbitenProvider{}
}

// MousePosition 返回活动触摸的位置，没有触摸时返回光标位置
func (p *EbitenProvider) MousePosition() (float64, float64) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return float64(x), float64(y)
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// Pointer 每次 Update 调用一次
func (p *EbitenProvider) Pointer() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		p.lastTouchX, p.lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return PointerState{
			X:       float64(p.lastTouchX),
			Y:       float64(p.lastTouchY),
			Pressed: true,
			Present: true,
		}
	}

	// 触摸刚释放：在最后位置报告一次抬起，随后指针离开
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerState{
			X:       float64(p.lastTouchX),
			Y:       float64(p.lastTouchY),
			Present: true,
		}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Present: true,
	}
}
