package systems

import (
	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/input"
	"github.com/sirupsen/logrus"
)

// PointerSystem 指针交互系统
// 每帧轮询 PointerProvider，把指针位置和按键变化翻译成按钮的
// PointerEnter / PointerExit / PointerDown / PointerUp 事件
//
// 规则：
//   - 同一时刻最多一个按钮被悬停；重叠时 ID 最大（最后绘制）的优先
//   - 存在弹窗层按钮时只检测弹窗层（模态）
//   - 只有悬停中的按钮收到 PointerDown
//   - 松开时 PointerUp 发给按下的那个按钮，即使指针已经移出
type PointerSystem struct {
	entityManager *ecs.EntityManager
	provider      input.PointerProvider

	hovered    ecs.EntityID
	wasPressed bool
	log        *logrus.Entry
}

// NewPointerSystem 创建指针交互系统
func NewPointerSystem(em *ecs.EntityManager, provider input.PointerProvider) *PointerSystem {
	return &PointerSystem{
		entityManager: em,
		provider:      provider,
		log:           logrus.WithField("component", "pointer-system"),
	}
}

// Update 轮询指针并分发事件
func (s *PointerSystem) Update(deltaTime float64) {
	state := s.provider.Pointer()
	all := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	candidates := s.overlayOnly(all)
	if len(candidates) == 0 {
		candidates = all
	}

	target := ecs.EntityID(0)
	if state.Present {
		target = s.hitTest(candidates, state.X, state.Y)
	}

	// 1. 悬停变化：先离开旧按钮再进入新按钮
	if target != s.hovered {
		if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.hovered); ok && btn.Hovered {
			btn.Hovered = false
			btn.Button.PointerExit()
		}
		if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, target); ok {
			btn.Hovered = true
			btn.Button.PointerEnter()
		}
		s.hovered = target
	}

	// 2. 按下 / 松开（边沿触发）
	justPressed := state.Pressed && !s.wasPressed
	justReleased := !state.Pressed && s.wasPressed
	s.wasPressed = state.Pressed

	if justPressed {
		if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, target); ok {
			btn.Pressed = true
			btn.Button.PointerDown()
		}
	}

	if justReleased {
		for _, id := range all {
			btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
			if !btn.Pressed {
				continue
			}
			btn.Pressed = false
			s.log.WithFields(logrus.Fields{"entity": id, "button": btn.Button.Name()}).Debug("pointer released")
			btn.Button.PointerUp()
		}
	}
}

// Hovered 返回当前悬停的按钮实体，0 表示没有
func (s *PointerSystem) Hovered() ecs.EntityID {
	return s.hovered
}

func (s *PointerSystem) overlayOnly(entities []ecs.EntityID) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range entities {
		if ecs.HasComponent[*components.OverlayComponent](s.entityManager, id) {
			result = append(result, id)
		}
	}
	return result
}

// hitTest 从后往前查找，ID 大的按钮绘制在上层
func (s *PointerSystem) hitTest(entities []ecs.EntityID, x, y float64) ecs.EntityID {
	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if isPointInRect(x, y, pos.X, pos.Y, btn.Width, btn.Height) {
			return id
		}
	}
	return 0
}

// isPointInRect 检测点是否在矩形内（含左上边界，不含右下边界）
func isPointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px < x+width && py >= y && py < y+height
}
