package systems

import (
	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/input"
	"github.com/decker502/sadui/pkg/types"
	"github.com/decker502/sadui/pkg/utils"
)

// FacingSystem 把带 FacingComponent 的按钮转向指针
type FacingSystem struct {
	entityManager *ecs.EntityManager
	mouse         input.MouseProvider
}

// NewFacingSystem 创建朝向系统
func NewFacingSystem(em *ecs.EntityManager, mouse input.MouseProvider) *FacingSystem {
	return &FacingSystem{entityManager: em, mouse: mouse}
}

// Update 以按钮中心为原点计算朝向角度
func (s *FacingSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.FacingComponent, *components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		facing, _ := ecs.GetComponent[*components.FacingComponent](s.entityManager, entityID)
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		center := types.Vec2{X: pos.X + button.Width/2, Y: pos.Y + button.Height/2}
		facing.Angle = utils.LookAtMouse(center, s.mouse)
	}
}
