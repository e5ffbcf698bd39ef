package systems

import (
	"testing"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

type fixedMouse struct{ x, y float64 }

func (m fixedMouse) MousePosition() (float64, float64) { return m.x, m.y }

func TestFacingSystemPointsAtMouse(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 0, Y: 0})
	ecs.AddComponent(em, id, &components.ButtonComponent{Width: 20, Height: 20})
	facing := &components.FacingComponent{}
	ecs.AddComponent(em, id, facing)

	plain := em.CreateEntity()
	ecs.AddComponent(em, plain, &components.PositionComponent{})
	ecs.AddComponent(em, plain, &components.ButtonComponent{Width: 20, Height: 20})

	tests := []struct {
		name  string
		mouse fixedMouse
		want  float64
	}{
		{"右侧", fixedMouse{100, 10}, 0},
		{"下方", fixedMouse{10, 100}, 90},
		{"左侧", fixedMouse{-100, 10}, 180},
		{"上方", fixedMouse{10, -100}, -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewFacingSystem(em, tt.mouse).Update(0)
			assert.InDelta(t, tt.want, facing.Angle, 1e-9)
		})
	}
	assert.False(t, ecs.HasComponent[*components.FacingComponent](em, plain))
}
