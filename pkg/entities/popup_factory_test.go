package entities

import (
	"testing"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/tween"
	"github.com/decker502/sadui/pkg/ui/popup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPopupManager(em *ecs.EntityManager, scheduler *tween.Scheduler) *popup.Manager {
	var manager *popup.Manager
	ctor := NewPopupConstructor(em, scheduler, Assets{}, PopupLayout{
		ScreenWidth:  400,
		ScreenHeight: 300,
		Width:        200,
		LineHeight:   20,
		ButtonWidth:  60,
		ButtonHeight: 24,
	}, func() { manager.DestroyCurrentPopup() })
	manager = popup.NewManager(ctor, scheduler)
	return manager
}

func TestEntityPopupConstruct(t *testing.T) {
	em, _, scheduler := newWorld()
	manager := newTestPopupManager(em, scheduler)

	data := popup.NewDataFactory().
		AddTitle("Hello").
		AddStringContent("line").
		AddContentSpacer(10).
		AddButton("OK", nil).
		AddButton("Cancel", nil).
		Build()
	p := manager.DisplayPopup(data).(*EntityPopup)

	panel, ok := ecs.GetComponent[*components.PopupComponent](em, p.Panel())
	require.True(t, ok)
	assert.Equal(t, "Hello", panel.Title)
	assert.Len(t, panel.Contents, 2)
	// 12 + 20 (title) + 20 (line) + 10 (spacer) + 12 + 24 + 12
	assert.Equal(t, 110.0, panel.Height)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, p.Panel())
	assert.Equal(t, 100.0, pos.X)
	assert.Equal(t, 95.0, pos.Y)

	require.Len(t, p.Buttons(), 2)
	assert.Equal(t, p.Buttons(), panel.ButtonEntities)
	for _, id := range p.Buttons() {
		assert.True(t, ecs.HasComponent[*components.OverlayComponent](em, id))
	}

	first, _ := ecs.GetComponent[*components.PositionComponent](em, p.Buttons()[0])
	second, _ := ecs.GetComponent[*components.PositionComponent](em, p.Buttons()[1])
	assert.Equal(t, 136.0, first.X)
	assert.Equal(t, 204.0, second.X)
	assert.Equal(t, 95.0+110-12-24, first.Y)

	label, _ := ecs.GetComponent[*components.TextComponent](em, p.Buttons()[1])
	assert.Equal(t, "Cancel", label.Content)
}

func TestEntityPopupButtonClosesPopup(t *testing.T) {
	em, _, scheduler := newWorld()
	manager := newTestPopupManager(em, scheduler)

	clicked := 0
	p := manager.DisplayPopup(popup.NewDataFactory().AddButton("OK", func() { clicked++ }).Build()).(*EntityPopup)
	buttonEntity := p.Buttons()[0]
	button, _ := ButtonOf(em, buttonEntity)

	button.PointerEnter()
	button.PointerDown()
	button.PointerUp()

	assert.Equal(t, 1, clicked)
	assert.Nil(t, manager.ActivePopup())

	em.RemoveMarkedEntities()
	assert.Equal(t, 0, em.EntityCount())
}

func TestEntityPopupCallbackReplacingPopup(t *testing.T) {
	em, _, scheduler := newWorld()
	manager := newTestPopupManager(em, scheduler)

	p := manager.DisplayPopup(popup.NewDataFactory().AddButton("Next", func() {
		manager.DisplayPopup(popup.NewDataFactory().AddTitle("second").Build())
	}).Build()).(*EntityPopup)
	button, _ := ButtonOf(em, p.Buttons()[0])

	button.PointerEnter()
	button.PointerDown()
	button.PointerUp()

	active, ok := manager.ActivePopup().(*EntityPopup)
	require.True(t, ok, "replacement popup survives the click")
	assert.NotSame(t, p, active)

	em.RemoveMarkedEntities()
	assert.True(t, em.Exists(active.Panel()))
}
