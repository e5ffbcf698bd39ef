package app

import (
	"testing"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/entities"
	"github.com/decker502/sadui/pkg/game"
	"github.com/decker502/sadui/pkg/input"
	"github.com/decker502/sadui/pkg/types"
	"github.com/decker502/sadui/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLayout = `name: test
sprites:
  - id: base
    fill: "#3366cc"
    border: "#ffffff"
    width: 16
    height: 16
clips:
  - trigger: Pressed
    frames: [base]
buttons:
  - name: play
    x: 10
    y: 10
    width: 100
    height: 40
    transitions: [color_tint, sprite_swap]
    sprite: base
    visuals:
      - {key: Normal, value: {sprite: base}}
      - {key: Highlighted, value: {color: "#808080"}}
      - {key: Pressed, value: {color: "#404040"}}
      - {key: Disabled, value: {color: "#202020"}}
    action: popup
    popup:
      title: Hello
      lines: [first]
  - name: pause
    x: 10
    y: 60
    width: 100
    height: 40
    action: pause
  - name: save
    x: 10
    y: 110
    width: 100
    height: 40
    action: save
  - name: quit
    x: 10
    y: 160
    width: 100
    height: 40
    action: quit
  - name: tab-a
    x: 200
    y: 10
    width: 80
    height: 30
    transitions: [color_tint]
    visuals:
      - {key: Normal, value: {color: "#888888"}}
      - {key: Highlighted, value: {color: "#aaaaaa"}}
      - {key: Pressed, value: {color: "#666666"}}
      - {key: Selected, value: {color: "#ffcc00", color_duration: 0}}
      - {key: Disabled, value: {color: "#444444"}}
  - name: tab-b
    x: 290
    y: 10
    width: 80
    height: 30
    transitions: [color_tint]
    visuals:
      - {key: Normal, value: {color: "#888888"}}
      - {key: Highlighted, value: {color: "#aaaaaa"}}
      - {key: Pressed, value: {color: "#666666"}}
      - {key: Selected, value: {color: "#ffcc00", color_duration: 0}}
      - {key: Disabled, value: {color: "#444444"}}
tabs:
  buttons: [tab-a, tab-b]
  contents:
    - {title: A, x: 200, y: 50, width: 200, height: 100}
    - {title: B, x: 200, y: 50, width: 200, height: 100}
`

type fakePointer struct {
	state input.PointerState
}

func (f *fakePointer) MousePosition() (float64, float64) { return f.state.X, f.state.Y }
func (f *fakePointer) Pointer() input.PointerState       { return f.state }

type harness struct {
	app     *App
	pointer *fakePointer
}

func newHarness(t *testing.T, store *game.LayoutStore) *harness {
	t.Helper()
	layout, err := config.ParseLayoutConfig([]byte(testLayout), "test")
	require.NoError(t, err)

	pointer := &fakePointer{}
	a, err := New(Options{Layout: layout, Provider: pointer, Store: store})
	require.NoError(t, err)
	return &harness{app: a, pointer: pointer}
}

func (h *harness) step() {
	h.app.Step(1.0 / 60)
}

func (h *harness) clickAt(x, y float64) {
	h.pointer.state = input.PointerState{X: x, Y: y, Present: true}
	h.step()
	h.pointer.state.Pressed = true
	h.step()
	h.pointer.state.Pressed = false
	h.step()
}

func (h *harness) clickButton(t *testing.T, name string) {
	t.Helper()
	cfg, ok := h.app.Config().Button(name)
	require.True(t, ok)
	h.clickAt(cfg.X+cfg.Width/2, cfg.Y+cfg.Height/2)
}

func TestNewRequiresLayoutAndProvider(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	layout, err := config.ParseLayoutConfig([]byte(testLayout), "test")
	require.NoError(t, err)
	_, err = New(Options{Layout: layout})
	assert.ErrorIs(t, err, input.ErrNoInputSystem)
}

func TestNewBuildsButtonsAndTabs(t *testing.T) {
	h := newHarness(t, nil)

	play, ok := h.app.Button("play")
	require.True(t, ok)
	assert.Equal(t, ui.StateNormal, play.State())
	_, ok = h.app.Button("missing")
	assert.False(t, ok)

	require.NotNil(t, h.app.Tabs())
	assert.Equal(t, 0, h.app.Tabs().CurrentIndex())
	tabA, _ := h.app.Button("tab-a")
	assert.Equal(t, ui.StateSelected, tabA.State())
	assert.False(t, tabA.IsInteractable())
}

func TestTabSwitchOnClick(t *testing.T) {
	h := newHarness(t, nil)

	h.clickButton(t, "tab-b")
	assert.Equal(t, 1, h.app.Tabs().CurrentIndex())

	tabA, _ := h.app.Button("tab-a")
	tabB, _ := h.app.Button("tab-b")
	assert.True(t, tabA.IsInteractable())
	assert.Equal(t, ui.StateSelected, tabB.State())

	em := h.app.EntityManager()
	var active []string
	for _, id := range ecs.GetEntitiesWith1[*components.TabContentComponent](em) {
		tab, _ := ecs.GetComponent[*components.TabContentComponent](em, id)
		if tab.Active {
			active = append(active, tab.Title)
		}
	}
	assert.Equal(t, []string{"B"}, active)
}

func TestPopupActionIsModal(t *testing.T) {
	h := newHarness(t, nil)

	h.clickButton(t, "play")
	p, ok := h.app.Popups().ActivePopup().(*entities.EntityPopup)
	require.True(t, ok)

	em := h.app.EntityManager()
	panel, ok := ecs.GetComponent[*components.PopupComponent](em, p.Panel())
	require.True(t, ok)
	assert.Equal(t, "Hello", panel.Title)
	require.Len(t, p.Buttons(), 1)

	// 弹窗打开时底层按钮不响应
	h.clickButton(t, "quit")
	assert.False(t, h.app.Quit())

	okButton := p.Buttons()[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, okButton)
	btn, _ := ecs.GetComponent[*components.ButtonComponent](em, okButton)
	h.clickAt(pos.X+btn.Width/2, pos.Y+btn.Height/2)

	assert.Nil(t, h.app.Popups().ActivePopup())
	assert.False(t, em.Exists(p.Panel()))
}

func TestPauseAndQuitActions(t *testing.T) {
	h := newHarness(t, nil)

	h.clickButton(t, "pause")
	assert.True(t, h.app.Paused())
	h.clickButton(t, "pause")
	assert.False(t, h.app.Paused())

	h.clickButton(t, "quit")
	assert.True(t, h.app.Quit())
}

func TestPausedTintHolds(t *testing.T) {
	h := newHarness(t, nil)
	h.app.TogglePause()

	cfg, _ := h.app.Config().Button("play")
	h.pointer.state = input.PointerState{X: cfg.X + 1, Y: cfg.Y + 1, Present: true}
	for i := 0; i < 30; i++ {
		h.step()
	}

	play, _ := h.app.Button("play")
	assert.Equal(t, ui.StateHighlighted, play.State())

	em := h.app.EntityManager()
	var tint types.Color
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](em) {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
		if btn.Button == play {
			img, _ := ecs.GetComponent[*components.ImageComponent](em, id)
			tint = img.Tint
		}
	}
	assert.Equal(t, types.White, tint, "scaled transition does not advance at time scale 0")
}

func TestSaveActionPersistsVisuals(t *testing.T) {
	store := game.NewLayoutStore(nil, "test")
	h := newHarness(t, store)

	play, _ := h.app.Button("play")
	normal, _ := play.Visuals().Get(ui.StateNormal)
	normal.Color = types.RGB(1, 0, 0)

	h.clickButton(t, "save")
	assert.True(t, store.Exists("play"))
	assert.NotNil(t, h.app.Popups().ActivePopup(), "save shows a notice")

	reloaded := newHarness(t, store)
	play, _ = reloaded.app.Button("play")
	normal, ok := play.Visuals().Get(ui.StateNormal)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", normal.Color.Hex())
}

func TestSaveNoticeClosesItself(t *testing.T) {
	h := newHarness(t, game.NewLayoutStore(nil, "test"))
	h.app.SaveLayout()
	require.NotNil(t, h.app.Popups().ActivePopup())

	for i := 0; i < 120; i++ {
		h.step()
	}
	assert.Nil(t, h.app.Popups().ActivePopup())
}

func TestPopupData(t *testing.T) {
	data := PopupData(&config.PopupConfig{
		Title:        "T",
		Lines:        []string{"a", "b"},
		Sprites:      []string{"icon"},
		Buttons:      []string{"Yes", "No"},
		DestroyAfter: 3,
	})
	assert.True(t, data.HasTitle)
	assert.Len(t, data.Contents, 4)
	assert.Len(t, data.Buttons, 2)
	assert.True(t, data.ShouldDestroySelf)

	empty := PopupData(nil)
	assert.False(t, empty.HasTitle)
	assert.Empty(t, empty.Buttons)
}

func TestBuildClips(t *testing.T) {
	layout, err := config.ParseLayoutConfig([]byte(testLayout), "test")
	require.NoError(t, err)

	sprites, err := BuildSprites(layout.Sprites, nil)
	require.NoError(t, err)
	require.Contains(t, sprites, "base")
	assert.Equal(t, 16, sprites["base"].Bounds().Dx())

	clips := BuildClips(layout.Clips, sprites)
	clip, ok := clips[types.TriggerHash("Pressed")]
	require.True(t, ok)
	assert.Equal(t, "Pressed", clip.Name)
	assert.Len(t, clip.Frames, 1)
}

func TestBuildInsets(t *testing.T) {
	insets := BuildInsets([]config.SpriteConfig{
		{ID: "plain", Width: 8, Height: 8},
		{ID: "framed", Width: 16, Height: 16, Slice: 4},
	})
	assert.Equal(t, map[string]float64{"framed": 4}, insets)
}

func TestBuildSpritesPathErrors(t *testing.T) {
	_, err := BuildSprites([]config.SpriteConfig{{ID: "x", Path: "data/x.png"}}, nil)
	assert.Error(t, err)

	_, err = BuildSprites([]config.SpriteConfig{{ID: "x", Path: "data/x.png"}}, func(string) ([]byte, error) {
		return []byte("not a png"), nil
	})
	assert.Error(t, err)
}

func TestCloseTearsDownButtonsAndTasks(t *testing.T) {
	h := newHarness(t, nil)

	h.clickButton(t, "play")
	require.NotNil(t, h.app.Popups().ActivePopup())
	h.step()

	h.app.Close()
	assert.True(t, h.app.Closed())
	assert.Nil(t, h.app.Popups().ActivePopup())

	em := h.app.EntityManager()
	assert.Empty(t, ecs.GetEntitiesWith1[*components.ButtonComponent](em))
	_, ok := h.app.Button("play")
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		h.step()
		h.app.Close()
	})
}
