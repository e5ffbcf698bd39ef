package app

import (
	"testing"

	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/input"
	"github.com/decker502/sadui/pkg/types"
	"github.com/decker502/sadui/pkg/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminalHost(t *testing.T) (*TerminalHost, tcell.SimulationScreen) {
	t.Helper()
	layout, err := config.ParseLayoutConfig([]byte(testLayout), "test")
	require.NoError(t, err)

	provider := input.NewTerminalProvider(TerminalCellWidth, TerminalCellHeight)
	a, err := New(Options{Layout: layout, Provider: provider})
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	return NewTerminalHost(a, screen, provider), screen
}

func TestTerminalMouseDrivesButtons(t *testing.T) {
	host, _ := newTerminalHost(t)

	// 字符格 (2, 1) 对应布局像素 (20, 24)，位于 play 按钮内
	host.handleEvent(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	host.app.Step(1.0 / 60)

	play, _ := host.app.Button("play")
	assert.Equal(t, ui.StateHighlighted, play.State())

	host.handleEvent(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	host.app.Step(1.0 / 60)
	assert.Equal(t, ui.StatePressed, play.State())

	host.handleEvent(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	host.app.Step(1.0 / 60)
	assert.NotNil(t, host.app.Popups().ActivePopup())
}

func TestTerminalKeys(t *testing.T) {
	host, _ := newTerminalHost(t)

	assert.False(t, host.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.True(t, host.app.Paused())

	host.app.Popups().DisplayPopup(PopupData(&config.PopupConfig{Title: "x"}))
	assert.False(t, host.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)), "escape closes the popup first")
	assert.Nil(t, host.app.Popups().ActivePopup())

	assert.True(t, host.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, host.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestTerminalDraw(t *testing.T) {
	host, screen := newTerminalHost(t)
	host.app.Step(1.0 / 60)
	host.Draw()

	// tab-a 已选中，面板 A 可见
	_, _, style, _ := screen.GetContent(25, 0)
	_, bg, _ := style.Decompose()
	selected, err := types.ParseHexColor("#ffcc00")
	require.NoError(t, err)
	assert.Equal(t, toTcell(selected), bg)

	r, _, _, _ := screen.GetContent(26, 3)
	assert.Equal(t, 'A', r)
}

func TestToCells(t *testing.T) {
	x, y, w, h := toCells(200, 50, 200, 100)
	assert.Equal(t, []int{25, 3, 25, 6}, []int{x, y, w, h})

	_, _, w, h = toCells(0, 0, 1, 1)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
