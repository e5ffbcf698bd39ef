package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider("")
	require.NoError(t, err)
	assert.IsType(t, &EbitenProvider{}, p)

	p, err = NewProvider("Terminal")
	require.NoError(t, err)
	assert.IsType(t, &TerminalProvider{}, p)

	_, err = NewProvider("joystick")
	assert.True(t, errors.Is(err, ErrNoInputSystem))
}

func TestTerminalProviderTracksMouse(t *testing.T) {
	p := NewTerminalProvider(8, 16)
	assert.False(t, p.Pointer().Present)

	assert.True(t, p.HandleEvent(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone)))
	state := p.Pointer()
	assert.True(t, state.Present)
	assert.False(t, state.Pressed)
	assert.Equal(t, 20.0, state.X)
	assert.Equal(t, 24.0, state.Y)

	x, y := p.MousePosition()
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 24.0, y)
}

func TestTerminalProviderPressRelease(t *testing.T) {
	p := NewTerminalProvider(1, 1)

	p.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	assert.True(t, p.Pointer().Pressed)
	assert.True(t, p.Pointer().Pressed, "held button stays pressed")

	p.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, p.Pointer().Pressed)
}

func TestTerminalProviderShortClickSeenOnce(t *testing.T) {
	p := NewTerminalProvider(1, 1)

	p.HandleEvent(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone))
	p.HandleEvent(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))

	assert.True(t, p.Pointer().Pressed)
	assert.False(t, p.Pointer().Pressed)
}

func TestTerminalProviderIgnoresOtherEvents(t *testing.T) {
	p := NewTerminalProvider(0, -1)
	assert.False(t, p.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))

	p.HandleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	p.Leave()
	state := p.Pointer()
	assert.False(t, state.Present)
	assert.False(t, state.Pressed)
}
