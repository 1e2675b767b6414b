package opengl

import (
	"bytes"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"submarine/core"
)

// newTestRenderer builds a renderer without a window or GL context. The
// input handlers only touch state, bindings and the redraw flag.
func newTestRenderer() (*SceneRenderer, *bytes.Buffer) {
	var help bytes.Buffer
	return &SceneRenderer{
		state:    core.NewState(),
		bindings: core.DefaultBindings(),
		help:     &help,
		camera:   core.DefaultCamera(),
		width:    650,
		height:   500,
		log:      zerolog.Nop(),
	}, &help
}

func TestKeySymbol(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want core.Symbol
	}{
		{glfw.KeyLeft, core.SymLeft},
		{glfw.KeyRight, core.SymRight},
		{glfw.KeyUp, core.SymUp},
		{glfw.KeyDown, core.SymDown},
		{glfw.KeyF1, core.SymF1},
		{glfw.KeyF2, core.SymNone},
		{glfw.KeyS, core.SymNone},
		{glfw.KeyEscape, core.SymNone},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, keySymbol(tc.key), "key %d", tc.key)
	}
}

func TestOnChar(t *testing.T) {
	tests := []struct {
		name  string
		char  rune
		check func(t *testing.T, s *core.State)
	}{
		{"unbound", 'x', func(t *testing.T, s *core.State) {
			assert.Equal(t, core.NewState(), s)
		}},
		{"uppercase is unbound", 'F', func(t *testing.T, s *core.State) {
			assert.Equal(t, core.NewState(), s)
		}},
		{"forward", 'f', func(t *testing.T, s *core.State) {
			assert.InDelta(t, -1.0, s.XPos, 1e-9)
			assert.InDelta(t, 0.0, s.ZPos, 1e-9)
		}},
		{"backward", 'b', func(t *testing.T, s *core.State) {
			assert.InDelta(t, 1.0, s.XPos, 1e-9)
			assert.Equal(t, core.Backward, s.Direction)
		}},
		{"toggle propeller", 's', func(t *testing.T, s *core.State) {
			assert.True(t, s.PropellerOn)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestRenderer()
			r.onChar(tc.char)
			assert.True(t, r.needsRedraw)
			tc.check(t, r.state)
		})
	}
}

func TestOnKey(t *testing.T) {
	t.Run("unbound key still redraws", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onKey(glfw.KeyA, 0, glfw.Press, 0)
		assert.True(t, r.needsRedraw)
		assert.Equal(t, core.NewState(), r.state)
	})

	t.Run("escape has no effect beyond a redraw", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onKey(glfw.KeyEscape, 0, glfw.Press, 0)
		assert.True(t, r.needsRedraw)
		assert.Equal(t, core.NewState(), r.state)
	})

	t.Run("release is ignored", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onKey(glfw.KeyUp, 0, glfw.Release, 0)
		assert.False(t, r.needsRedraw)
		assert.Zero(t, r.state.Altitude)
	})

	t.Run("repeat acts like press", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onKey(glfw.KeyUp, 0, glfw.Press, 0)
		r.onKey(glfw.KeyUp, 0, glfw.Repeat, 0)
		assert.True(t, r.needsRedraw)
		assert.InDelta(t, 1.0, r.state.Altitude, 1e-9)
	})

	t.Run("left turns", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onKey(glfw.KeyLeft, 0, glfw.Press, 0)
		assert.InDelta(t, 10.0, r.state.Heading, 1e-9)
	})

	t.Run("f1 prints instructions", func(t *testing.T) {
		r, help := newTestRenderer()
		r.onKey(glfw.KeyF1, 0, glfw.Press, 0)
		assert.True(t, r.needsRedraw)
		assert.Equal(t, core.Instructions, help.String())
		assert.Equal(t, core.NewState(), r.state)
	})
}

func TestOnMouseButton(t *testing.T) {
	t.Run("middle click redraws without state change", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onMouseButton(glfw.MouseButtonMiddle, glfw.Press, 10, 10)
		assert.True(t, r.needsRedraw)
		assert.False(t, r.mouseDown)
		assert.Equal(t, glfw.MouseButtonMiddle, r.currentButton)
		assert.Equal(t, core.NewState(), r.state)
	})

	t.Run("left press and release", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onMouseButton(glfw.MouseButtonLeft, glfw.Press, 325, 250)
		require.True(t, r.mouseDown)
		assert.True(t, r.needsRedraw)

		r.needsRedraw = false
		r.onMouseButton(glfw.MouseButtonLeft, glfw.Release, 325, 250)
		assert.False(t, r.mouseDown)
		assert.True(t, r.needsRedraw)
		assert.Equal(t, core.NewState(), r.state)
	})
}

func TestOnMouseMove(t *testing.T) {
	t.Run("no button held", func(t *testing.T) {
		r, _ := newTestRenderer()
		r.onMouseMove(100, 100)
		assert.False(t, r.needsRedraw)
	})

	for _, button := range []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight} {
		r, _ := newTestRenderer()
		r.onMouseButton(button, glfw.Press, 325, 250)
		r.needsRedraw = false
		r.onMouseMove(330, 260)
		assert.True(t, r.needsRedraw, "button %d", button)
		assert.Equal(t, core.NewState(), r.state)
	}
}
