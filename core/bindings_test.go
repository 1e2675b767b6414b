package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBindingsTransitions(t *testing.T) {
	tests := []struct {
		sym   Symbol
		check func(t *testing.T, s *State)
	}{
		{SymS, func(t *testing.T, s *State) { assert.True(t, s.PropellerOn) }},
		{SymF, func(t *testing.T, s *State) { assert.InDelta(t, -MoveStep, s.XPos, epsilon) }},
		{SymB, func(t *testing.T, s *State) { assert.InDelta(t, MoveStep, s.XPos, epsilon) }},
		{SymLeft, func(t *testing.T, s *State) { assert.InDelta(t, TurnStep, s.Heading, epsilon) }},
		{SymRight, func(t *testing.T, s *State) { assert.InDelta(t, -TurnStep, s.Heading, epsilon) }},
		{SymUp, func(t *testing.T, s *State) { assert.InDelta(t, ClimbStep, s.Altitude, epsilon) }},
		{SymDown, func(t *testing.T, s *State) { assert.InDelta(t, -ClimbStep, s.Altitude, epsilon) }},
	}

	bindings := DefaultBindings()
	for _, tc := range tests {
		t.Run(tc.sym.String(), func(t *testing.T) {
			s := NewState()
			var out bytes.Buffer
			assert.True(t, bindings.Apply(tc.sym, s, &out))
			tc.check(t, s)
			assert.Empty(t, out.String())
		})
	}
}

func TestHelpPrintsInstructions(t *testing.T) {
	s := NewState()
	var out bytes.Buffer

	assert.True(t, DefaultBindings().Apply(SymF1, s, &out))
	assert.Equal(t, Instructions, out.String())
	assert.Equal(t, *NewState(), *s)
}

func TestUnboundSymbolIsNoop(t *testing.T) {
	s := NewState()
	var out bytes.Buffer

	assert.False(t, DefaultBindings().Apply(SymNone, s, &out))
	assert.False(t, DefaultBindings().Apply(Symbol(99), s, &out))
	assert.Equal(t, *NewState(), *s)
	assert.Empty(t, out.String())
}

func TestCharSymbol(t *testing.T) {
	assert.Equal(t, SymS, CharSymbol('s'))
	assert.Equal(t, SymF, CharSymbol('f'))
	assert.Equal(t, SymB, CharSymbol('b'))
	assert.Equal(t, SymNone, CharSymbol('S'))
	assert.Equal(t, SymNone, CharSymbol('x'))
}

func TestParseSymbolRoundTrip(t *testing.T) {
	for sym := range symbolNames {
		parsed, ok := ParseSymbol(sym.String())
		assert.True(t, ok)
		assert.Equal(t, sym, parsed)
	}
	_, ok := ParseSymbol("q")
	assert.False(t, ok)
}
