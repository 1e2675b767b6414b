package core

import (
	"fmt"
	"io"
)

// Symbol is a harness-independent input symbol
type Symbol int

const (
	SymNone Symbol = iota
	SymS
	SymF
	SymB
	SymLeft
	SymRight
	SymUp
	SymDown
	SymF1
)

var symbolNames = map[Symbol]string{
	SymS:     "s",
	SymF:     "f",
	SymB:     "b",
	SymLeft:  "left",
	SymRight: "right",
	SymUp:    "up",
	SymDown:  "down",
	SymF1:    "f1",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "none"
}

// ParseSymbol maps a symbol name back to its Symbol
func ParseSymbol(name string) (Symbol, bool) {
	for sym, n := range symbolNames {
		if n == name {
			return sym, true
		}
	}
	return SymNone, false
}

// Instructions is printed when the help key is pressed
const Instructions = " Controls: \n Up: Up arrow key \n Down: Down arrow key \n Rotate right: Right arrow key \n Rotate left: Left arrow key \n Forward: 'f' \n Backward: 'b' \n Toggle propeller: 's' \n"

// Action is a state transition bound to an input symbol. out receives any
// console output the action produces.
type Action func(s *State, out io.Writer)

// Bindings maps input symbols to state transitions
type Bindings map[Symbol]Action

// DefaultBindings returns the keyboard layout of the demo
func DefaultBindings() Bindings {
	return Bindings{
		SymS:     func(s *State, _ io.Writer) { s.ToggleProp() },
		SymF:     func(s *State, _ io.Writer) { s.MoveForward() },
		SymB:     func(s *State, _ io.Writer) { s.MoveBackward() },
		SymLeft:  func(s *State, _ io.Writer) { s.TurnLeft() },
		SymRight: func(s *State, _ io.Writer) { s.TurnRight() },
		SymUp:    func(s *State, _ io.Writer) { s.Ascend() },
		SymDown:  func(s *State, _ io.Writer) { s.Descend() },
		SymF1:    func(_ *State, out io.Writer) { fmt.Fprint(out, Instructions) },
	}
}

// Apply runs the action bound to sym, if any, and reports whether one ran.
// Unbound symbols leave the state untouched.
func (b Bindings) Apply(sym Symbol, s *State, out io.Writer) bool {
	action, ok := b[sym]
	if !ok {
		return false
	}
	action(s, out)
	return true
}

// CharSymbol maps a typed character to its symbol. Only the lowercase
// letters are bound.
func CharSymbol(char rune) Symbol {
	switch char {
	case 's':
		return SymS
	case 'f':
		return SymF
	case 'b':
		return SymB
	}
	return SymNone
}
