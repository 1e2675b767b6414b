package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"submarine/core"
)

// keySymbol maps arrow and function keys. Printable keys arrive through the
// char callback instead so that case is preserved.
func keySymbol(key glfw.Key) core.Symbol {
	switch key {
	case glfw.KeyLeft:
		return core.SymLeft
	case glfw.KeyRight:
		return core.SymRight
	case glfw.KeyUp:
		return core.SymUp
	case glfw.KeyDown:
		return core.SymDown
	case glfw.KeyF1:
		return core.SymF1
	}
	return core.SymNone
}
