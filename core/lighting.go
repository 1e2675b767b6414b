package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a positional light source
type Light struct {
	Position mgl32.Vec4
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4
}

// Material holds Phong reflection coefficients
type Material struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Shininess float32
}

var (
	lightAmbient  = mgl32.Vec4{0.2, 0.2, 0.2, 1}
	lightDiffuse  = mgl32.Vec4{1, 1, 1, 1}
	lightSpecular = mgl32.Vec4{1, 1, 1, 1}
)

// Scene lights. Light1 is off unless enabled in settings.
var (
	Light0 = Light{
		Position: mgl32.Vec4{-6, 12, 0, 1},
		Ambient:  lightAmbient,
		Diffuse:  lightDiffuse,
		Specular: lightSpecular,
	}
	Light1 = Light{
		Position: mgl32.Vec4{6, 12, 0, 1},
		Ambient:  lightAmbient,
		Diffuse:  lightDiffuse,
		Specular: lightSpecular,
	}
)

// SubMaterial is the orange hull and propeller finish
var SubMaterial = Material{
	Ambient:   mgl32.Vec4{0.4, 0.2, 0, 1},
	Diffuse:   mgl32.Vec4{0.9, 0.5, 0, 1},
	Specular:  mgl32.Vec4{0.1, 0.1, 0, 1},
	Shininess: 0,
}

// ClearColor is the background grey
var ClearColor = mgl32.Vec4{0.6, 0.6, 0.6, 0}

// MaterialFromRGB builds an opaque material from three colour triples
func MaterialFromRGB(ambient, diffuse, specular mgl32.Vec3, shininess float32) Material {
	return Material{
		Ambient:   ambient.Vec4(1),
		Diffuse:   diffuse.Vec4(1),
		Specular:  specular.Vec4(1),
		Shininess: shininess,
	}
}
