package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cube returns an axis-aligned cube centred on the origin with flat face normals
func Cube(edge float32) Mesh {
	h := edge / 2
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
	}

	var mesh Mesh
	for _, f := range faces {
		base := uint32(len(mesh.Vertices))
		for _, c := range f.corners {
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: c, Normal: f.normal})
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return mesh
}

// Cylinder returns an open tube along +Z from z=0 to z=height whose radius
// tapers linearly from base to top. It has no end caps.
func Cylinder(base, top, height float32, slices, stacks int) Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 1 {
		stacks = 1
	}

	// Side normals tilt by the taper slope
	nz := (base - top) / height

	var mesh Mesh
	for st := 0; st <= stacks; st++ {
		t := float32(st) / float32(stacks)
		radius := base + (top-base)*t
		z := height * t
		for sl := 0; sl <= slices; sl++ {
			a := 2 * math.Pi * float64(sl) / float64(slices)
			cx, cy := float32(math.Cos(a)), float32(math.Sin(a))
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: mgl32.Vec3{cx * radius, cy * radius, z},
				Normal:   mgl32.Vec3{cx, cy, nz}.Normalize(),
			})
		}
	}

	row := uint32(slices + 1)
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			p := uint32(st)*row + uint32(sl)
			mesh.Indices = append(mesh.Indices, p, p+1, p+row+1, p, p+row+1, p+row)
		}
	}
	return mesh
}
