package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere generates a UV sphere centred on the origin with the poles on the Y axis
func Sphere(radius float32, slices, stacks int) Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	var mesh Mesh

	for ring := 0; ring <= stacks; ring++ {
		theta := float64(ring) * math.Pi / float64(stacks)
		sinTheta := float32(math.Sin(theta))
		cosTheta := float32(math.Cos(theta))

		for seg := 0; seg <= slices; seg++ {
			phi := float64(seg) * 2.0 * math.Pi / float64(slices)
			sinPhi := float32(math.Sin(phi))
			cosPhi := float32(math.Cos(phi))

			n := mgl32.Vec3{cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: n.Mul(radius),
				Normal:   n,
			})
		}
	}

	for ring := 0; ring < stacks; ring++ {
		for seg := 0; seg < slices; seg++ {
			current := uint32(ring*(slices+1) + seg)
			next := current + uint32(slices) + 1

			mesh.Indices = append(mesh.Indices, current, current+1, next)
			mesh.Indices = append(mesh.Indices, current+1, next+1, next)
		}
	}

	return mesh
}
