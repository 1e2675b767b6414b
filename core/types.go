package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is the sign applied to propeller animation
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Vertex is a single mesh vertex as uploaded to the GPU
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Mesh is indexed triangle geometry
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles described by the index list
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// FloatsPerVertex is the interleaved stride: position xyz, normal xyz
const FloatsPerVertex = 6

// Interleaved packs the vertices as position/normal pairs for a single VBO
func (m Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
		out = append(out, v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}
