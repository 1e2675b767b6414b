package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// QuadMesh is a flat grid of size x size quadrilateral cells
type QuadMesh struct {
	Size     int
	Origin   mgl32.Vec3
	Normal   mgl32.Vec3
	Material Material

	mesh Mesh
}

// NewQuadMesh allocates an empty grid with size cells per side
func NewQuadMesh(size int) *QuadMesh {
	if size < 1 {
		size = 1
	}
	return &QuadMesh{Size: size}
}

// Build lays the grid out from origin, spanning len1 along dir1 and len2
// along dir2. Cells face dir1 x dir2.
func (q *QuadMesh) Build(origin mgl32.Vec3, len1, len2 float32, dir1, dir2 mgl32.Vec3) {
	dir1 = dir1.Normalize()
	dir2 = dir2.Normalize()
	step1 := dir1.Mul(len1 / float32(q.Size))
	step2 := dir2.Mul(len2 / float32(q.Size))

	q.Origin = origin
	q.Normal = dir1.Cross(dir2).Normalize()

	n := q.Size + 1
	mesh := Mesh{
		Vertices: make([]Vertex, 0, n*n),
		Indices:  make([]uint32, 0, q.Size*q.Size*6),
	}

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			pos := origin.Add(step1.Mul(float32(i))).Add(step2.Mul(float32(j)))
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: pos, Normal: q.Normal})
		}
	}

	for j := 0; j < q.Size; j++ {
		for i := 0; i < q.Size; i++ {
			p00 := uint32(j*n + i)
			p10 := p00 + 1
			p01 := p00 + uint32(n)
			p11 := p01 + 1
			mesh.Indices = append(mesh.Indices, p00, p10, p11, p00, p11, p01)
		}
	}

	q.mesh = mesh
}

// SetMaterial assigns the single material shared by every cell
func (q *QuadMesh) SetMaterial(ambient, diffuse, specular mgl32.Vec3, shininess float32) {
	q.Material = MaterialFromRGB(ambient, diffuse, specular, shininess)
}

// Mesh returns the triangulated grid. It is empty until Build is called.
func (q *QuadMesh) Mesh() Mesh {
	return q.mesh
}

// QuadCount is the number of cells in the grid
func (q *QuadMesh) QuadCount() int {
	return q.Size * q.Size
}

// NewGround builds the 16x16 world-unit ground plane centred on the origin
func NewGround(meshSize int) *QuadMesh {
	ground := NewQuadMesh(meshSize)
	ground.Build(
		mgl32.Vec3{-8, 0, 8},
		16, 16,
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{0, 0, -1},
	)
	ground.SetMaterial(
		mgl32.Vec3{0, 0.05, 0},
		mgl32.Vec3{0.4, 0.8, 0.4},
		mgl32.Vec3{0.04, 0.04, 0.04},
		0.2,
	)
	return ground
}
