package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"submarine/core"
	"submarine/rendering/opengl/shaders"
)

// gpuMesh is a mesh resident in GPU buffers
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// uploadMesh creates the VAO, VBO and EBO for m. Must run with the GL
// context current.
func uploadMesh(m core.Mesh) *gpuMesh {
	g := &gpuMesh{indexCount: int32(len(m.Indices))}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return g
	}

	vertices := m.Interleaved()
	stride := int32(core.FloatsPerVertex * 4)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(shaders.PositionLocation, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(shaders.PositionLocation)

	gl.VertexAttribPointerWithOffset(shaders.NormalLocation, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(shaders.NormalLocation)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

func (g *gpuMesh) draw() {
	if g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (g *gpuMesh) delete() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	*g = gpuMesh{}
}
