package preview

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/uimesh/internal/engine/mesh"
	"github.com/Faultbox/uimesh/pkg/math"
)

// Element is one on-screen quad mesh with its GPU buffers. The mesh is
// regenerated and re-uploaded whenever its parameters change.
type Element struct {
	Label  string
	Rect   math.Rect
	Sprite *mesh.Sprite
	Color  [4]float32
	Params mesh.Params

	buf        mesh.Buffer
	scratch    []float32
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	dirty      bool
}

// NewElement creates the GPU objects for one element. The mesh itself is
// built lazily on the first draw.
func NewElement(label string, rect math.Rect, spr *mesh.Sprite, color [4]float32, p mesh.Params) *Element {
	e := &Element{
		Label:  label,
		Rect:   rect,
		Sprite: spr,
		Color:  color,
		Params: p,
		dirty:  true,
	}

	gl.GenVertexArrays(1, &e.vao)
	gl.BindVertexArray(e.vao)

	gl.GenBuffers(1, &e.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, e.vbo)
	gl.GenBuffers(1, &e.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, e.ebo)

	stride := int32(mesh.VertexFloats * 4)

	// Position attribute (location = 0): 3 floats
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1): 4 floats
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 10*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord attribute (location = 2): the x,y of the first UV slot
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 14*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return e
}

// SetRect moves or resizes the element.
func (e *Element) SetRect(rect math.Rect) {
	e.Rect = rect
	e.dirty = true
}

// SetFillAmount updates the fill fraction for filled-mode elements.
func (e *Element) SetFillAmount(fill float32) {
	e.Params.FillAmount = fill
	e.dirty = true
}

// MarkDirty forces a mesh rebuild on the next draw.
func (e *Element) MarkDirty() {
	e.dirty = true
}

// rebuild regenerates the mesh and uploads vertices and indices.
func (e *Element) rebuild() error {
	nVtx, nIdx, err := mesh.Generate(&e.buf, e.Rect, e.Sprite, e.Color, e.Params)
	if err != nil {
		return fmt.Errorf("generate %s: %w", e.Label, err)
	}

	need := nVtx * mesh.VertexFloats
	if cap(e.scratch) < need {
		e.scratch = make([]float32, need)
	}
	e.scratch = e.scratch[:need]

	verts := e.buf.Vertices()
	for i := range verts {
		verts[i].Put(e.scratch[i*mesh.VertexFloats:])
	}

	gl.BindVertexArray(e.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, e.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(e.scratch)*4, unsafe.Pointer(&e.scratch[0]), gl.STREAM_DRAW)

	idx := e.buf.Indices()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, e.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*2, unsafe.Pointer(&idx[0]), gl.STREAM_DRAW)

	gl.BindVertexArray(0)

	e.indexCount = int32(nIdx)
	e.dirty = false
	return nil
}

// Dispose releases the GPU objects and the mesh buffer.
func (e *Element) Dispose() {
	if e.vao != 0 {
		gl.DeleteVertexArrays(1, &e.vao)
		e.vao = 0
	}
	if e.vbo != 0 {
		gl.DeleteBuffers(1, &e.vbo)
		e.vbo = 0
	}
	if e.ebo != 0 {
		gl.DeleteBuffers(1, &e.ebo)
		e.ebo = 0
	}
	e.buf.Dispose()
}
