package mesh

import "fmt"

// MaxVertices is the largest vertex count addressable by the 16-bit index
// buffer in a single generation pass.
const MaxVertices = 65535

// Buffer owns the vertex and index backing storage for one UI element.
// Storage is sized to exactly the current pass's requirements; there is no
// growth policy, so every size change pays a full reallocation. Generation
// runs at most once per visual update, not per frame, which keeps that
// tradeoff cheap.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	vertices []Vertex
	indices  []uint16
}

// Reinitialize discards prior contents and sizes storage to exactly nVtx
// vertices and nIdx indices, returning writable views over both. Storage is
// reused only when the requested size matches the current size, in which
// case it is cleared in place.
func (b *Buffer) Reinitialize(nVtx, nIdx int) ([]Vertex, []uint16, error) {
	if nVtx < 0 || nIdx < 0 {
		return nil, nil, fmt.Errorf("%w: %d vertices, %d indices", ErrNegativeCount, nVtx, nIdx)
	}
	if nVtx > MaxVertices {
		return nil, nil, fmt.Errorf("%w: %d > %d", ErrVertexRange, nVtx, MaxVertices)
	}

	if len(b.vertices) == nVtx {
		clear(b.vertices)
	} else {
		b.vertices = make([]Vertex, nVtx)
	}
	if len(b.indices) == nIdx {
		clear(b.indices)
	} else {
		b.indices = make([]uint16, nIdx)
	}
	return b.vertices, b.indices, nil
}

// Clear is equivalent to Reinitialize(0, 0).
func (b *Buffer) Clear() {
	b.vertices = make([]Vertex, 0)
	b.indices = make([]uint16, 0)
}

// Dispose releases all backing storage. The buffer must be reinitialized
// before any further writes.
func (b *Buffer) Dispose() {
	b.vertices = nil
	b.indices = nil
}

// Vertices returns the current vertex storage.
func (b *Buffer) Vertices() []Vertex {
	return b.vertices
}

// Indices returns the current index storage.
func (b *Buffer) Indices() []uint16 {
	return b.indices
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.vertices)
}

// IndexCount returns the number of indices in the buffer.
func (b *Buffer) IndexCount() int {
	return len(b.indices)
}
