package mesh

// Vertex is the fixed-layout record consumed by the downstream renderer.
// Field order and stride are fixed for the lifetime of a buffer; UV0 carries
// the texture coordinate in x,y while z,w and the remaining UV slots stay
// zero for layout compatibility with consumers expecting the full stride.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Tangent  [4]float32
	Color    [4]float32
	UV0      [4]float32
	UV1      [4]float32
	UV2      [4]float32
	UV3      [4]float32
}

// VertexFloats is the number of float32 components in one vertex.
const VertexFloats = 30

// Default normal and tangent for flat UI quads facing the camera.
var (
	quadNormal  = [3]float32{0, 0, -1}
	quadTangent = [4]float32{1, 0, 0, -1}
)

// Put writes the vertex into dst as VertexFloats consecutive floats, in
// declaration order. dst must have room for VertexFloats elements.
func (v *Vertex) Put(dst []float32) {
	_ = dst[VertexFloats-1]
	copy(dst[0:3], v.Position[:])
	copy(dst[3:6], v.Normal[:])
	copy(dst[6:10], v.Tangent[:])
	copy(dst[10:14], v.Color[:])
	copy(dst[14:18], v.UV0[:])
	copy(dst[18:22], v.UV1[:])
	copy(dst[22:26], v.UV2[:])
	copy(dst[26:30], v.UV3[:])
}
