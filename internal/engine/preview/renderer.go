package preview

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/uimesh/internal/engine/shader"
	"github.com/Faultbox/uimesh/pkg/math"
)

var vertexShaderSource = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec4 aColor;
	layout (location = 2) in vec2 aTexCoord;

	uniform mat4 uProjection;

	out vec4 vColor;
	out vec2 vTexCoord;

	void main() {
		gl_Position = uProjection * vec4(aPos, 1.0);
		vColor = aColor;
		vTexCoord = aTexCoord;
	}
`

var fragmentShaderSource = `
	#version 410 core

	in vec4 vColor;
	in vec2 vTexCoord;
	out vec4 FragColor;

	void main() {
		// An 8x8 checker over the UV rect stands in for a texture, so
		// slicing and tiling stay visible without any image assets.
		vec2 cell = floor(vTexCoord * 8.0);
		float checker = mod(cell.x + cell.y, 2.0);
		FragColor = vec4(vColor.rgb * mix(0.55, 1.0, checker), vColor.a);
	}
`

// Renderer draws generated quad meshes with a single untextured shader
// program.
type Renderer struct {
	program uint32
	projLoc int32
}

// NewRenderer compiles the shader program. Requires a current GL context.
func NewRenderer() (*Renderer, error) {
	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile preview shader: %w", err)
	}

	return &Renderer{
		program: program,
		projLoc: shader.MustGetUniform(program, "uProjection"),
	}, nil
}

// Begin sets up 2D state and the projection for the given screen size.
// The projection puts the origin at the bottom-left, matching mesh space.
func (r *Renderer) Begin(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(r.program)
	proj := math.Ortho(0, float32(width), 0, float32(height), -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, proj.Ptr())
}

// Draw renders one element, rebuilding its mesh first if needed.
func (r *Renderer) Draw(e *Element) error {
	if e.dirty {
		if err := e.rebuild(); err != nil {
			return err
		}
	}
	if e.indexCount == 0 {
		return nil
	}

	gl.BindVertexArray(e.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, e.indexCount, gl.UNSIGNED_SHORT, 0)
	return nil
}

// End restores neutral GL state.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Close releases the shader program.
func (r *Renderer) Close() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
