package opengl

import (
	"unsafe"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"cull-engine/internal/overlay"
	"cull-engine/math"
)

const lineVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec4 inColor;

uniform mat4 mvp;

out vec4 fragColor;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragColor = inColor;
}
` + "\x00"

const lineFragSrc = `
#version 410 core
in vec4 fragColor;
out vec4 outColor;

void main() {
    outColor = fragColor;
}
` + "\x00"

// LineRenderer draws overlay batches as GL_LINES with a single
// view-projection uniform. It needs a current OpenGL 4.1 core context.
type LineRenderer struct {
	program uint32
	mvpLoc  int32

	vao      uint32
	vbo      uint32
	capacity int // vertices the VBO can hold
}

func NewLineRenderer() (*LineRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.New("initializing opengl failed").Wrap(err)
	}

	logs.WithTag("version", gl.GoStr(gl.GetString(gl.VERSION))).
		WithTag("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Info("opengl initialized")

	prog, err := newProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, errors.New("compiling line shader failed").Wrap(err)
	}

	r := &LineRenderer{
		program: prog,
		mvpLoc:  gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	var v overlay.Vertex
	stride := int32(unsafe.Sizeof(v))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Color))))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *LineRenderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the colour and depth buffers.
func (r *LineRenderer) Clear(c overlay.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw uploads b and draws it with vp, a row-vector view-projection matrix.
// Row-major storage of a row-vector matrix is the column-major layout GLSL
// expects, so the matrix is passed untransposed.
func (r *LineRenderer) Draw(b *overlay.Batch, vp math.Mat4) {
	if len(b.Vertices) == 0 {
		return
	}

	stride := int(unsafe.Sizeof(overlay.Vertex{}))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(b.Vertices) > r.capacity {
		r.capacity = max(len(b.Vertices), 2*r.capacity)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*stride, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(b.Vertices)*stride, gl.Ptr(b.Vertices))

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&vp[0][0])))

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(b.Vertices)))
	gl.BindVertexArray(0)
}

func (r *LineRenderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
