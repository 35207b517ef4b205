//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl64"

	"f1demo/internal/dashboard"
	"f1demo/internal/game"
)

// Scene constants.
var (
	lightPos    = mgl64.Vec3{0, 2, 0}
	lightColor  = mgl64.Vec3{1, 1, 1}
	groundColor = mgl64.Vec3{0.2, 0.7, 0.2}
	wheelColor  = mgl64.Vec3{0.15, 0.15, 0.15}
	gaugeColor  = mgl64.Vec3{0.8, 0.8, 0.8}
	needleColor = mgl64.Vec3{1, 0, 0}

	// Ground: a 100x100 plane just under the wheels.
	groundModel = mgl64.Translate3D(0, -0.9, 0).Mul4(mgl64.Scale3D(100, 1, 100))
	// Body and wheel boxes in the car's local frame.
	bodyShape  = mgl64.Translate3D(0.6, -0.3, 0).Mul4(mgl64.Scale3D(2.6, 0.4, 0.9))
	wheelShape = mgl64.Translate3D(0, -0.5, 0).Mul4(mgl64.Scale3D(0.6, 0.6, 0.25))
)

const maxOverlayVerts = 2 * (dashboard.Segments + 1)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

func mat32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

type mesh struct {
	vao, vbo uint32
	count    int32
}

// Renderer draws the ground, the car and the dashboard overlay.
type Renderer struct {
	phongProg uint32
	uModel    int32
	uView     int32
	uProj     int32
	uLightPos int32
	uLightCol int32
	uViewPos  int32
	uColor    int32

	overlayProg   uint32
	ovUProj       int32
	ovUColor      int32
	overlayVAO    uint32
	overlayVBO    uint32
	overlayBuffer []float32

	ground mesh
	box    mesh
}

func NewRenderer() (*Renderer, error) {
	phongProg, err := linkProgram(phongVertSrc, phongFragSrc)
	if err != nil {
		return nil, fmt.Errorf("phong program: %w", err)
	}
	overlayProg, err := linkProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		gl.DeleteProgram(phongProg)
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	r := &Renderer{
		phongProg:   phongProg,
		overlayProg: overlayProg,
	}

	r.ground = uploadMesh(planeVertices())
	r.box = uploadMesh(boxVertices())

	// Overlay VAO/VBO: streaming buffer of x,y pairs.
	gl.GenVertexArrays(1, &r.overlayVAO)
	gl.GenBuffers(1, &r.overlayVBO)
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	gl.BufferData(gl.ARRAY_BUFFER, maxOverlayVerts*2*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(phongProg)
	r.uModel = gl.GetUniformLocation(phongProg, gl.Str("model\x00"))
	r.uView = gl.GetUniformLocation(phongProg, gl.Str("view\x00"))
	r.uProj = gl.GetUniformLocation(phongProg, gl.Str("projection\x00"))
	r.uLightPos = gl.GetUniformLocation(phongProg, gl.Str("lightPos\x00"))
	r.uLightCol = gl.GetUniformLocation(phongProg, gl.Str("lightColor\x00"))
	r.uViewPos = gl.GetUniformLocation(phongProg, gl.Str("viewPos\x00"))
	r.uColor = gl.GetUniformLocation(phongProg, gl.Str("objectColor\x00"))
	setVec3(r.uLightPos, lightPos)
	setVec3(r.uLightCol, lightColor)

	gl.UseProgram(overlayProg)
	r.ovUProj = gl.GetUniformLocation(overlayProg, gl.Str("projection\x00"))
	r.ovUColor = gl.GetUniformLocation(overlayProg, gl.Str("objectColor\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

// uploadMesh creates a VAO for interleaved position(3)+normal(3) vertices.
func uploadMesh(verts []float32) mesh {
	var m mesh
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	m.count = int32(len(verts) / 6)
	return m
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.ground.vbo, r.box.vbo, r.overlayVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.ground.vao, r.box.vao, r.overlayVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.phongProg, r.overlayProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func setVec3(loc int32, v mgl64.Vec3) {
	gl.Uniform3f(loc, float32(v[0]), float32(v[1]), float32(v[2]))
}

func setMat4(loc int32, m mgl64.Mat4) {
	f := mat32(m)
	gl.UniformMatrix4fv(loc, 1, false, &f[0])
}

// DrawScene renders the ground plane and the car with its front wheels.
func (r *Renderer) DrawScene(s *game.Session, cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := mgl64.Perspective(mgl64.DegToRad(45), float64(fbW)/float64(fbH), 0.1, 100)

	gl.UseProgram(r.phongProg)
	setMat4(r.uProj, proj)
	setMat4(r.uView, cam.View(s.Motion))
	setVec3(r.uViewPos, cam.EyePos(s.Motion))

	r.drawMesh(r.ground, groundModel, groundColor)
	r.drawMesh(r.box, s.Motion.Model().Mul4(bodyShape), s.Motion.Color())
	for _, w := range s.Wheels {
		r.drawMesh(r.box, w.Model().Mul4(wheelShape), wheelColor)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawMesh(m mesh, model mgl64.Mat4, color mgl64.Vec3) {
	setMat4(r.uModel, model)
	setVec3(r.uColor, color)
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

// DrawDashboard draws the rpm gauge on top of the scene.
func (r *Renderer) DrawDashboard(g *dashboard.Gauge, fbW, fbH int) {
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.overlayProg)
	setMat4(r.ovUProj, mgl64.Ortho2D(0, float64(fbW), float64(fbH), 0))
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)

	arc, needle := g.Geometry(fbH)
	r.drawLines(arc, gl.LINE_STRIP, gaugeColor)
	r.drawLines(needle, gl.LINES, needleColor)

	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) drawLines(pts []float32, mode uint32, color mgl64.Vec3) {
	n := len(pts) / 2
	if n == 0 {
		return
	}
	if n > maxOverlayVerts {
		n = maxOverlayVerts
	}
	r.overlayBuffer = append(r.overlayBuffer[:0], pts[:2*n]...)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, 2*n*4, gl.Ptr(&r.overlayBuffer[0]))
	setVec3(r.ovUColor, color)
	gl.DrawArrays(mode, 0, int32(n))
}

// planeVertices is a unit quad in the XZ plane facing +Y.
func planeVertices() []float32 {
	return []float32{
		-0.5, 0, -0.5, 0, 1, 0,
		0.5, 0, 0.5, 0, 1, 0,
		0.5, 0, -0.5, 0, 1, 0,
		-0.5, 0, -0.5, 0, 1, 0,
		-0.5, 0, 0.5, 0, 1, 0,
		0.5, 0, 0.5, 0, 1, 0,
	}
}

// boxVertices is a unit cube centred on the origin, two triangles per face.
func boxVertices() []float32 {
	faces := []struct {
		n    vec3f
		u, v vec3f
	}{
		{vec3f{1, 0, 0}, vec3f{0, 0, -1}, vec3f{0, 1, 0}},
		{vec3f{-1, 0, 0}, vec3f{0, 0, 1}, vec3f{0, 1, 0}},
		{vec3f{0, 1, 0}, vec3f{1, 0, 0}, vec3f{0, 0, -1}},
		{vec3f{0, -1, 0}, vec3f{1, 0, 0}, vec3f{0, 0, 1}},
		{vec3f{0, 0, 1}, vec3f{1, 0, 0}, vec3f{0, 1, 0}},
		{vec3f{0, 0, -1}, vec3f{-1, 0, 0}, vec3f{0, 1, 0}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	out := make([]float32, 0, 6*6*6)
	for _, f := range faces {
		for _, c := range corners {
			for i := 0; i < 3; i++ {
				out = append(out, 0.5*(f.n[i]+c[0]*f.u[i]+c[1]*f.v[i]))
			}
			out = append(out, f.n[0], f.n[1], f.n[2])
		}
	}
	return out
}

type vec3f [3]float32
