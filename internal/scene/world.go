package scene

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is a shaded face in screen pixels.
type Polygon struct {
	X, Y  []float32
	Col   color.RGBA
	Depth float64
}

// Line is a segment in screen pixels.
type Line struct {
	X0, Y0, X1, Y1 float32
	Col            color.RGBA
}

// Frame is everything to paint for one view. Polygons are ordered back to
// front and should be painted after the lines.
type Frame struct {
	Polygons []Polygon
	Lines    []Line
}

type object struct {
	mesh   *Mesh
	pos    mgl64.Vec3
	hidden bool
}

// World places meshes in world space and turns them into screen geometry for a
// camera.
type World struct {
	objects []object
	near    float64
}

func NewWorld(near float64) *World {
	return &World{
		near: near,
	}
}

// AddObject places m at pos and returns its index.
func (w *World) AddObject(m *Mesh, pos mgl64.Vec3) int {
	w.objects = append(w.objects, object{mesh: m, pos: pos})
	return len(w.objects) - 1
}

func (w *World) SetHidden(index int, hidden bool) {
	if index < 0 || index >= len(w.objects) {
		return
	}
	w.objects[index].hidden = hidden
}

func (w *World) Hidden(index int) bool {
	if index < 0 || index >= len(w.objects) {
		return true
	}
	return w.objects[index].hidden
}

func (w *World) ObjectCount() int {
	return len(w.objects)
}

// Render transforms every visible object with view (world to camera) and proj
// and returns the result in pixels of a width x height viewport.
func (w *World) Render(view, proj mgl64.Mat4, width, height int) Frame {
	var frame Frame
	vw, vh := float64(width), float64(height)

	for _, obj := range w.objects {
		if obj.hidden {
			continue
		}
		objToCam := view.Mul4(mgl64.Translate3D(obj.pos.X(), obj.pos.Y(), obj.pos.Z()))

		for _, seg := range obj.mesh.Lines {
			a := mgl64.TransformCoordinate(seg.A, objToCam)
			b := mgl64.TransformCoordinate(seg.B, objToCam)
			a, b, ok := clipSegment(a, b, w.near)
			if !ok {
				continue
			}
			x0, y0 := projectToScreen(a, proj, vw, vh)
			x1, y1 := projectToScreen(b, proj, vw, vh)
			frame.Lines = append(frame.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Col: seg.Col})
		}

		for _, face := range obj.mesh.Faces {
			if poly, ok := w.renderFace(face, objToCam, proj, vw, vh); ok {
				frame.Polygons = append(frame.Polygons, poly)
			}
		}
	}

	// Painter's algorithm, furthest first.
	sort.SliceStable(frame.Polygons, func(i, j int) bool {
		return frame.Polygons[i].Depth > frame.Polygons[j].Depth
	})
	return frame
}

func (w *World) renderFace(face Face, objToCam, proj mgl64.Mat4, vw, vh float64) (Polygon, bool) {
	if len(face.Points) < 3 {
		return Polygon{}, false
	}

	points := make([]mgl64.Vec3, len(face.Points))
	for i, p := range face.Points {
		points[i] = mgl64.TransformCoordinate(p, objToCam)
	}
	normal := mgl64.TransformNormal(face.Normal(), objToCam)

	// The camera sits at the origin, so a face is visible when its normal
	// points back toward it.
	if normal.Dot(points[0]) >= 0 {
		return Polygon{}, false
	}

	points = clipPolygonAgainstNearPlane(points, w.near)
	if len(points) < 3 {
		return Polygon{}, false
	}

	mid := midPoint(points)
	poly := Polygon{
		X:     make([]float32, len(points)),
		Y:     make([]float32, len(points)),
		Col:   calcColor(mid, normal, face.Col),
		Depth: mid.Len(),
	}
	for i, p := range points {
		poly.X[i], poly.Y[i] = projectToScreen(p, proj, vw, vh)
	}
	return poly, true
}

// projectToScreen maps a view space point in front of the camera to pixels,
// with y growing downward.
func projectToScreen(p mgl64.Vec3, proj mgl64.Mat4, width, height float64) (float32, float32) {
	clip := proj.Mul4x1(p.Vec4(1))
	if clip.W() == 0 {
		return float32(width / 2), float32(height / 2)
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return float32((ndcX + 1) * 0.5 * width), float32((1 - ndcY) * 0.5 * height)
}
