package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Segment is a single line in object space.
type Segment struct {
	A, B mgl64.Vec3
	Col  color.RGBA
}

// Mesh holds the faces and lines of one object in its own coordinates.
type Mesh struct {
	Faces []Face
	Lines []Segment
}

// CubeColors are the face colors used by NewCube, in +Z, -Z, +X, -X, +Y, -Y
// order.
var CubeColors = [6]color.RGBA{
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
}

// NewCube builds an axis aligned cube centred on the origin with sides of
// length 2*s.
func NewCube(s float64, colors [6]color.RGBA) *Mesh {
	m := &Mesh{}
	m.Faces = []Face{
		NewFace(colors[0], mgl64.Vec3{-s, -s, s}, mgl64.Vec3{s, -s, s}, mgl64.Vec3{s, s, s}, mgl64.Vec3{-s, s, s}),
		NewFace(colors[1], mgl64.Vec3{s, -s, -s}, mgl64.Vec3{-s, -s, -s}, mgl64.Vec3{-s, s, -s}, mgl64.Vec3{s, s, -s}),
		NewFace(colors[2], mgl64.Vec3{s, -s, s}, mgl64.Vec3{s, -s, -s}, mgl64.Vec3{s, s, -s}, mgl64.Vec3{s, s, s}),
		NewFace(colors[3], mgl64.Vec3{-s, -s, -s}, mgl64.Vec3{-s, -s, s}, mgl64.Vec3{-s, s, s}, mgl64.Vec3{-s, s, -s}),
		NewFace(colors[4], mgl64.Vec3{-s, s, s}, mgl64.Vec3{s, s, s}, mgl64.Vec3{s, s, -s}, mgl64.Vec3{-s, s, -s}),
		NewFace(colors[5], mgl64.Vec3{-s, -s, -s}, mgl64.Vec3{s, -s, -s}, mgl64.Vec3{s, -s, s}, mgl64.Vec3{-s, -s, s}),
	}
	return m
}

// NewGrid builds a square grid of lines on the y=0 plane reaching halfExtent
// from the origin in x and z.
func NewGrid(halfExtent, spacing float64, col color.RGBA) *Mesh {
	m := &Mesh{}
	if spacing <= 0 || halfExtent <= 0 {
		return m
	}

	n := int(halfExtent / spacing)
	for i := -n; i <= n; i++ {
		d := float64(i) * spacing
		m.Lines = append(m.Lines,
			Segment{A: mgl64.Vec3{d, 0, -halfExtent}, B: mgl64.Vec3{d, 0, halfExtent}, Col: col},
			Segment{A: mgl64.Vec3{-halfExtent, 0, d}, B: mgl64.Vec3{halfExtent, 0, d}, Col: col},
		)
	}
	return m
}

func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Faces: make([]Face, len(m.Faces)),
		Lines: make([]Segment, len(m.Lines)),
	}
	for i, f := range m.Faces {
		c.Faces[i] = Face{
			Points: append([]mgl64.Vec3(nil), f.Points...),
			Col:    f.Col,
		}
	}
	copy(c.Lines, m.Lines)
	return c
}
