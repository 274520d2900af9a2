package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is a convex polygon wound counter-clockwise when seen from the side
// its normal points to.
type Face struct {
	Points []mgl64.Vec3
	Col    color.RGBA
}

func NewFace(col color.RGBA, pnts ...mgl64.Vec3) Face {
	return Face{
		Points: pnts,
		Col:    col,
	}
}

func (f Face) Normal() mgl64.Vec3 {
	if len(f.Points) < 3 {
		return mgl64.Vec3{0, 0, 1}
	}

	u := f.Points[1].Sub(f.Points[0])
	v := f.Points[2].Sub(f.Points[1])
	n := u.Cross(v)
	if n.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

func (f Face) MidPoint() mgl64.Vec3 {
	return midPoint(f.Points)
}

func midPoint(points []mgl64.Vec3) mgl64.Vec3 {
	if len(points) == 0 {
		return mgl64.Vec3{}
	}

	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}
