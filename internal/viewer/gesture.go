package viewer

import "github.com/go-gl/mathgl/mgl64"

type dragMode int

const (
	dragNone dragMode = iota
	dragRotate
	dragTrack
	dragDolly
)

func (m dragMode) String() string {
	switch m {
	case dragRotate:
		return "rotate"
	case dragTrack:
		return "track"
	case dragDolly:
		return "dolly"
	default:
		return "none"
	}
}

// Dolly delta per pixel of vertical middle-button drag.
const dollyDragScale = 0.1

// The manipulator takes +y up; ebiten cursor coordinates grow downward.

// rotateDelta turns the scene with the pointer: dragging right swings the
// camera left around the target, dragging down lifts it over the target.
func rotateDelta(dx, dy int) mgl64.Vec2 {
	return mgl64.Vec2{-float64(dx), float64(dy)}
}

// trackDelta keeps the scene under the pointer.
func trackDelta(dx, dy int) mgl64.Vec2 {
	return mgl64.Vec2{float64(dx), -float64(dy)}
}

// dollyDelta zooms in when dragging up.
func dollyDelta(dy int) float64 {
	return -float64(dy) * dollyDragScale
}
