package scene

import "github.com/go-gl/mathgl/mgl64"

// The camera looks down -Z, so a view space point is in front of the near
// plane when z <= -near.

func inFront(p mgl64.Vec3, near float64) bool {
	return p.Z() <= -near
}

// clipPolygonAgainstNearPlane keeps the part of a convex view space polygon
// that lies in front of the near plane.
func clipPolygonAgainstNearPlane(points []mgl64.Vec3, near float64) []mgl64.Vec3 {
	if len(points) == 0 {
		return nil
	}

	out := make([]mgl64.Vec3, 0, len(points)+1)
	prev := points[len(points)-1]
	for _, cur := range points {
		if inFront(cur, near) {
			if !inFront(prev, near) {
				out = append(out, intersectNearPlane(prev, cur, near))
			}
			out = append(out, cur)
		} else if inFront(prev, near) {
			out = append(out, intersectNearPlane(prev, cur, near))
		}
		prev = cur
	}
	return out
}

// intersectNearPlane returns where the segment p1-p2 crosses the near plane.
// A segment parallel to the plane returns p1.
func intersectNearPlane(p1, p2 mgl64.Vec3, near float64) mgl64.Vec3 {
	dz := p2.Z() - p1.Z()
	if dz == 0 {
		return p1
	}
	t := (-near - p1.Z()) / dz
	return p1.Add(p2.Sub(p1).Mul(t))
}

// clipSegment trims a view space segment to the near plane. ok is false when
// the whole segment is behind it.
func clipSegment(a, b mgl64.Vec3, near float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	aIn, bIn := inFront(a, near), inFront(b, near)
	switch {
	case aIn && bIn:
		return a, b, true
	case aIn:
		return a, intersectNearPlane(a, b, near), true
	case bIn:
		return intersectNearPlane(a, b, near), b, true
	default:
		return a, b, false
	}
}
