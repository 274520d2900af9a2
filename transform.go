package orbitcam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// toMat4f narrows a double precision matrix for the renderer.
func toMat4f(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// rigidInverse inverts a rotation plus translation matrix. The rotation block
// is orthonormal so its inverse is its transpose.
func rigidInverse(m mgl64.Mat4) mgl64.Mat4 {
	rt := m.Mat3().Transpose()
	t := rt.Mul3x1(mgl64.Vec3{m[12], m[13], m[14]})

	return mgl64.Mat4{
		rt[0], rt[1], rt[2], 0,
		rt[3], rt[4], rt[5], 0,
		rt[6], rt[7], rt[8], 0,
		-t[0], -t[1], -t[2], 1,
	}
}

// TransformPoint applies m to a point, including its translation.
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, m)
}

// TransformDirection applies only the rotation part of m to v.
func TransformDirection(m mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformNormal(v, m)
}

// CameraPosition reads the world-space camera position out of a transform
// returned by CameraTransform.
func CameraPosition(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}

// CameraForward reads the view direction out of a transform returned by
// CameraTransform.
func CameraForward(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(2).Vec3().Mul(-1)
}
