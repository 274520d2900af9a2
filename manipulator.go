package orbitcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultCenterOfInterest = 10.0
	DefaultFovX             = 65.0
	DefaultDollySpeed       = 5.0
	DefaultRotateSpeed      = 7.0

	// MinDistance is the closest the camera may get to its target.
	MinDistance = 0.01
	// DollyStep scales a dolly delta into a fraction of the current distance.
	DollyStep = 0.01
	// MaxPitch keeps the camera off the poles so the up axis never flips.
	MaxPitch = 89 * math.Pi / 180
)

// CameraManipulator turns pan, dolly and orbit gestures into an orbit camera
// transform. Rotation holds pitch, yaw and roll in radians and translation is
// the world-space target the camera orbits.
type CameraManipulator struct {
	rotation         mgl64.Vec3
	translation      mgl64.Vec3
	centerOfInterest float64
	fovx             float64
	width            int
	height           int
}

func New() CameraManipulator {
	return CameraManipulator{
		centerOfInterest: DefaultCenterOfInterest,
		fovx:             DefaultFovX,
	}
}

func NewWithViewport(width, height int) CameraManipulator {
	c := New()
	c.SetViewport(width, height)
	return c
}

func (c *CameraManipulator) SetViewport(w, h int) {
	c.width = w
	c.height = h
}

// LookAt resets the orbit state so the camera sits at eye looking at at.
func (c *CameraManipulator) LookAt(eye, at mgl64.Vec3) {
	dir := at.Sub(eye)
	dist := dir.Len()

	c.translation = at
	c.centerOfInterest = math.Max(dist, MinDistance)
	if dist == 0 {
		return
	}

	f := dir.Mul(1 / dist)
	pitch := math.Asin(mgl64.Clamp(f.Y(), -1, 1))
	yaw := math.Atan2(-f.X(), -f.Z())
	c.rotation = mgl64.Vec3{clampPitch(pitch), yaw, 0}
}

// Track pans camera and target together. A drag of one pixel moves the
// target by one pixel's worth of world space at the target's depth, so the
// scene follows the pointer.
func (c *CameraManipulator) Track(delta mgl64.Vec2) {
	s := c.pixelSize()
	offset := c.Right().Mul(delta.X() * s).Add(c.Up().Mul(delta.Y() * s))
	c.translation = c.translation.Sub(offset)
}

func (c *CameraManipulator) Dolly(delta float64) {
	c.DollyWithSpeed(delta, DefaultDollySpeed)
}

// DollyWithSpeed moves the camera along its view axis. Positive delta moves it
// closer to the target.
func (c *CameraManipulator) DollyWithSpeed(delta, dollySpeed float64) {
	c.centerOfInterest -= delta * dollySpeed * c.centerOfInterest * DollyStep
	if c.centerOfInterest < MinDistance {
		c.centerOfInterest = MinDistance
	}
}

func (c *CameraManipulator) Rotate(delta mgl64.Vec2) {
	c.RotateWithSpeed(delta, DefaultRotateSpeed)
}

// RotateWithSpeed orbits the camera around its target. A drag across the whole
// viewport turns the camera by rotateSpeed radians.
func (c *CameraManipulator) RotateWithSpeed(delta mgl64.Vec2, rotateSpeed float64) {
	yaw := c.rotation.Y() + delta.X()*rotateSpeed/float64(extent(c.width))
	pitch := c.rotation.X() - delta.Y()*rotateSpeed/float64(extent(c.height))
	c.rotation = mgl64.Vec3{clampPitch(pitch), yaw, c.rotation.Z()}
}

// CameraTransform returns the camera-to-world matrix.
func (c *CameraManipulator) CameraTransform() mgl32.Mat4 {
	return toMat4f(c.CameraTransform64())
}

func (c *CameraManipulator) CameraTransform64() mgl64.Mat4 {
	return mgl64.Translate3D(c.translation.X(), c.translation.Y(), c.translation.Z()).
		Mul4(c.orientation()).
		Mul4(mgl64.Translate3D(0, 0, c.centerOfInterest))
}

// ViewMatrix returns the world-to-camera matrix.
func (c *CameraManipulator) ViewMatrix() mgl64.Mat4 {
	return rigidInverse(c.CameraTransform64())
}

func (c *CameraManipulator) Position() mgl64.Vec3 {
	return c.translation.Sub(c.Forward().Mul(c.centerOfInterest))
}

func (c *CameraManipulator) Target() mgl64.Vec3 {
	return c.translation
}

func (c *CameraManipulator) Forward() mgl64.Vec3 {
	return c.orientation().Mul4x1(mgl64.Vec4{0, 0, -1, 0}).Vec3()
}

func (c *CameraManipulator) Up() mgl64.Vec3 {
	return c.orientation().Mul4x1(mgl64.Vec4{0, 1, 0, 0}).Vec3()
}

func (c *CameraManipulator) Right() mgl64.Vec3 {
	return c.orientation().Mul4x1(mgl64.Vec4{1, 0, 0, 0}).Vec3()
}

func (c *CameraManipulator) Distance() float64 {
	return c.centerOfInterest
}

func (c *CameraManipulator) Rotation() mgl64.Vec3 {
	return c.rotation
}

// FovX returns the horizontal field of view in degrees.
func (c *CameraManipulator) FovX() float64 {
	return c.fovx
}

func (c *CameraManipulator) Viewport() (int, int) {
	return c.width, c.height
}

// Aspect returns width/height, or 0 while the viewport has no height.
func (c *CameraManipulator) Aspect() float64 {
	if c.height == 0 {
		return 0
	}
	return float64(c.width) / float64(c.height)
}

// FovY returns the vertical field of view in radians implied by fovx and the
// viewport aspect.
func (c *CameraManipulator) FovY() float64 {
	aspect := c.Aspect()
	if aspect == 0 {
		return 0
	}
	return 2 * math.Atan(math.Tan(degreesToRadians(c.fovx)/2)/aspect)
}

// Projection returns a perspective matrix for the current viewport. It is the
// identity until the viewport has both dimensions set.
func (c *CameraManipulator) Projection(near, far float64) mgl64.Mat4 {
	aspect := c.Aspect()
	if aspect == 0 {
		return mgl64.Ident4()
	}
	return mgl64.Perspective(c.FovY(), aspect, near, far)
}

func (c *CameraManipulator) orientation() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(c.rotation.Y()).
		Mul4(mgl64.HomogRotate3DX(c.rotation.X())).
		Mul4(mgl64.HomogRotate3DZ(c.rotation.Z()))
}

// pixelSize is the world-space width of one viewport pixel at the target.
func (c *CameraManipulator) pixelSize() float64 {
	halfWidth := c.centerOfInterest * math.Tan(degreesToRadians(c.fovx)/2)
	return 2 * halfWidth / float64(extent(c.width))
}

func clampPitch(pitch float64) float64 {
	return mgl64.Clamp(pitch, -MaxPitch, MaxPitch)
}

func extent(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func degreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
