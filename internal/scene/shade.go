package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// The minimum brightness for any surface.
	ambientLight = 0.65
	// Higher values give a tighter spotlight around the view axis.
	spotlightConePower = 10.0
	// Light left over for the spotlight once ambient is added.
	spotlightLightAmount = 1.0 - ambientLight
	minChannel           = 7
)

// calcColor shades a face with a headlight at the camera. midPoint and normal
// are in view space.
func calcColor(midPoint, normal mgl64.Vec3, base color.RGBA) color.RGBA {
	diffuseFactor := normal.Z()
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	spotlightFactor := 1.0
	if length := midPoint.Len(); length > 0 {
		cosAngle := -midPoint.Z() / length
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	}

	brightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount

	// Full brightness leaves the color alone; darkness takes up to 240 off
	// each channel.
	c := 240 - int(brightness*240)

	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, minChannel, 255)),
		G: uint8(clamp(int(base.G)-c, minChannel, 255)),
		B: uint8(clamp(int(base.B)-c, minChannel, 255)),
		A: base.A,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
