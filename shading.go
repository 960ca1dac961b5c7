package stlview

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ambientLight         = 0.65
	spotlightConePower   = 10.0
	spotlightLightAmount = 1.0 - ambientLight
	minChannel           = 7
)

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// shadeColor darkens base for a face at point (camera space) whose normal
// points away from the viewer. A spotlight sits on the eye looking down the
// view axis.
func shadeColor(point, normal mgl64.Vec3, base color.RGBA) color.RGBA {
	diffuseFactor := normal[2]
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	var spotlightFactor float64
	if length := point.Len(); length > 0 {
		cosAngle := point[2] / length
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	} else {
		spotlightFactor = 1.0
	}

	finalBrightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount

	// brightness 1 leaves the colour alone, 0 subtracts 240
	c := 240 - int(finalBrightness*240)
	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, minChannel, 255)),
		G: uint8(clamp(int(base.G)-c, minChannel, 255)),
		B: uint8(clamp(int(base.B)-c, minChannel, 255)),
		A: base.A,
	}
}

// orientAway flips a camera space normal so it points away from the eye,
// which is what shadeColor expects. facing reports whether the original
// normal pointed at the eye.
func orientAway(point, normal mgl64.Vec3) (oriented mgl64.Vec3, facing bool) {
	if normal.Dot(point) < 0 {
		return normal.Mul(-1), true
	}
	return normal, false
}
