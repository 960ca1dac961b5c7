package stlview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// fieldOfView is the vertical viewing angle.
const fieldOfView = 30 * math.Pi / 180

// ScreenPoint is a projected vertex in pixels.
type ScreenPoint struct {
	X, Y float32
}

// ToCameraSpace applies a view matrix from Camera.GetCameraMatrix and returns
// x right, y up and z as depth in front of the eye.
func ToCameraSpace(view mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	v := view.Mul4x1(p.Vec4(1))
	return mgl64.Vec3{v[0], v[1], -v[2]}
}

// ToCameraDirection rotates a direction into the same space as ToCameraSpace.
func ToCameraDirection(view mgl64.Mat4, d mgl64.Vec3) mgl64.Vec3 {
	v := view.Mul4x1(d.Vec4(0))
	return mgl64.Vec3{v[0], v[1], -v[2]}
}

func focalLength(height float64) float64 {
	return (height / 2) / math.Tan(fieldOfView/2)
}

func ConvertToScreenX(width, height, x, z float64) float32 {
	return float32(width/2 + focalLength(height)*x/z)
}

func ConvertToScreenY(width, height, y, z float64) float32 {
	return float32(height/2 - focalLength(height)*y/z)
}

// ConvertFromScreen recovers camera space x, y for a screen position at a
// known depth.
func ConvertFromScreen(width, height, screenX, screenY, z float64) (float64, float64) {
	f := focalLength(height)
	return (screenX - width/2) * z / f, (height/2 - screenY) * z / f
}

// intersectNearPlane returns where segment p1-p2 crosses the plane z = near.
// A segment parallel to the plane yields p1.
func intersectNearPlane(p1, p2 mgl64.Vec3, near float64) mgl64.Vec3 {
	dz := p2[2] - p1[2]
	if dz == 0 {
		return p1
	}
	t := (near - p1[2]) / dz
	return p1.Add(p2.Sub(p1).Mul(t))
}

// clipPolygonAgainstNearPlane keeps the part of a polygon with z >= near.
func clipPolygonAgainstNearPlane(points []mgl64.Vec3, near float64) []mgl64.Vec3 {
	clipped := make([]mgl64.Vec3, 0, len(points)+1)
	for i, current := range points {
		prev := points[(i+len(points)-1)%len(points)]
		currentIn := current[2] >= near
		prevIn := prev[2] >= near
		switch {
		case currentIn && !prevIn:
			clipped = append(clipped, intersectNearPlane(prev, current, near), current)
		case currentIn:
			clipped = append(clipped, current)
		case prevIn:
			clipped = append(clipped, intersectNearPlane(prev, current, near))
		}
	}
	return clipped
}

// clipPolygon clips a projected polygon to the screen rectangle, allowing one
// pixel past the right and bottom edges.
func clipPolygon(points []ScreenPoint, screenWidth, screenHeight float32) []ScreenPoint {
	right := float64(screenWidth) + 1
	bottom := float64(screenHeight) + 1

	points = clipScreenEdge(points, func(p ScreenPoint) float64 { return float64(p.X) }, 0, true)
	points = clipScreenEdge(points, func(p ScreenPoint) float64 { return float64(p.X) }, right, false)
	points = clipScreenEdge(points, func(p ScreenPoint) float64 { return float64(p.Y) }, 0, true)
	points = clipScreenEdge(points, func(p ScreenPoint) float64 { return float64(p.Y) }, bottom, false)
	return points
}

// clipScreenEdge is one Sutherland-Hodgman pass against an axis aligned edge.
// keepAbove selects the side where coord(p) >= edge.
func clipScreenEdge(points []ScreenPoint, coord func(ScreenPoint) float64, edge float64, keepAbove bool) []ScreenPoint {
	inside := func(p ScreenPoint) bool {
		if keepAbove {
			return coord(p) >= edge
		}
		return coord(p) <= edge
	}
	cross := func(a, b ScreenPoint) ScreenPoint {
		t := (edge - coord(a)) / (coord(b) - coord(a))
		return ScreenPoint{
			X: float32(float64(a.X) + t*(float64(b.X)-float64(a.X))),
			Y: float32(float64(a.Y) + t*(float64(b.Y)-float64(a.Y))),
		}
	}

	clipped := make([]ScreenPoint, 0, len(points)+1)
	for i, current := range points {
		prev := points[(i+len(points)-1)%len(points)]
		currentIn, prevIn := inside(current), inside(prev)
		switch {
		case currentIn && !prevIn:
			clipped = append(clipped, cross(prev, current), current)
		case currentIn:
			clipped = append(clipped, current)
		case prevIn:
			clipped = append(clipped, cross(prev, current))
		}
	}
	return clipped
}
