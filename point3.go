package stlview

import "github.com/go-gl/mathgl/mgl64"

// Point is a vertex position read from a mesh file.
type Point struct {
	X float64
	Y float64
	Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Triangle is one facet of a triangle soup, vertices in file order.
type Triangle [3]Point
