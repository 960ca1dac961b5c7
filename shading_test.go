package stlview

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestShadeColor(t *testing.T) {
	testCases := []struct {
		name   string
		base   color.RGBA
		point  mgl64.Vec3
		normal mgl64.Vec3
		want   color.RGBA
	}{
		{
			name:   "Head-on lighting, in spotlight center",
			base:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
			point:  mgl64.Vec3{0, 0, 10},
			normal: mgl64.Vec3{0, 0, 1},
			want:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		},
		{
			name:   "Facing away from light",
			base:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
			point:  mgl64.Vec3{0, 0, 10},
			normal: mgl64.Vec3{0, 0, -1},
			want:   color.RGBA{R: 116, G: 116, B: 116, A: 255}, // Only ambient light
		},
		{
			name:   "90 degrees to light, diffuse should be 0",
			base:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
			point:  mgl64.Vec3{10, 0, 10},
			normal: mgl64.Vec3{1, 0, 0},
			want:   color.RGBA{R: 116, G: 116, B: 116, A: 255},
		},
		{
			name:   "45 degrees to light, off spotlight center",
			base:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
			point:  mgl64.Vec3{10, 0, 10},
			normal: mgl64.Vec3{0.70710678118, 0, 0.70710678118},
			want:   color.RGBA{R: 117, G: 117, B: 117, A: 255},
		},
		{
			name:   "Color clamping low",
			base:   color.RGBA{R: 10, G: 10, B: 10, A: 255},
			point:  mgl64.Vec3{0, 0, 10},
			normal: mgl64.Vec3{0, 0, -1},
			want:   color.RGBA{R: 7, G: 7, B: 7, A: 255},
		},
		{
			name:   "Light blue keeps its alpha",
			base:   color.RGBA{R: 173, G: 216, B: 230, A: 128},
			point:  mgl64.Vec3{0, 0, 10},
			normal: mgl64.Vec3{0, 0, 1},
			want:   color.RGBA{R: 173, G: 216, B: 230, A: 128},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shadeColor(tc.point, tc.normal, tc.base); got != tc.want {
				t.Errorf("shadeColor() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrientAway(t *testing.T) {
	point := mgl64.Vec3{0, 0, 10}

	n, facing := orientAway(point, mgl64.Vec3{0, 0, -1})
	if !facing || n != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("orientAway(front face) = %v, %v", n, facing)
	}
	n, facing = orientAway(point, mgl64.Vec3{0, 0, 1})
	if facing || n != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("orientAway(back face) = %v, %v", n, facing)
	}

	// both sides of a face shade the same
	front := shadeColor(point, mustOrient(point, mgl64.Vec3{0, 0.6, -0.8}), LightBlue)
	back := shadeColor(point, mustOrient(point, mgl64.Vec3{0, -0.6, 0.8}), LightBlue)
	if front != back {
		t.Errorf("front %v and back %v shade differently", front, back)
	}
}

func mustOrient(point, normal mgl64.Vec3) mgl64.Vec3 {
	n, _ := orientAway(point, normal)
	return n
}
