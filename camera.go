package stlview

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	rotateSpeed = 0.01 // radians per dragged pixel
	zoomStep    = 0.9  // distance factor per wheel notch
)

type cameraPreset struct {
	eyeDir mgl64.Vec3 // from focal point towards the eye
	up     mgl64.Vec3
}

var cameraPresets = map[string]cameraPreset{
	"iso": {eyeDir: mgl64.Vec3{1, 1, 1}, up: mgl64.Vec3{0, 0, 1}},
	"xy":  {eyeDir: mgl64.Vec3{0, 0, 1}, up: mgl64.Vec3{0, 1, 0}},
	"yx":  {eyeDir: mgl64.Vec3{0, 0, -1}, up: mgl64.Vec3{1, 0, 0}},
	"xz":  {eyeDir: mgl64.Vec3{0, -1, 0}, up: mgl64.Vec3{0, 0, 1}},
	"zx":  {eyeDir: mgl64.Vec3{0, 1, 0}, up: mgl64.Vec3{1, 0, 0}},
	"yz":  {eyeDir: mgl64.Vec3{1, 0, 0}, up: mgl64.Vec3{0, 0, 1}},
	"zy":  {eyeDir: mgl64.Vec3{-1, 0, 0}, up: mgl64.Vec3{0, 1, 0}},
}

// CameraPresets lists the accepted preset names.
func CameraPresets() []string {
	return []string{"iso", "xy", "yx", "xz", "zx", "yz", "zy"}
}

// Camera is a trackball camera circling a focal point. The orientation maps
// the camera's local axes (right, up, back) into world space.
type Camera struct {
	target      mgl64.Vec3
	orientation mgl64.Quat
	distance    float64
	minDistance float64
	maxDistance float64

	homeTarget      mgl64.Vec3
	homeOrientation mgl64.Quat
	homeDistance    float64
}

// NewCamera frames a bounding sphere of the given radius around target from
// the named preset direction.
func NewCamera(preset string, target mgl64.Vec3, radius float64) (*Camera, error) {
	p, ok := cameraPresets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown camera preset %q", preset)
	}
	if radius <= 0 {
		radius = 1
	}
	distance := radius / math.Sin(fieldOfView/2)

	c := &Camera{
		target:      target,
		orientation: orientationFromView(p.eyeDir, p.up),
		distance:    distance,
		minDistance: radius * 0.05,
		maxDistance: distance * 50,
	}
	c.homeTarget = c.target
	c.homeOrientation = c.orientation
	c.homeDistance = c.distance
	return c, nil
}

func orientationFromView(eyeDir, up mgl64.Vec3) mgl64.Quat {
	back := eyeDir.Normalize()
	right := up.Cross(back).Normalize()
	trueUp := back.Cross(right)
	m := mgl64.Mat4FromCols(right.Vec4(0), trueUp.Vec4(0), back.Vec4(0), mgl64.Vec4{0, 0, 0, 1})
	return mgl64.Mat4ToQuat(m).Normalize()
}

func (c *Camera) Right() mgl64.Vec3 {
	return c.orientation.Rotate(mgl64.Vec3{1, 0, 0})
}

func (c *Camera) Up() mgl64.Vec3 {
	return c.orientation.Rotate(mgl64.Vec3{0, 1, 0})
}

// Forward is the viewing direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.orientation.Rotate(mgl64.Vec3{0, 0, -1})
}

func (c *Camera) Target() mgl64.Vec3 {
	return c.target
}

func (c *Camera) Distance() float64 {
	return c.distance
}

func (c *Camera) GetPosition() mgl64.Vec3 {
	return c.target.Sub(c.Forward().Mul(c.distance))
}

// NearPlane is the clipping depth in front of the eye.
func (c *Camera) NearPlane() float64 {
	return c.distance * 0.01
}

// GetCameraMatrix returns the world to camera matrix. Camera space from this
// matrix looks down -Z; ToCameraSpace flips it to positive depth.
func (c *Camera) GetCameraMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.GetPosition(), c.target, c.Up())
}

// Rotate turns the camera about its own up and right axes for a drag of
// dx, dy pixels. The axes move with the camera so rotation is unconstrained.
func (c *Camera) Rotate(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	yaw := mgl64.QuatRotate(-dx*rotateSpeed, c.Up())
	pitch := mgl64.QuatRotate(-dy*rotateSpeed, c.Right())
	c.orientation = yaw.Mul(pitch).Mul(c.orientation).Normalize()
}

// Pan slides the focal point in the view plane so that a point at the focal
// depth follows the cursor on a viewport of the given pixel height.
func (c *Camera) Pan(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	// offset at the focal depth of a cursor dx, dy away from the centre
	h := float64(viewportHeight)
	ox, oy := ConvertFromScreen(0, h, dx, h/2+dy, c.distance)
	c.target = c.target.Sub(c.Right().Mul(ox)).Sub(c.Up().Mul(oy))
}

// Zoom moves towards the focal point for positive notches.
func (c *Camera) Zoom(notches float64) {
	c.distance = mgl64.Clamp(c.distance*math.Pow(zoomStep, notches), c.minDistance, c.maxDistance)
}

func (c *Camera) Reset() {
	c.target = c.homeTarget
	c.orientation = c.homeOrientation
	c.distance = c.homeDistance
}
