package stlview

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// World holds the models on screen and the camera looking at them.
type World struct {
	objects []*Model
	objPos  []mgl64.Vec3
	camera  *Camera
}

func NewWorld() *World {
	return &World{}
}

func (w *World) AddObject(obj *Model, x, y, z float64) {
	w.objects = append(w.objects, obj)
	w.objPos = append(w.objPos, mgl64.Vec3{x, y, z})
}

func (w *World) AddCamera(c *Camera) {
	w.camera = c
}

func (w *World) Camera() *Camera {
	return w.camera
}

func (w *World) FaceCount() int {
	total := 0
	for _, obj := range w.objects {
		total += obj.FaceCount()
	}
	return total
}

// PaintObjects draws objects farthest first so nearer ones overwrite them.
func (w *World) PaintObjects(batcher *PolygonBatcher, xsize, ysize int) {
	if w.camera == nil {
		return
	}
	eye := w.camera.GetPosition()
	view := w.camera.GetCameraMatrix()

	sortedIndices := make([]int, len(w.objects))
	for i := range sortedIndices {
		sortedIndices[i] = i
	}
	sort.Slice(sortedIndices, func(i, j int) bool {
		return w.objPos[sortedIndices[i]].Sub(eye).Len() > w.objPos[sortedIndices[j]].Sub(eye).Len()
	})

	for _, i := range sortedIndices {
		obj := w.objects[i]
		objToCam := view.Mul4(mgl64.Translate3D(w.objPos[i][0], w.objPos[i][1], w.objPos[i][2]))
		obj.ApplyMatrixTemp(objToCam)
		obj.PaintObject(batcher, float32(xsize), float32(ysize), w.camera.NearPlane())
	}
}
