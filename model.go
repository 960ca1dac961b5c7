package stlview

import (
	"image/color"
	"log"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Model is the render side of an IndexedMesh: centred points, one normal per
// face and the per-frame camera space copies.
type Model struct {
	points  []mgl64.Vec3
	normals []mgl64.Vec3
	faces   []Face

	transPoints  []mgl64.Vec3
	transNormals []mgl64.Vec3
	depths       []float64
	order        []int

	centre  mgl64.Vec3
	xLength float64
	yLength float64
	zLength float64
	radius  float64

	col              color.RGBA
	outlineCol       color.RGBA
	drawOutlines     bool
	cullBackFaces    bool
	facePoints       []mgl64.Vec3 // temp buffer
	screenPointsX    []float32
	screenPointsY    []float32
	screenPointsTemp []ScreenPoint
}

func NewModel(m *IndexedMesh, col color.RGBA) *Model {
	o := &Model{
		points:       make([]mgl64.Vec3, len(m.Points)),
		normals:      make([]mgl64.Vec3, len(m.Faces)),
		faces:        m.Faces,
		transPoints:  make([]mgl64.Vec3, len(m.Points)),
		transNormals: make([]mgl64.Vec3, len(m.Faces)),
		depths:       make([]float64, len(m.Faces)),
		order:        make([]int, len(m.Faces)),
		col:          col,
		facePoints:   make([]mgl64.Vec3, 0, 4),
	}
	for i, p := range m.Points {
		o.points[i] = p.Vec3()
	}
	for f, face := range m.Faces {
		idx := face.Indices()
		o.normals[f] = faceNormal(o.points[idx[0]], o.points[idx[1]], o.points[idx[2]])
		o.order[f] = f
	}

	o.CentreObject()
	o.CalcSize()
	log.Printf("Normals: %d", len(o.normals))
	return o
}

// faceNormal is the unit normal of a counter clockwise triangle. Degenerate
// triangles get a zero normal.
func faceNormal(p1, p2, p3 mgl64.Vec3) mgl64.Vec3 {
	u := p2.Sub(p1)
	v := p3.Sub(p2)
	n := u.Cross(v)
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

func (o *Model) SetDrawOutlines(draw bool, col color.RGBA) {
	o.drawOutlines = draw
	o.outlineCol = col
}

func (o *Model) SetCullBackFaces(cull bool) {
	o.cullBackFaces = cull
}

func (o *Model) boundingBox() (mgl64.Vec3, mgl64.Vec3) {
	if len(o.points) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	min, max := o.points[0], o.points[0]
	for _, point := range o.points {
		for a := 0; a < 3; a++ {
			if point[a] < min[a] {
				min[a] = point[a]
			} else if point[a] > max[a] {
				max[a] = point[a]
			}
		}
	}
	return min, max
}

// CentreObject moves all points so the centre of the bounding box is at the
// origin. The applied offset is kept in Centre.
func (o *Model) CentreObject() {
	if len(o.points) == 0 {
		return
	}
	min, max := o.boundingBox()
	centre := min.Add(max).Mul(0.5)
	for i := range o.points {
		o.points[i] = o.points[i].Sub(centre)
	}
	o.centre = o.centre.Add(centre)
}

func (o *Model) Centre() mgl64.Vec3 {
	return o.centre
}

func (o *Model) CalcSize() {
	min, max := o.boundingBox()
	size := max.Sub(min)
	o.xLength, o.yLength, o.zLength = size[0], size[1], size[2]

	o.radius = 0
	for _, p := range o.points {
		if l := p.Len(); l > o.radius {
			o.radius = l
		}
	}
	log.Printf("Object size: X: %.2f, Y: %.2f, Z: %.2f", o.xLength, o.yLength, o.zLength)
}

func (o *Model) GetExtents() (float64, float64, float64) {
	return o.xLength, o.yLength, o.zLength
}

// Radius of the bounding sphere around the origin.
func (o *Model) Radius() float64 {
	return o.radius
}

func (o *Model) FaceCount() int {
	return len(o.faces)
}

// ApplyMatrixTemp moves points and normals into camera space for this frame
// and orders faces far to near.
func (o *Model) ApplyMatrixTemp(view mgl64.Mat4) {
	for i, p := range o.points {
		o.transPoints[i] = ToCameraSpace(view, p)
	}
	for f, n := range o.normals {
		o.transNormals[f] = ToCameraDirection(view, n)
	}
	for f, face := range o.faces {
		idx := face.Indices()
		o.depths[f] = (o.transPoints[idx[0]][2] + o.transPoints[idx[1]][2] + o.transPoints[idx[2]][2]) / 3
	}
	sort.SliceStable(o.order, func(i, j int) bool {
		return o.depths[o.order[i]] > o.depths[o.order[j]]
	})
}

// PaintObject queues every visible face on the batcher, farthest first.
func (o *Model) PaintObject(batcher *PolygonBatcher, screenWidth, screenHeight float32, near float64) {
	for _, f := range o.order {
		o.paintFace(batcher, f, screenWidth, screenHeight, near)
	}
}

func (o *Model) paintFace(batcher *PolygonBatcher, f int, screenWidth, screenHeight float32, near float64) bool {
	idx := o.faces[f].Indices()
	points := o.facePoints[:0]
	for _, i := range idx {
		points = append(points, o.transPoints[i])
	}

	normal, facing := orientAway(points[0], o.transNormals[f])
	if o.cullBackFaces && !facing {
		return false
	}

	pointsToUse := clipPolygonAgainstNearPlane(points, near)
	if len(pointsToUse) < 3 {
		return false
	}

	screenPoints := o.screenPointsTemp[:0]
	for _, p := range pointsToUse {
		screenPoints = append(screenPoints, ScreenPoint{
			X: ConvertToScreenX(float64(screenWidth), float64(screenHeight), p[0], p[2]),
			Y: ConvertToScreenY(float64(screenWidth), float64(screenHeight), p[1], p[2]),
		})
	}
	o.screenPointsTemp = screenPoints

	clipped := clipPolygon(screenPoints, screenWidth, screenHeight)
	if len(clipped) < 3 {
		return false
	}

	xp, yp := o.screenPointsX[:0], o.screenPointsY[:0]
	for _, p := range clipped {
		xp = append(xp, p.X)
		yp = append(yp, p.Y)
	}
	o.screenPointsX, o.screenPointsY = xp, yp

	polyColor := shadeColor(getMidpoint(points), normal, o.col)
	if o.drawOutlines {
		batcher.AddPolygonAndOutline(xp, yp, polyColor, o.outlineCol, 1.0)
	} else {
		batcher.AddPolygon(xp, yp, polyColor)
	}
	return true
}

func getMidpoint(points []mgl64.Vec3) mgl64.Vec3 {
	var mid mgl64.Vec3
	if len(points) == 0 {
		return mid
	}
	for _, p := range points {
		mid = mid.Add(p)
	}
	return mid.Mul(1 / float64(len(points)))
}
