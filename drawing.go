package stlview

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// solidSource is a 1x1 white sub image used as the texture for flat fills.
func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// triangleDrawer is satisfied by *ebiten.Image.
type triangleDrawer interface {
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// maxBatchVertices keeps every index addressable by uint16.
const maxBatchVertices = math.MaxUint16

// PolygonBatcher collects convex polygons for one frame and draws them with
// as few DrawTriangles calls as the 16 bit index space allows. Polygons are
// drawn in the order they were added.
type PolygonBatcher struct {
	target   triangleDrawer
	source   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	flushes  int
}

func NewPolygonBatcher(source *ebiten.Image) *PolygonBatcher {
	return &PolygonBatcher{
		source:   source,
		vertices: make([]ebiten.Vertex, 0, 4096),
		indices:  make([]uint16, 0, 8192),
	}
}

// Begin starts a frame on target.
func (b *PolygonBatcher) Begin(target triangleDrawer) {
	b.target = target
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.flushes = 0
}

func (b *PolygonBatcher) reserve(n int) {
	if len(b.vertices)+n > maxBatchVertices {
		b.Flush()
	}
}

func toVertexColor(clr color.RGBA) (float32, float32, float32, float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}

// AddPolygon queues a fan triangulated convex polygon.
func (b *PolygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 || len(xp) != len(yp) {
		return
	}
	b.reserve(len(xp))

	cr, cg, cb, ca := toVertexColor(clr)
	base := uint16(len(b.vertices))
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 2; i < len(xp); i++ {
		b.indices = append(b.indices, base, base+uint16(i-1), base+uint16(i))
	}
}

// AddPolygonAndOutline queues a filled polygon followed by its stroked edge.
func (b *PolygonBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)
	b.addOutline(xp, yp, strokeClr, strokeWidth)
}

func (b *PolygonBatcher) addOutline(xp, yp []float32, clr color.RGBA, strokeWidth float32) {
	if len(xp) < 2 || len(xp) != len(yp) {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: strokeWidth})
	if len(vs) == 0 {
		return
	}
	b.reserve(len(vs))

	cr, cg, cb, ca := toVertexColor(clr)
	base := uint16(len(b.vertices))
	for _, v := range vs {
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
		b.vertices = append(b.vertices, v)
	}
	for _, idx := range is {
		b.indices = append(b.indices, base+idx)
	}
}

// Flush draws everything queued so far.
func (b *PolygonBatcher) Flush() {
	if len(b.indices) == 0 || b.target == nil {
		b.vertices = b.vertices[:0]
		b.indices = b.indices[:0]
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	b.target.DrawTriangles(b.vertices, b.indices, b.source, op)
	b.flushes++
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Flushes reports how many draw calls the current frame has made.
func (b *PolygonBatcher) Flushes() int {
	return b.flushes
}
