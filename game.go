package stlview

import (
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragRotate
	dragPan
)

// Game is the ebiten.Game driving the viewer window.
type Game struct {
	world        *World
	model        *Model
	batcher      *PolygonBatcher
	opts         ViewOptions
	dragging     dragMode
	lastX, lastY int
}

func NewGame(m *IndexedMesh, opts ViewOptions) (*Game, error) {
	g := &Game{opts: opts}
	log.Println("Initializing World...")
	g.world = NewWorld()

	model := NewModel(m, opts.MeshColor)
	model.SetDrawOutlines(opts.ShowEdges, opts.EdgeColor)
	model.SetCullBackFaces(opts.CullBackFaces)

	// the model is centred on the origin, so the camera looks there
	cam, err := NewCamera(opts.CameraPreset, mgl64.Vec3{}, model.Radius())
	if err != nil {
		return nil, err
	}
	log.Printf("Model centred from %.2f, %.2f, %.2f", model.Centre()[0], model.Centre()[1], model.Centre()[2])
	g.model = model
	g.world.AddObject(model, 0, 0, 0)
	g.world.AddCamera(cam)
	g.batcher = NewPolygonBatcher(nil)

	log.Println("Initialization Complete.")
	return g, nil
}

func (g *Game) beginDrag(mode dragMode, x, y int) {
	g.dragging = mode
	g.lastX, g.lastY = x, y
}

func (g *Game) dragTo(x, y int) {
	dx, dy := float64(x-g.lastX), float64(y-g.lastY)
	g.lastX, g.lastY = x, y
	cam := g.world.Camera()
	switch g.dragging {
	case dragRotate:
		cam.Rotate(dx, dy)
	case dragPan:
		cam.Pan(dx, dy, g.opts.Height)
	}
}

func anyMouseButtonPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Camera().Reset()
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.beginDrag(dragPan, x, y)
		} else {
			g.beginDrag(dragRotate, x, y)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		g.beginDrag(dragPan, x, y)
	}

	if g.dragging != dragNone {
		g.dragTo(x, y)
		if !anyMouseButtonPressed() {
			g.dragging = dragNone
		}
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.world.Camera().Zoom(wheelY)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.batcher.source == nil {
		g.batcher.source = solidSource()
	}
	screen.Fill(g.opts.BackgroundColor)

	g.batcher.Begin(screen)
	g.world.PaintObjects(g.batcher, g.opts.Width, g.opts.Height)
	g.batcher.Flush()

	drawTitle(screen, g.opts.Title, g.opts.TitleFontSize, color.White)
	if g.opts.ShowStats {
		drawStats(screen, g.statsText(ebiten.ActualFPS()))
	}
}

func (g *Game) statsText(fps float64) string {
	x, y, z := g.model.GetExtents()
	return statsLine(fps, g.world.FaceCount(), g.world.Camera().Distance(), x, y, z)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
