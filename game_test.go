package stlview

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestGame(t *testing.T, m *IndexedMesh) *Game {
	t.Helper()
	g, err := NewGame(m, DefaultConfig().ViewOptions())
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return g
}

func TestNewGameFramesMesh(t *testing.T) {
	g := newTestGame(t, Reindex(makeTriangles(10)))
	cam := g.world.Camera()
	if cam == nil {
		t.Fatal("world has no camera")
	}
	if g.world.FaceCount() != 10 {
		t.Errorf("FaceCount() = %d, want 10", g.world.FaceCount())
	}
	if cam.Target() != (mgl64.Vec3{}) {
		t.Errorf("camera looks at %v, want the origin", cam.Target())
	}
	if w, h := g.Layout(1, 1); w != 800 || h != 600 {
		t.Errorf("Layout() = %d, %d, want 800, 600", w, h)
	}
}

func TestNewGameEmptyMesh(t *testing.T) {
	g := newTestGame(t, Reindex(nil))
	if g.world.FaceCount() != 0 {
		t.Errorf("FaceCount() = %d", g.world.FaceCount())
	}
	if g.world.Camera().Distance() <= 0 {
		t.Errorf("Distance() = %v", g.world.Camera().Distance())
	}

	drawer := &recordingDrawer{}
	g.batcher.Begin(drawer)
	g.world.PaintObjects(g.batcher, 800, 600)
	g.batcher.Flush()
	if len(drawer.calls) != 0 {
		t.Errorf("empty mesh made %d draw calls", len(drawer.calls))
	}
}

func TestNewGameRejectsUnknownPreset(t *testing.T) {
	opts := DefaultConfig().ViewOptions()
	opts.CameraPreset = "fisheye"
	if _, err := NewGame(Reindex(nil), opts); err == nil {
		t.Error("NewGame() error = nil")
	}
}

func TestDragRotatesAndPans(t *testing.T) {
	g := newTestGame(t, Reindex(makeTriangles(3)))
	cam := g.world.Camera()
	forward := cam.Forward()

	g.beginDrag(dragRotate, 100, 100)
	g.dragTo(100, 100)
	if !cam.Forward().ApproxEqualThreshold(forward, 1e-9) {
		t.Errorf("a drag without movement rotated the camera")
	}
	g.dragTo(140, 120)
	if cam.Forward().ApproxEqualThreshold(forward, 1e-9) {
		t.Errorf("rotate drag left Forward() at %v", cam.Forward())
	}
	if g.lastX != 140 || g.lastY != 120 {
		t.Errorf("last cursor = %d, %d", g.lastX, g.lastY)
	}

	cam.Reset()
	g.beginDrag(dragPan, 0, 0)
	g.dragTo(30, 0)
	if cam.Target() == (mgl64.Vec3{}) {
		t.Error("pan drag left the target at the origin")
	}
	if !cam.Forward().ApproxEqualThreshold(forward, 1e-9) {
		t.Errorf("pan drag rotated the camera to %v", cam.Forward())
	}

	cam.Reset()
	g.dragging = dragNone
	g.dragTo(500, 500)
	if cam.Target() != (mgl64.Vec3{}) || !cam.Forward().ApproxEqualThreshold(forward, 1e-9) {
		t.Error("cursor movement without a drag moved the camera")
	}
}

func TestWorldPaintsNothingWithoutCamera(t *testing.T) {
	w := NewWorld()
	w.AddObject(NewModel(Reindex(makeTriangles(2)), LightBlue), 0, 0, 0)

	drawer := &recordingDrawer{}
	b := NewPolygonBatcher(nil)
	b.Begin(drawer)
	w.PaintObjects(b, 800, 600)
	b.Flush()
	if len(drawer.calls) != 0 {
		t.Errorf("made %d draw calls without a camera", len(drawer.calls))
	}
}

func TestTitlePosition(t *testing.T) {
	testCases := []struct {
		name        string
		screenWidth int
		textWidth   float64
		fontSize    float64
		wantX       float64
		wantScale   float64
	}{
		{"Native size", 800, 100, baseFontHeight, 350, 1},
		{"Doubled size", 800, 100, 2 * baseFontHeight, 300, 2},
		{"Zero size falls back to native", 800, 100, 0, 350, 1},
		{"Wider than screen", 100, 200, baseFontHeight, 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, scale := titlePosition(tc.screenWidth, tc.textWidth, tc.fontSize)
			if !almostEqual(x, tc.wantX) || !almostEqual(scale, tc.wantScale) || y != titleMargin {
				t.Errorf("titlePosition() = %v, %v, %v, want %v, %v, %v", x, y, scale, tc.wantX, titleMargin, tc.wantScale)
			}
		})
	}
}

func TestStatsTextShowsModelSize(t *testing.T) {
	// makeTriangles(10) spans x 0..10, y 0..1, z 0..9
	g := newTestGame(t, Reindex(makeTriangles(10)))
	got := g.statsText(60)

	for _, want := range []string{"FPS: 60.00", "Triangles: 10", "Size: 10.00 x 1.00 x 9.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("statsText() = %q, want it to contain %q", got, want)
		}
	}
}
