package stlview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// InteractiveViewer displays an indexed mesh and returns once the user is
// done with it.
type InteractiveViewer interface {
	Show(m *IndexedMesh, opts ViewOptions) error
}

// EbitenViewer opens a window with ebiten and blocks until it is closed.
type EbitenViewer struct{}

func NewEbitenViewer() *EbitenViewer {
	return &EbitenViewer{}
}

func (v *EbitenViewer) Show(m *IndexedMesh, opts ViewOptions) error {
	game, err := NewGame(m, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)

	fmt.Println("Showing interactive plot. Close the window to exit.")
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("viewer stopped: %w", err)
	}
	return nil
}
