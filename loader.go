package stlview

import (
	"fmt"
	"log"
)

// LoadMesh decodes path and reindexes it into an indexed mesh.
func LoadMesh(dec MeshDecoder, path string) (*IndexedMesh, error) {
	triangles, err := dec.Decode(path)
	if err != nil {
		return nil, err
	}
	m := Reindex(triangles)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("indexing %s: %w", path, err)
	}
	log.Printf("Points: %d", m.PointCount())
	log.Printf("Faces: %d", m.FaceCount())
	return m, nil
}

// Run loads the configured mesh and hands it to the viewer. It blocks for as
// long as the viewer does.
func Run(cfg Config, dec MeshDecoder, viewer InteractiveViewer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	m, err := LoadMesh(dec, cfg.InputPath)
	if err != nil {
		return err
	}
	if m.IsEmpty() {
		log.Printf("%s contains no triangles, showing an empty scene", cfg.InputPath)
	}
	return viewer.Show(m, cfg.ViewOptions())
}
