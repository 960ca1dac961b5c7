package stlview

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hschendel/stl"
)

// ErrFileNotFound is matched by errors.Is for a missing mesh file.
var ErrFileNotFound = errors.New("file not found")

// FileNotFoundError reports a mesh path that does not resolve to a file.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("The file %s was not found.", e.Path)
}

func (e *FileNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFileNotFound}
	}
	return []error{ErrFileNotFound, e.Err}
}

// MeshDecoder turns a mesh file into a triangle soup.
type MeshDecoder interface {
	Decode(path string) ([]Triangle, error)
}

// STLDecoder reads ASCII and binary STL files.
type STLDecoder struct{}

func NewSTLDecoder() *STLDecoder {
	return &STLDecoder{}
}

func (d *STLDecoder) Decode(path string) ([]Triangle, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("could not open STL file %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat STL file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &FileNotFoundError{Path: path}
	}

	solid, err := stl.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error decoding STL file %s: %w", path, err)
	}

	log.Printf("Read solid %q: %d triangles", solid.Name, len(solid.Triangles))
	return trianglesFromSolid(solid), nil
}

func trianglesFromSolid(solid *stl.Solid) []Triangle {
	triangles := make([]Triangle, len(solid.Triangles))
	for i, t := range solid.Triangles {
		for v, vertex := range t.Vertices {
			triangles[i][v] = NewPoint(float64(vertex[0]), float64(vertex[1]), float64(vertex[2]))
		}
	}
	return triangles
}
