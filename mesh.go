package stlview

import "fmt"

// VerticesPerFace is the leading count field of every face record.
const VerticesPerFace = 3

// Face is an indexed polygon record: vertex count followed by three
// indices into IndexedMesh.Points.
type Face [4]int

// Indices returns the three point indices of the face.
func (f Face) Indices() [3]int {
	return [3]int{f[1], f[2], f[3]}
}

// IndexedMesh is a flat point list plus face records referencing it.
// Points are never shared between faces: face f always uses points
// 3f, 3f+1 and 3f+2.
type IndexedMesh struct {
	Points []Point
	Faces  []Face
}

// Reindex flattens a triangle soup into an indexed mesh. Triangle order and
// vertex order inside each triangle are preserved and nothing is merged.
func Reindex(triangles []Triangle) *IndexedMesh {
	m := &IndexedMesh{
		Points: make([]Point, 0, len(triangles)*VerticesPerFace),
		Faces:  make([]Face, len(triangles)),
	}
	for f, tri := range triangles {
		m.Points = append(m.Points, tri[0], tri[1], tri[2])
		base := f * VerticesPerFace
		m.Faces[f] = Face{VerticesPerFace, base, base + 1, base + 2}
	}
	return m
}

func (m *IndexedMesh) FaceCount() int {
	return len(m.Faces)
}

func (m *IndexedMesh) PointCount() int {
	return len(m.Points)
}

func (m *IndexedMesh) IsEmpty() bool {
	return len(m.Faces) == 0
}

// Triangle returns the points referenced by face f, in face order.
func (m *IndexedMesh) Triangle(f int) Triangle {
	face := m.Faces[f]
	return Triangle{m.Points[face[1]], m.Points[face[2]], m.Points[face[3]]}
}

// Validate checks the fixed-stride layout produced by Reindex.
func (m *IndexedMesh) Validate() error {
	if len(m.Points) != len(m.Faces)*VerticesPerFace {
		return fmt.Errorf("mesh has %d points for %d faces, want %d", len(m.Points), len(m.Faces), len(m.Faces)*VerticesPerFace)
	}
	for f, face := range m.Faces {
		if face[0] != VerticesPerFace {
			return fmt.Errorf("face %d: vertex count %d, want %d", f, face[0], VerticesPerFace)
		}
		for i, idx := range face.Indices() {
			if idx < 0 || idx >= len(m.Points) {
				return fmt.Errorf("face %d: index %d out of range [0, %d)", f, idx, len(m.Points))
			}
			if idx != f*VerticesPerFace+i {
				return fmt.Errorf("face %d: index %d is %d, want %d", f, i, idx, f*VerticesPerFace+i)
			}
		}
	}
	return nil
}
