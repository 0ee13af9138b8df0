package mesh

import (
	"math"

	"github.com/achilleasa/objmesh/types"
)

// A resolved mesh vertex.
type Vertex struct {
	Position  types.Vec3
	Normal    types.Vec3
	TexCoords types.Vec3
}

// An indexed mesh. Each face-vertex references an entry in the
// deduplicated vertex list. Triangles and quads are stored in separate
// index buffers so that each buffer has a fixed stride.
type Mesh struct {
	Vertices        []Vertex
	TriangleIndices []uint32
	QuadIndices     []uint32
}

// Create an empty mesh.
func New() *Mesh {
	return &Mesh{
		Vertices:        make([]Vertex, 0),
		TriangleIndices: make([]uint32, 0),
		QuadIndices:     make([]uint32, 0),
	}
}

// Get the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.TriangleIndices) / 3
}

// Get the number of quads in the mesh.
func (m *Mesh) NumQuads() int {
	return len(m.QuadIndices) / 4
}

// Get the mesh AABB. The bbox of an empty mesh is inverted
// (min > max).
func (m *Mesh) BBox() [2]types.Vec3 {
	bbox := [2]types.Vec3{
		{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
	for _, v := range m.Vertices {
		bbox[0] = types.MinVec3(bbox[0], v.Position)
		bbox[1] = types.MaxVec3(bbox[1], v.Position)
	}
	return bbox
}
